package mapping

import (
	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/models"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
)

// ToDomainLedgerLine flattens one joined ledger row. It returns nil when the posting
// type cannot be resolved to debit or credit; callers drop such rows.
func ToDomainLedgerLine(m models.LedgerRow) *domain.LedgerLine {
	posting := accounting.ParsePostingType(m.PostingType.String)
	if posting == domain.PostingUnknown {
		return nil
	}

	unitLabel := m.UnitNumber.String
	if unitLabel == "" {
		unitLabel = m.UnitName.String
	}

	return &domain.LedgerLine{
		TransactionID:        m.TransactionID.String,
		PropertyID:           m.PropertyID.String,
		PropertyLabel:        m.PropertyName.String,
		UnitID:               m.UnitID.String,
		UnitLabel:            unitLabel,
		Date:                 m.Date,
		CreatedAt:            m.CreatedAt,
		Amount:               m.Amount.Abs(),
		PostingType:          posting,
		Memo:                 m.Memo.String,
		GLAccountID:          m.GLAccountID,
		GLAccountName:        m.GLAccountName.String,
		GLAccountNumber:      m.GLAccountNumber.String,
		GLAccountType:        domain.ParseAccountType(m.GLAccountType.String),
		TransactionType:      m.TransactionType.String,
		TransactionMemo:      m.TransactionMemo.String,
		TransactionReference: m.TransactionReference.String,
	}
}

// ToDomainLedgerLines maps rows and drops the ones with an unresolved posting type.
func ToDomainLedgerLines(ms []models.LedgerRow) []domain.LedgerLine {
	lines := make([]domain.LedgerLine, 0, len(ms))
	for _, m := range ms {
		if l := ToDomainLedgerLine(m); l != nil {
			lines = append(lines, *l)
		}
	}
	return lines
}

// LedgerLineFromRecord flattens a loosely typed ledger row. Nested "transactions",
// "gl_accounts", "properties" and "units" objects are read when present.
// Like ToDomainLedgerLine it returns nil for an unresolved posting type.
func LedgerLineFromRecord(rec Record) *domain.LedgerLine {
	posting := accounting.ParsePostingType(firstString(rec, LinePostingTypeFields...))
	if posting == domain.PostingUnknown {
		return nil
	}

	rawAmount, _ := firstPresent(rec, LineAmountFields...)
	return &domain.LedgerLine{
		TransactionID:        firstString(rec, "transaction_id", "transactions.id"),
		PropertyID:           firstString(rec, "property_id", "properties.id"),
		PropertyLabel:        firstString(rec, "property_label", "properties.name"),
		UnitID:               firstString(rec, "unit_id", "units.id"),
		UnitLabel:            firstString(rec, "unit_label", "units.unit_number", "units.unit_name"),
		Date:                 firstTime(rec, "date"),
		CreatedAt:            firstTime(rec, "created_at"),
		Amount:               ToDecimal(rawAmount).Abs(),
		PostingType:          posting,
		Memo:                 firstString(rec, "memo"),
		GLAccountID:          firstString(rec, "gl_account_id", "gl_accounts.id"),
		GLAccountName:        firstString(rec, "gl_accounts.name", "gl_account_name"),
		GLAccountNumber:      firstString(rec, "gl_accounts.account_number", "gl_account_number"),
		GLAccountType:        domain.ParseAccountType(firstString(rec, "gl_accounts.type", "gl_account_type")),
		TransactionType:      firstString(rec, "transactions.transaction_type", "transaction_type"),
		TransactionMemo:      firstString(rec, "transactions.memo", "transaction_memo"),
		TransactionReference: firstString(rec, "transactions.reference_number", "transaction_reference"),
	}
}

// LedgerLinesFromRecords maps records and drops the ones with an unresolved posting type.
func LedgerLinesFromRecords(recs []Record) []domain.LedgerLine {
	lines := make([]domain.LedgerLine, 0, len(recs))
	for _, r := range recs {
		if l := LedgerLineFromRecord(r); l != nil {
			lines = append(lines, *l)
		}
	}
	return lines
}
