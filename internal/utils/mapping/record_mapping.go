package mapping

import (
	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
)

// Field priority lists for heterogeneous upstream shapes. Earlier entries win.
var (
	TransactionTypeFields   = []string{"TransactionTypeEnum", "TransactionType", "transaction_type", "type"}
	TransactionAmountFields = []string{"TotalAmount", "total_amount", "Amount", "amount"}
	TransactionLinesFields  = []string{"transaction_lines", "Lines", "Journal.Lines"}

	LinePostingTypeFields = []string{"posting_type", "PostingType", "postingType"}
	LineAmountFields      = []string{"amount", "Amount"}
	LineAccountFields     = []string{"gl_accounts", "gl_account", "GLAccount", "account"}
	LineEntityTypeFields  = []string{"account_entity_type", "AccountEntityType", "AccountingEntity.AccountingEntityType"}

	RemoteBalanceFields      = []string{"Balance", "balance", "TotalBalance", "OutstandingBalance"}
	RemotePrepaymentFields   = []string{"Prepayments", "prepayments", "PrepaymentBalance"}
	RemoteDepositsHeldFields = []string{"DepositsHeld", "depositsHeld", "Deposits"}
)

// ToDomainGLAccount maps an account object. The category may be a plain label or a
// nested {"category": "..."} object.
func ToDomainGLAccount(rec Record) *domain.GLAccount {
	if rec == nil {
		return nil
	}
	return &domain.GLAccount{
		ID:                         firstString(rec, "id", "Id"),
		Name:                       firstString(rec, "name", "Name"),
		AccountNumber:              firstString(rec, "account_number", "AccountNumber"),
		Type:                       domain.ParseAccountType(firstString(rec, "type", "Type")),
		SubType:                    firstString(rec, "sub_type", "SubType", "subType"),
		Category:                   firstString(rec, "category.category", "category", "Category"),
		IsBankAccount:              firstBool(rec, "is_bank_account", "IsBankAccount"),
		IsSecurityDepositLiability: firstBool(rec, "is_security_deposit_liability", "IsSecurityDepositLiability"),
		ExcludeFromCashBalances:    firstBool(rec, "exclude_from_cash_balances", "ExcludeFromCashBalances"),
	}
}

// ToDomainTransactionLine maps a line object. Amounts are stored unsigned, so the
// absolute value is kept; the sign always comes from the posting type.
func ToDomainTransactionLine(rec Record) domain.TransactionLine {
	var account *domain.GLAccount
	if accRec, ok := firstRecord(rec, LineAccountFields...); ok {
		account = ToDomainGLAccount(accRec)
	}

	glAccountID := firstString(rec, "gl_account_id", "GLAccountId")
	if glAccountID == "" && account != nil {
		glAccountID = account.ID
	}

	rawAmount, _ := firstPresent(rec, LineAmountFields...)

	return domain.TransactionLine{
		ID:                firstString(rec, "id", "Id"),
		TransactionID:     firstString(rec, "transaction_id", "TransactionId"),
		GLAccountID:       glAccountID,
		Account:           account,
		Amount:            ToDecimal(rawAmount).Abs(),
		PostingType:       accounting.ParsePostingType(firstString(rec, LinePostingTypeFields...)),
		PropertyID:        firstString(rec, "property_id", "PropertyId"),
		UnitID:            firstString(rec, "unit_id", "UnitId"),
		LeaseID:           firstString(rec, "lease_id", "LeaseId"),
		BuildiumLeaseID:   firstString(rec, "buildium_lease_id", "BuildiumLeaseId"),
		AccountEntityType: domain.EntityType(firstString(rec, LineEntityTypeFields...)),
		Date:              firstTime(rec, "date", "Date"),
	}
}

// ToDomainTransactionLines maps a list of line objects.
func ToDomainTransactionLines(recs []Record) []domain.TransactionLine {
	lines := make([]domain.TransactionLine, 0, len(recs))
	for _, r := range recs {
		lines = append(lines, ToDomainTransactionLine(r))
	}
	return lines
}

// ToDomainTransaction normalizes a transaction object of any supported shape.
// Type, header total and lines are each probed in their documented priority order;
// the header total is the first non-zero candidate and stays zero when none is.
func ToDomainTransaction(rec Record) domain.Transaction {
	lines := ToDomainTransactionLines(firstRecords(rec, TransactionLinesFields...))
	id := firstString(rec, "id", "Id")
	for i := range lines {
		if lines[i].TransactionID == "" {
			lines[i].TransactionID = id
		}
	}

	return domain.Transaction{
		ID:          id,
		Type:        firstString(rec, TransactionTypeFields...),
		HeaderTotal: firstNonZero(rec, TransactionAmountFields...),
		Lines:       lines,
		LeaseID:     firstString(rec, "lease_id", "LeaseId"),
		Date:        firstTime(rec, "date", "Date"),
		Memo:        firstString(rec, "memo", "Memo"),
		Reference:   firstString(rec, "reference_number", "ReferenceNumber"),
	}
}

// ToDomainTransactions maps a list of transaction objects.
func ToDomainTransactions(recs []Record) []domain.Transaction {
	txs := make([]domain.Transaction, 0, len(recs))
	for _, r := range recs {
		txs = append(txs, ToDomainTransaction(r))
	}
	return txs
}

// ToDomainUnitBalances maps the stored balances of a unit.
func ToDomainUnitBalances(rec Record) domain.UnitBalances {
	return domain.UnitBalances{
		Balance:             firstNonZero(rec, "balance", "Balance"),
		DepositsHeldBalance: firstNonZero(rec, "deposits_held_balance", "depositsHeldBalance", "DepositsHeldBalance"),
		PrepaymentsBalance:  firstNonZero(rec, "prepayments_balance", "prepaymentsBalance", "PrepaymentsBalance"),
	}
}

// ToRemoteLeaseBalances maps the outstanding balances reported for a lease.
// Each field takes the first candidate present, even if it is zero.
func ToRemoteLeaseBalances(rec Record) domain.RemoteLeaseBalances {
	pick := func(paths []string) (v any) {
		v, _ = firstPresent(rec, paths...)
		return v
	}
	return domain.RemoteLeaseBalances{
		Balance:      ToDecimal(pick(RemoteBalanceFields)),
		Prepayments:  ToDecimal(pick(RemotePrepaymentFields)),
		DepositsHeld: ToDecimal(pick(RemoteDepositsHeldFields)),
	}
}
