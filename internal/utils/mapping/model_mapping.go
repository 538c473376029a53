package mapping

import (
	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/models"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

func nullDecimal(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// ToDomainGLAccountFromModel converts a models.GLAccount to a domain.GLAccount.
func ToDomainGLAccountFromModel(m models.GLAccount) domain.GLAccount {
	return domain.GLAccount{
		ID:                         m.GLAccountID,
		Name:                       m.Name,
		AccountNumber:              m.AccountNumber.String,
		Type:                       domain.ParseAccountType(m.Type),
		SubType:                    m.SubType.String,
		Category:                   m.Category.String,
		IsBankAccount:              m.IsBankAccount,
		IsSecurityDepositLiability: m.IsSecurityDepositLiability,
		ExcludeFromCashBalances:    m.ExcludeFromCashBalances,
	}
}

// ToDomainTransactionLineFromModel converts a models.TransactionLine to a domain.TransactionLine.
func ToDomainTransactionLineFromModel(m models.TransactionLine) domain.TransactionLine {
	line := domain.TransactionLine{
		ID:                m.LineID,
		TransactionID:     m.TransactionID.String,
		GLAccountID:       m.GLAccountID,
		Amount:            m.Amount.Abs(),
		PostingType:       accounting.ParsePostingType(m.PostingType),
		PropertyID:        m.PropertyID.String,
		UnitID:            m.UnitID.String,
		LeaseID:           m.LeaseID.String,
		BuildiumLeaseID:   m.BuildiumLeaseID.String,
		AccountEntityType: domain.EntityType(m.AccountEntityType.String),
		Date:              m.Date,
	}
	if m.Account != nil {
		account := ToDomainGLAccountFromModel(*m.Account)
		line.Account = &account
	}
	return line
}

// ToDomainTransactionLineSlice converts a slice of model lines.
func ToDomainTransactionLineSlice(ms []models.TransactionLine) []domain.TransactionLine {
	ds := make([]domain.TransactionLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionLineFromModel(m)
	}
	return ds
}

// ToDomainTransactionFromModel converts a models.Transaction to a domain.Transaction.
// A NULL total maps to a zero header total.
func ToDomainTransactionFromModel(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.TransactionID,
		Type:        m.TransactionType,
		HeaderTotal: nullDecimal(m.TotalAmount),
		Lines:       ToDomainTransactionLineSlice(m.Lines),
		LeaseID:     m.LeaseID.String,
		Date:        m.Date,
		Memo:        m.Memo.String,
		Reference:   m.Reference.String,
	}
}

// ToDomainTransactionSlice converts a slice of model transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionFromModel(m)
	}
	return ds
}

// ToDomainProperty converts a models.Property to a domain.Property.
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		ID:                       m.PropertyID,
		Name:                     m.Name,
		Reserve:                  nullDecimal(m.Reserve),
		OperatingBankGLAccountID: m.OperatingBankGLAccountID.String,
		DepositTrustGLAccountID:  m.DepositTrustGLAccountID.String,
	}
}

// ToDomainUnit converts a models.Unit to a domain.Unit.
func ToDomainUnit(m models.Unit) domain.Unit {
	return domain.Unit{
		ID:         m.UnitID,
		PropertyID: m.PropertyID,
		Label:      m.UnitNumber.String,
		Balances: domain.UnitBalances{
			Balance:             nullDecimal(m.Balance),
			DepositsHeldBalance: nullDecimal(m.DepositsHeldBalance),
			PrepaymentsBalance:  nullDecimal(m.PrepaymentsBalance),
		},
	}
}

// ToDomainLease converts a models.Lease to a domain.Lease.
func ToDomainLease(m models.Lease) domain.Lease {
	return domain.Lease{
		ID:              m.LeaseID,
		PropertyID:      m.PropertyID,
		UnitID:          m.UnitID.String,
		BuildiumLeaseID: m.BuildiumLeaseID.String,
	}
}

// ToDomainLeaseSlice converts a slice of model leases.
func ToDomainLeaseSlice(ms []models.Lease) []domain.Lease {
	ds := make([]domain.Lease, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLease(m)
	}
	return ds
}
