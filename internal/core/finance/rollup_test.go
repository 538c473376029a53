package finance_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	operatingBank   = &domain.GLAccount{ID: "gl-bank", Type: domain.Asset, Name: "Operating Bank", IsBankAccount: true}
	trustBank       = &domain.GLAccount{ID: "gl-trust", Type: domain.Asset, Name: "Trust account", IsBankAccount: true}
	depositLiab     = &domain.GLAccount{ID: "gl-dep", Type: domain.Liability, Name: "Security Deposit Liability", IsSecurityDepositLiability: true}
	prepaidRent     = &domain.GLAccount{ID: "gl-pre", Type: domain.Liability, SubType: "prepaidrent", Name: "Prepaid Rent"}
	rentIncome      = &domain.GLAccount{ID: "gl-rent", Type: domain.Income, Name: "Rent Income"}
	utilityIncome   = &domain.GLAccount{ID: "gl-util", Type: domain.Income, Name: "Utility Income"}
	otherLiability  = &domain.GLAccount{ID: "gl-oth", Type: domain.Liability, Name: "Other Liability"}
	receivable      = &domain.GLAccount{ID: "gl-ar", Type: domain.Asset, SubType: "Accounts Receivable", Name: "Accounts Receivable"}
	legacyBank      = &domain.GLAccount{ID: "gl-legacy", Type: domain.Asset, Name: "Legacy Operating Bank", IsBankAccount: true, ExcludeFromCashBalances: true}
	legacyDeposit   = &domain.GLAccount{ID: "gl-legacy-dep", Type: domain.Liability, Name: "Security Deposit Liability", IsSecurityDepositLiability: true, ExcludeFromCashBalances: true}
	undepositedBank = &domain.GLAccount{ID: "gl-undep", Type: domain.Asset, Name: "Undeposited Funds", IsBankAccount: true}
)

func mkLine(txID string, amount int64, posting domain.PostingType, account *domain.GLAccount) domain.TransactionLine {
	return domain.TransactionLine{
		TransactionID: txID,
		Amount:        decimal.NewFromInt(amount),
		PostingType:   posting,
		Account:       account,
		GLAccountID:   account.ID,
	}
}

func mkTx(id, kind string, total int64) domain.Transaction {
	return domain.Transaction{ID: id, Type: kind, HeaderTotal: decimal.NewFromInt(total)}
}

func TestRollupFinances(t *testing.T) {
	tests := []struct {
		name  string
		param finance.RollupParams
		check func(t *testing.T, r domain.RollupResult)
	}{
		{
			name: "deposit and rent payments without bank lines",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{
					mkLine("deposit-tx", 5000, domain.Credit, depositLiab),
					mkLine("rent-tx", 5000, domain.Credit, rentIncome),
					mkLine("rent-tx", 50, domain.Credit, utilityIncome),
				},
				Transactions: []domain.Transaction{
					mkTx("deposit-tx", "Payment", 5000),
					mkTx("rent-tx", "Payment", 5050),
				},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "10050", r.Snapshot.CashBalance.String())
				assert.Equal(t, "-5000", r.Snapshot.SecurityDeposits.String())
				assert.Equal(t, "5050", r.Snapshot.AvailableBalance.String())
				assert.True(t, r.Diagnostics.UsedPaymentFallback)
				assert.Equal(t, "5000", r.Diagnostics.Totals.DepositsFromPayments.String())
			},
		},
		{
			name: "bank lines are preferred",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{
					mkLine("bank-tx", 10050, domain.Debit, operatingBank),
					mkLine("deposit-tx", 5000, domain.Credit, depositLiab),
				},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "10050", r.Snapshot.CashBalance.String())
				assert.Equal(t, "-5000", r.Snapshot.SecurityDeposits.String())
				assert.True(t, r.Diagnostics.UsedBankBalance)
				assert.Equal(t, 1, r.Diagnostics.BankLineCount)
			},
		},
		{
			name: "excluded accounts are ignored",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{
					mkLine("bank-tx", 1200, domain.Debit, legacyBank),
					mkLine("deposit-tx", 450, domain.Credit, legacyDeposit),
				},
				Transactions: []domain.Transaction{mkTx("bank-tx", "Payment", 750)},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "750", r.Snapshot.CashBalance.String())
				assert.True(t, r.Snapshot.SecurityDeposits.IsZero())
				assert.Equal(t, 0, r.Diagnostics.BankLineCount)
				assert.True(t, r.Diagnostics.UsedPaymentFallback)
			},
		},
		{
			name: "generic liabilities are not prepayments",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{mkLine("other", 200, domain.Credit, otherLiability)},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.True(t, r.Snapshot.SecurityDeposits.IsZero())
				assert.True(t, r.Snapshot.Prepayments.IsZero())
			},
		},
		{
			name: "prepayment liabilities",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{mkLine("prepay", 300, domain.Credit, prepaidRent)},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "300", r.Snapshot.Prepayments.String())
				assert.Equal(t, "-300", r.Snapshot.SecurityDeposits.String())
			},
		},
		{
			name: "insufficient bank lines fall back to payments",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{mkLine("bank-tx", 225, domain.Credit, operatingBank)},
				Transactions: []domain.Transaction{
					mkTx("deposit-tx", "Payment", 5000),
					mkTx("rent-tx", "Payment", 5050),
				},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "10050", r.Snapshot.CashBalance.String())
				assert.True(t, r.Diagnostics.IncompleteBankLines)
				assert.True(t, r.Diagnostics.UsedPaymentFallback)
				assert.False(t, r.Diagnostics.UsedBankBalance)
			},
		},
		{
			name: "receivable lines are kept out of bank totals",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{
					mkLine("bank", 5000, domain.Debit, trustBank),
					mkLine("ar", 5000, domain.Credit, receivable),
				},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "5000", r.Snapshot.CashBalance.String())
				assert.Equal(t, 1, r.Diagnostics.BankLineCount)
				assert.Equal(t, "-5000", r.Diagnostics.Totals.ARFallback.String())
			},
		},
		{
			name: "receivable total is not cash by default",
			param: finance.RollupParams{
				Lines:        []domain.TransactionLine{mkLine("ar", 400, domain.Debit, receivable)},
				UnitBalances: domain.UnitBalances{Balance: decimal.NewFromInt(75)},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "75", r.Snapshot.CashBalance.String())
				assert.False(t, r.Diagnostics.UsedARFallback)
				assert.Equal(t, "400", r.Diagnostics.Totals.ARFallback.String())
			},
		},
		{
			name: "receivable fallback when enabled",
			param: finance.RollupParams{
				Lines:   []domain.TransactionLine{mkLine("ar-space", 400, domain.Debit, receivable)},
				Options: finance.RollupOptions{ReceivableFallback: true},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "400", r.Snapshot.CashBalance.String())
				assert.True(t, r.Diagnostics.UsedARFallback)
				assert.Equal(t, 0, r.Diagnostics.BankLineCount)
			},
		},
		{
			name: "baseline is kept when nothing stronger exists",
			param: finance.RollupParams{
				UnitBalances: domain.UnitBalances{
					Balance:             decimal.NewFromInt(1800),
					DepositsHeldBalance: decimal.NewFromInt(1000),
					PrepaymentsBalance:  decimal.NewFromInt(200),
				},
				Reserve: decimal.NewFromInt(100),
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "1800", r.Snapshot.CashBalance.String())
				assert.Equal(t, "-1200", r.Snapshot.SecurityDeposits.String())
				assert.Equal(t, "200", r.Snapshot.Prepayments.String())
				assert.Equal(t, "100", r.Snapshot.Reserve.String())
				assert.Equal(t, "500", r.Snapshot.AvailableBalance.String())
				assert.False(t, r.Diagnostics.UsedBankBalance)
				assert.False(t, r.Diagnostics.UsedPaymentFallback)
			},
		},
		{
			name: "charge lines do not move deposits",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{
					mkLine("charge-tx", 1000, domain.Credit, depositLiab),
					mkLine("unknown-tx", 250, domain.Credit, depositLiab),
				},
				Transactions: []domain.Transaction{mkTx("charge-tx", "Charge", 1000)},
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "250", r.Diagnostics.Totals.Deposits.String())
				assert.Equal(t, "-250", r.Snapshot.SecurityDeposits.String())
			},
		},
		{
			name: "entity filter drops other entities",
			param: finance.RollupParams{
				Lines: []domain.TransactionLine{
					func() domain.TransactionLine {
						l := mkLine("a", 900, domain.Debit, operatingBank)
						l.AccountEntityType = domain.EntityRental
						return l
					}(),
					func() domain.TransactionLine {
						l := mkLine("b", 400, domain.Debit, operatingBank)
						l.AccountEntityType = domain.EntityCompany
						return l
					}(),
				},
				EntityType: domain.EntityRental,
			},
			check: func(t *testing.T, r domain.RollupResult) {
				assert.Equal(t, "900", r.Snapshot.CashBalance.String())
				assert.Equal(t, 1, r.Diagnostics.LineCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, finance.RollupFinances(tt.param))
		})
	}
}

func TestRollupFinances_BankPreferredOverPayments(t *testing.T) {
	r := finance.RollupFinances(finance.RollupParams{
		Lines: []domain.TransactionLine{mkLine("p1", 4000, domain.Debit, operatingBank)},
		Transactions: []domain.Transaction{
			mkTx("p1", "Payment", 4000),
			mkTx("p2", "Payment", 6000),
		},
	})
	assert.False(t, r.Diagnostics.IncompleteBankLines)
	assert.True(t, r.Diagnostics.UsedBankBalance)
	assert.Equal(t, "4000", r.Snapshot.CashBalance.String())
	assert.Equal(t, "10000", r.Diagnostics.Totals.Payments.String())
}

func TestRollupFinances_BankSignCorrection(t *testing.T) {
	lines := []domain.TransactionLine{
		mkLine("dep", 2500, domain.Credit, undepositedBank),
		mkLine("dep", 2500, domain.Debit, depositLiab),
	}

	t.Run("flips when only deposits explain the bank total", func(t *testing.T) {
		r := finance.RollupFinances(finance.RollupParams{Lines: lines})
		assert.True(t, r.Diagnostics.BankSignCorrected)
		assert.Equal(t, "2500", r.Snapshot.CashBalance.String())
		assert.Equal(t, "2500", r.Diagnostics.Totals.Bank.String())
	})

	t.Run("does not flip when payments exist", func(t *testing.T) {
		r := finance.RollupFinances(finance.RollupParams{
			Lines:        lines,
			Transactions: []domain.Transaction{mkTx("other", "Payment", 2500)},
		})
		assert.False(t, r.Diagnostics.BankSignCorrected)
		assert.Equal(t, "-2500", r.Diagnostics.Totals.Bank.String())
	})

	t.Run("does not flip on different magnitudes", func(t *testing.T) {
		r := finance.RollupFinances(finance.RollupParams{
			Lines: []domain.TransactionLine{
				mkLine("dep", 2500, domain.Credit, undepositedBank),
				mkLine("dep", 2400, domain.Debit, depositLiab),
			},
		})
		assert.False(t, r.Diagnostics.BankSignCorrected)
		assert.Equal(t, "-2500", r.Snapshot.CashBalance.String())
	})
}

func TestRollupFinances_AsOf(t *testing.T) {
	asOf := time.Date(2024, 6, 30, 23, 59, 0, 0, time.UTC)
	r := finance.RollupFinances(finance.RollupParams{AsOf: asOf})
	assert.Equal(t, "2024-06-30", r.Snapshot.AsOfDate())
	assert.True(t, r.Snapshot.AsOf.Equal(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))

	r = finance.RollupFinances(finance.RollupParams{})
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), r.Snapshot.AsOfDate())
}

func TestRollupFinances_SecurityDepositsNeverPositive(t *testing.T) {
	for _, posting := range []domain.PostingType{domain.Debit, domain.Credit} {
		r := finance.RollupFinances(finance.RollupParams{
			Lines: []domain.TransactionLine{
				mkLine("d", 700, posting, depositLiab),
				mkLine("p", 90, posting, prepaidRent),
			},
		})
		assert.False(t, r.Snapshot.SecurityDeposits.IsPositive(), "posting %s", posting)
		assert.Equal(t, "-790", r.Snapshot.SecurityDeposits.String())
	}
}
