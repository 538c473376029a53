package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitBalances are the stored balances of a unit, used as the rollup baseline
// when no stronger signal exists in the supplied lines or transactions.
type UnitBalances struct {
	Balance             decimal.Decimal `json:"balance"`
	DepositsHeldBalance decimal.Decimal `json:"depositsHeldBalance"`
	PrepaymentsBalance  decimal.Decimal `json:"prepaymentsBalance"`
}

// FinancialSnapshot is the consolidated balance position produced by a rollup.
// It is recomputed per call and never persisted.
type FinancialSnapshot struct {
	CashBalance decimal.Decimal `json:"cash_balance"`
	// SecurityDeposits holds deposits plus prepayments and is always <= 0.
	SecurityDeposits decimal.Decimal `json:"security_deposits"`
	Prepayments      decimal.Decimal `json:"prepayments"`
	Reserve          decimal.Decimal `json:"reserve"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	AsOf             time.Time       `json:"-"`
}

// AsOfDate renders the snapshot date without a time component.
func (s FinancialSnapshot) AsOfDate() string {
	return s.AsOf.Format("2006-01-02")
}

// RollupTotals are the intermediate totals a rollup computed.
type RollupTotals struct {
	Bank                    decimal.Decimal `json:"bank"`
	Deposits                decimal.Decimal `json:"deposits"`
	Prepayments             decimal.Decimal `json:"prepayments"`
	Payments                decimal.Decimal `json:"payments"`
	DepositsFromPayments    decimal.Decimal `json:"depositsFromPayments"`
	PrepaymentsFromPayments decimal.Decimal `json:"prepaymentsFromPayments"`
	ARFallback              decimal.Decimal `json:"arFallback"`
}

// RollupDiagnostics exposes every intermediate total and branch decision of a rollup
// so that a wrong heuristic choice can be spotted after the fact.
type RollupDiagnostics struct {
	Totals              RollupTotals `json:"totals"`
	UsedBankBalance     bool         `json:"usedBankBalance"`
	UsedPaymentFallback bool         `json:"usedPaymentFallback"`
	UsedARFallback      bool         `json:"usedArFallback"`
	IncompleteBankLines bool         `json:"incompleteBankLines"`
	BankSignCorrected   bool         `json:"bankSignCorrected"`
	BankLineCount       int          `json:"bankLineCount"`
	LineCount           int          `json:"lineCount"`
	TransactionCount    int          `json:"transactionCount"`
}

// RollupResult pairs a snapshot with the diagnostics that produced it.
type RollupResult struct {
	Snapshot    FinancialSnapshot `json:"fin"`
	Diagnostics RollupDiagnostics `json:"debug"`
}

// PropertyFinancials is the rollup of a whole property plus the bank lines it used.
type PropertyFinancials struct {
	PropertyID string       `json:"propertyID"`
	Result     RollupResult `json:"result"`
	// BankLines is capped; BankLinesTruncated reports whether lines were left out.
	BankLines          []TransactionLine `json:"bankLines"`
	BankLinesTruncated bool              `json:"bankLinesTruncated"`
}

// SignedTransaction is the signed effect of one transaction on a lease balance.
type SignedTransaction struct {
	ID           string          `json:"id,omitempty"`
	Type         string          `json:"type"`
	Kind         TransactionKind `json:"kind"`
	SignedAmount decimal.Decimal `json:"signedAmount"`
}
