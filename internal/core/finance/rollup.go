// Package finance holds the pure balance computations: the rollup of lines and
// transactions into a snapshot, general-ledger grouping and lease balance resolution.
// Nothing in here performs I/O or keeps state between calls.
package finance

import (
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	// bank and deposit totals within this distance are treated as the same magnitude
	signCorrectionTolerance = decimal.New(1, -4)
	// bank lines covering less than a tenth of the payments are treated as incomplete
	incompleteBankDivisor = decimal.NewFromInt(10)
)

// RollupOptions switches optional rollup behavior.
type RollupOptions struct {
	// ReceivableFallback uses the receivable total as the cash balance when neither
	// bank lines nor payments produced one.
	ReceivableFallback bool
}

// RollupParams are the inputs of a single rollup.
type RollupParams struct {
	Lines        []domain.TransactionLine
	Transactions []domain.Transaction
	UnitBalances domain.UnitBalances
	Reserve      decimal.Decimal
	// EntityType restricts lines to one accounting entity; empty keeps every line.
	EntityType domain.EntityType
	// AsOf defaults to now and is truncated to the UTC calendar day.
	AsOf    time.Time
	Options RollupOptions
}

// normalizeLiability forces a liability balance to be reported as a non-positive value.
func normalizeLiability(v decimal.Decimal) decimal.Decimal {
	return v.Abs().Neg()
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func filterByEntity(lines []domain.TransactionLine, entity domain.EntityType) []domain.TransactionLine {
	if entity == "" {
		return lines
	}
	out := make([]domain.TransactionLine, 0, len(lines))
	for _, l := range lines {
		if l.AccountEntityType == entity {
			out = append(out, l)
		}
	}
	return out
}

// RollupFinances blends stored balances, classified lines and payment transactions into a
// single snapshot. Cash comes from bank lines when they look complete, otherwise from the
// payment total, otherwise from the unit baseline. Every intermediate total and decision is
// returned in the diagnostics.
func RollupFinances(p RollupParams) domain.RollupResult {
	lines := filterByEntity(p.Lines, p.EntityType)

	kindByID := make(map[string]domain.TransactionKind, len(p.Transactions))
	for _, tx := range p.Transactions {
		if tx.ID == "" {
			continue
		}
		if kind := accounting.TransactionKindOf(tx.Type); kind != domain.KindUnknown {
			kindByID[tx.ID] = kind
		}
	}

	var (
		bankTotal     = decimal.Zero
		depositTotal  = decimal.Zero
		prepayTotal   = decimal.Zero
		arTotal       = decimal.Zero
		bankLineCount int
		depositTxIDs  = make(map[string]struct{})
		prepayTxIDs   = make(map[string]struct{})
	)

	for _, line := range lines {
		c := accounting.ClassifyLine(line)
		bankTotal = bankTotal.Add(c.BankSigned)
		// a charge does not move a deposit or prepayment liability by itself;
		// lines of unknown transactions are still counted
		if kindByID[line.TransactionID] != domain.KindCharge {
			depositTotal = depositTotal.Add(c.DepositSigned)
			prepayTotal = prepayTotal.Add(c.PrepaySigned)
		}
		arTotal = arTotal.Add(c.ARSigned)

		if c.Flags.Bank {
			bankLineCount++
		}
		if line.TransactionID != "" {
			if c.Flags.Deposit {
				depositTxIDs[line.TransactionID] = struct{}{}
			}
			if c.Flags.Prepay {
				prepayTxIDs[line.TransactionID] = struct{}{}
			}
		}
	}

	cash := p.UnitBalances.Balance
	depositsHeld := p.UnitBalances.DepositsHeldBalance
	prepayments := p.UnitBalances.PrepaymentsBalance
	if !depositTotal.IsZero() {
		depositsHeld = depositTotal
	}
	if !prepayTotal.IsZero() {
		prepayments = prepayTotal
	}

	paymentsTotal := decimal.Zero
	depositsFromPayments := decimal.Zero
	prepaymentsFromPayments := decimal.Zero
	for _, tx := range p.Transactions {
		if accounting.TransactionKindOf(tx.Type) != domain.KindPayment {
			continue
		}
		amount := tx.HeaderTotal.Abs()
		paymentsTotal = paymentsTotal.Add(amount)
		if tx.ID == "" {
			continue
		}
		if _, ok := depositTxIDs[tx.ID]; ok {
			depositsFromPayments = depositsFromPayments.Add(amount)
		}
		if _, ok := prepayTxIDs[tx.ID]; ok {
			prepaymentsFromPayments = prepaymentsFromPayments.Add(amount)
		}
	}

	diag := domain.RollupDiagnostics{
		BankLineCount:    bankLineCount,
		LineCount:        len(lines),
		TransactionCount: len(p.Transactions),
	}

	// Deposit collections are sometimes synced with a bank line carrying the liability's
	// sign. Flip it only when nothing else explains the totals.
	if bankLineCount > 0 &&
		paymentsTotal.IsZero() &&
		depositsHeld.IsNegative() &&
		bankTotal.IsNegative() &&
		bankTotal.Abs().Sub(depositsHeld.Abs()).Abs().LessThan(signCorrectionTolerance) {
		bankTotal = bankTotal.Neg()
		diag.BankSignCorrected = true
	}

	diag.IncompleteBankLines = bankLineCount > 0 &&
		!paymentsTotal.IsZero() &&
		bankTotal.Abs().LessThan(paymentsTotal.Abs().Div(incompleteBankDivisor))

	switch {
	case bankLineCount > 0 && !diag.IncompleteBankLines:
		cash = bankTotal
		diag.UsedBankBalance = true
	case !paymentsTotal.IsZero():
		cash = paymentsTotal
		diag.UsedPaymentFallback = true
	case p.Options.ReceivableFallback && !arTotal.IsZero():
		cash = arTotal
		diag.UsedARFallback = true
	}

	if !depositsFromPayments.IsZero() {
		depositsHeld = depositsFromPayments
	}
	if !prepaymentsFromPayments.IsZero() {
		prepayments = prepaymentsFromPayments
	}

	securityDeposits := normalizeLiability(depositsHeld).Add(normalizeLiability(prepayments))

	diag.Totals = domain.RollupTotals{
		Bank:                    bankTotal,
		Deposits:                depositsHeld,
		Prepayments:             prepayments,
		Payments:                paymentsTotal,
		DepositsFromPayments:    depositsFromPayments,
		PrepaymentsFromPayments: prepaymentsFromPayments,
		ARFallback:              arTotal,
	}

	return domain.RollupResult{
		Snapshot: domain.FinancialSnapshot{
			CashBalance:      cash,
			SecurityDeposits: securityDeposits,
			Prepayments:      prepayments,
			Reserve:          p.Reserve,
			AvailableBalance: cash.Add(securityDeposits).Sub(p.Reserve),
			AsOf:             truncateToDay(p.AsOf),
		},
		Diagnostics: diag,
	}
}
