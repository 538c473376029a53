package accounting

import (
	"strings"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	paymentKeywords = []string{"payment", "credit", "refund", "adjustment", "receipt"}
	chargeKeywords  = []string{"charge", "invoice", "debit", "bill"}
)

// TransactionKindOf infers whether a transaction type label is payment-like or charge-like.
// Payment keywords are checked first, so "Credit Card Charge" is a payment.
func TransactionKindOf(transactionType string) domain.TransactionKind {
	t := strings.ToLower(transactionType)
	switch {
	case containsAny(t, paymentKeywords):
		return domain.KindPayment
	case containsAny(t, chargeKeywords):
		return domain.KindCharge
	default:
		return domain.KindUnknown
	}
}

// InferAmountFromLines returns the larger of the debit and credit sides of the lines.
// Lines with an unresolved posting type count on the debit side.
func InferAmountFromLines(lines []domain.TransactionLine) decimal.Decimal {
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, line := range lines {
		amt := line.Amount.Abs()
		if amt.IsZero() {
			continue
		}
		if line.PostingType == domain.Credit {
			creditTotal = creditTotal.Add(amt)
		} else {
			debitTotal = debitTotal.Add(amt)
		}
	}
	return decimal.Max(debitTotal, creditTotal)
}

// SignedAmountFromTransaction returns the net signed effect of a transaction on a
// tenant/lease balance: charges increase it, payments decrease it.
//
// The magnitude comes from the header total, or from the lines when the header is zero.
// The sign comes from the type label; when the label is neither payment- nor charge-like
// the header's own sign is kept, and an unsigned magnitude is returned if there was none.
func SignedAmountFromTransaction(tx domain.Transaction) decimal.Decimal {
	raw := tx.HeaderTotal
	amount := raw.Abs()
	if amount.IsZero() {
		amount = InferAmountFromLines(tx.Lines)
	}
	if amount.IsZero() {
		return decimal.Zero
	}

	switch TransactionKindOf(tx.Type) {
	case domain.KindPayment:
		return amount.Neg()
	case domain.KindCharge:
		return amount
	}
	if !raw.IsZero() {
		return raw
	}
	return amount
}

// NetSignedAmount sums SignedAmountFromTransaction over all transactions.
func NetSignedAmount(transactions []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		total = total.Add(SignedAmountFromTransaction(tx))
	}
	return total
}
