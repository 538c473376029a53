package accounting

import (
	"strings"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ParsePostingType resolves a raw posting marker. It accepts "debit"/"dr" and
// "credit"/"cr" in any case; anything else is PostingUnknown.
func ParsePostingType(raw string) domain.PostingType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debit", "dr":
		return domain.Debit
	case "credit", "cr":
		return domain.Credit
	default:
		return domain.PostingUnknown
	}
}

// SignedByNormalBalance applies the accounting sign convention to an unsigned amount.
//
//	DEBIT to ASSET/EXPENSE -> Positive (+)
//	CREDIT to ASSET/EXPENSE -> Negative (-)
//	DEBIT to any other type -> Negative (-)
//	CREDIT to any other type -> Positive (+)
//
// An unresolved posting type is treated as a debit. This mirrors how synced data has
// always been read; it is kept for compatibility and is not an accounting rule.
func SignedByNormalBalance(amount decimal.Decimal, postingType domain.PostingType, accountType domain.AccountType) decimal.Decimal {
	amount = amount.Abs()
	if amount.IsZero() {
		return decimal.Zero
	}

	isCredit := postingType == domain.Credit
	if accountType.IsDebitNormal() == isCredit {
		return amount.Neg()
	}
	return amount
}
