package accounting

import (
	"strings"
	"unicode"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

const receivableKey = "accountsreceivable"

var (
	bankKeywords    = []string{"cash", "bank", "checking", "operating", "trust"}
	depositKeywords = []string{"deposit"}
	prepayKeywords  = []string{"prepay", "prepaid", "advance"}
)

// normalizeLabel lowercases a label and drops everything that is not a letter or digit,
// so "Accounts_Receivable" and "accounts receivable" compare equal.
func normalizeLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func labelsContainAny(keywords []string, labels ...string) bool {
	for _, l := range labels {
		if containsAny(normalizeLabel(l), keywords) {
			return true
		}
	}
	return false
}

// IsReceivableAccount reports whether the account looks like accounts receivable.
func IsReceivableAccount(account *domain.GLAccount) bool {
	if account == nil {
		return false
	}
	return strings.Contains(normalizeLabel(account.SubType), receivableKey) ||
		strings.Contains(normalizeLabel(account.Name), "receivable")
}

// IsBankAccount reports whether lines on the account move cash.
// Receivable-like accounts never count, even when flagged or asset-typed.
func IsBankAccount(account *domain.GLAccount) bool {
	if account == nil || account.ExcludeFromCashBalances {
		return false
	}
	if IsReceivableAccount(account) {
		return false
	}
	return account.IsBankAccount ||
		account.Type == domain.Asset ||
		labelsContainAny(bankKeywords, account.SubType, account.Name)
}

// IsDepositAccount reports whether the account holds security deposits.
func IsDepositAccount(account *domain.GLAccount) bool {
	if account == nil || account.ExcludeFromCashBalances {
		return false
	}
	if account.IsSecurityDepositLiability {
		return true
	}
	return account.Type == domain.Liability &&
		labelsContainAny(depositKeywords, account.SubType, account.Category, account.Name)
}

// IsPrepayAccount reports whether the account holds tenant prepayments.
func IsPrepayAccount(account *domain.GLAccount) bool {
	if account == nil || account.ExcludeFromCashBalances {
		return false
	}
	return account.Type == domain.Liability &&
		labelsContainAny(prepayKeywords, account.SubType, account.Category, account.Name)
}

// isReceivableBucket is the stricter receivable test used for the AR bucket of a line.
func isReceivableBucket(account *domain.GLAccount) bool {
	if account == nil {
		return false
	}
	return normalizeLabel(account.SubType) == receivableKey ||
		strings.Contains(normalizeLabel(account.Name), receivableKey)
}

// LineFlags records which buckets a line belongs to.
type LineFlags struct {
	Bank       bool
	Deposit    bool
	Prepay     bool
	Receivable bool
}

// LineClassification holds the signed contribution of one line to each bucket.
type LineClassification struct {
	BankSigned    decimal.Decimal
	DepositSigned decimal.Decimal
	PrepaySigned  decimal.Decimal
	ARSigned      decimal.Decimal
	Flags         LineFlags
}

// ClassifyLine splits a line into its bank, deposit, prepayment and receivable contributions.
// Bank and receivable buckets are signed by the account's own type; deposit and prepayment
// buckets are always signed as liabilities, whatever type the account declares.
func ClassifyLine(line domain.TransactionLine) LineClassification {
	amount := line.Amount.Abs()
	account := line.Account
	if amount.IsZero() || (account != nil && account.ExcludeFromCashBalances) {
		return LineClassification{}
	}

	var accountType domain.AccountType
	if account != nil {
		accountType = account.Type
	}
	signed := SignedByNormalBalance(amount, line.PostingType, accountType)
	liabilitySigned := SignedByNormalBalance(amount, line.PostingType, domain.Liability)

	flags := LineFlags{
		Bank:       IsBankAccount(account),
		Deposit:    IsDepositAccount(account),
		Prepay:     IsPrepayAccount(account),
		Receivable: isReceivableBucket(account),
	}

	var c LineClassification
	c.Flags = flags
	if flags.Bank {
		c.BankSigned = signed
	}
	if flags.Deposit {
		c.DepositSigned = liabilitySigned
	}
	if flags.Prepay {
		c.PrepaySigned = liabilitySigned
	}
	if flags.Receivable {
		c.ARSigned = signed
	}
	return c
}

// SignedAmountFromLine signs a line by its account's normal balance.
func SignedAmountFromLine(line domain.TransactionLine) decimal.Decimal {
	var accountType domain.AccountType
	if line.Account != nil {
		accountType = line.Account.Type
	}
	return SignedByNormalBalance(line.Amount, line.PostingType, accountType)
}
