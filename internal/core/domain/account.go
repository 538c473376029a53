package domain

import "strings"

// AccountType defines the fundamental accounting type of a GL account.
// Values are stored lowercased; upstream casing ("Asset", "ASSET") is folded by ParseAccountType.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Income    AccountType = "income"
	Expense   AccountType = "expense"
)

// ParseAccountType lowercases and trims the raw type label. Unknown labels are kept
// as-is so that the normal-balance rules can treat them as credit-normal.
func ParseAccountType(raw string) AccountType {
	return AccountType(strings.ToLower(strings.TrimSpace(raw)))
}

// IsDebitNormal reports whether a debit increases the balance of this account type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// EntityType scopes a transaction line to a rental property or to the management company.
type EntityType string

const (
	EntityRental  EntityType = "Rental"
	EntityCompany EntityType = "Company"
)

// GLAccount is a chart-of-accounts entry as seen by the finance engine.
// The engine only reads accounts; it never creates or updates them.
type GLAccount struct {
	ID                         string      `json:"id"`
	Name                       string      `json:"name"`
	AccountNumber              string      `json:"accountNumber,omitempty"`
	Type                       AccountType `json:"type"`
	SubType                    string      `json:"subType,omitempty"`
	Category                   string      `json:"category,omitempty"`
	IsBankAccount              bool        `json:"isBankAccount"`
	IsSecurityDepositLiability bool        `json:"isSecurityDepositLiability"`
	ExcludeFromCashBalances    bool        `json:"excludeFromCashBalances"`
}
