package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingType indicates whether a transaction line is a Debit or a Credit.
// PostingUnknown is kept distinct so callers can decide how to treat unresolved values.
type PostingType string

const (
	Debit          PostingType = "debit"
	Credit         PostingType = "credit"
	PostingUnknown PostingType = ""
)

// TransactionKind is the semantic category inferred from a transaction's free-text type.
type TransactionKind string

const (
	KindPayment TransactionKind = "payment"
	KindCharge  TransactionKind = "charge"
	KindUnknown TransactionKind = ""
)

// TransactionLine is one leg of a double-entry transaction.
// Amount is never negative; the sign is always derived from PostingType and the account.
type TransactionLine struct {
	ID                string          `json:"id,omitempty"`
	TransactionID     string          `json:"transactionID,omitempty"`
	GLAccountID       string          `json:"glAccountID,omitempty"`
	Account           *GLAccount      `json:"account,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	PostingType       PostingType     `json:"postingType"`
	PropertyID        string          `json:"propertyID,omitempty"`
	UnitID            string          `json:"unitID,omitempty"`
	LeaseID           string          `json:"leaseID,omitempty"`
	BuildiumLeaseID   string          `json:"buildiumLeaseID,omitempty"`
	AccountEntityType EntityType      `json:"accountEntityType,omitempty"`
	Date              time.Time       `json:"date,omitempty"`
}

// Transaction is the canonical transaction header. Whatever field names the source used,
// Type and HeaderTotal have already been resolved by the mapping layer.
type Transaction struct {
	ID          string            `json:"id,omitempty"`
	Type        string            `json:"type"`
	HeaderTotal decimal.Decimal   `json:"headerTotal"` // zero when absent
	Lines       []TransactionLine `json:"lines,omitempty"`
	LeaseID     string            `json:"leaseID,omitempty"`
	Date        time.Time         `json:"date,omitempty"`
	Memo        string            `json:"memo,omitempty"`
	Reference   string            `json:"reference,omitempty"`
}
