package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemoteLeaseBalances are the outstanding balances reported by the property-management
// system of record, already coerced to finite numbers.
type RemoteLeaseBalances struct {
	Balance      decimal.Decimal `json:"balance"`
	Prepayments  decimal.Decimal `json:"prepayments"`
	DepositsHeld decimal.Decimal `json:"depositsHeld"`
}

// LeaseBalances is the resolved lease position shown to users.
type LeaseBalances struct {
	Balance      decimal.Decimal `json:"balance"`
	Prepayments  decimal.Decimal `json:"prepayments"`
	DepositsHeld decimal.Decimal `json:"depositsHeld"`
	// ComputedLocally is true when Balance was derived from local transactions.
	ComputedLocally bool `json:"computedLocally"`
}

// Lease identifies a lease locally and, when synced, in the remote system.
type Lease struct {
	ID              string `json:"id"`
	PropertyID      string `json:"propertyID"`
	UnitID          string `json:"unitID,omitempty"`
	BuildiumLeaseID string `json:"buildiumLeaseID,omitempty"`
}

// LeaseLedgerRow is one transaction on a lease ledger with its running balance.
type LeaseLedgerRow struct {
	TransactionID  string          `json:"transactionID"`
	Date           time.Time       `json:"date"`
	Type           string          `json:"type"`
	Account        string          `json:"account,omitempty"`
	Memo           string          `json:"memo,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	SignedAmount   decimal.Decimal `json:"signedAmount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// Property carries the property-level settings the finance rollup needs.
type Property struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	Reserve                  decimal.Decimal `json:"reserve"`
	OperatingBankGLAccountID string          `json:"operatingBankGLAccountID,omitempty"`
	DepositTrustGLAccountID  string          `json:"depositTrustGLAccountID,omitempty"`
}

// Unit carries the stored balances of a unit within a property.
type Unit struct {
	ID         string       `json:"id"`
	PropertyID string       `json:"propertyID"`
	Label      string       `json:"label"`
	Balances   UnitBalances `json:"balances"`
}

// LeaseBalanceReport is the resolved balance of a lease together with its ledger.
type LeaseBalanceReport struct {
	LeaseID  string           `json:"leaseID"`
	Balances LeaseBalances    `json:"balances"`
	Ledger   []LeaseLedgerRow `json:"ledger"`
	// RemoteAvailable is false when the remote balances could not be fetched.
	RemoteAvailable bool `json:"remoteAvailable"`
}
