package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Property is a row of properties.
type Property struct {
	PropertyID               string              `db:"id"`
	Name                     string              `db:"name"`
	Reserve                  decimal.NullDecimal `db:"reserve"`
	OperatingBankGLAccountID sql.NullString      `db:"operating_bank_gl_account_id"`
	DepositTrustGLAccountID  sql.NullString      `db:"deposit_trust_gl_account_id"`
}

// Unit is a row of units with its stored balances.
type Unit struct {
	UnitID              string              `db:"id"`
	PropertyID          string              `db:"property_id"`
	UnitNumber          sql.NullString      `db:"unit_number"`
	Balance             decimal.NullDecimal `db:"balance"`
	DepositsHeldBalance decimal.NullDecimal `db:"deposits_held_balance"`
	PrepaymentsBalance  decimal.NullDecimal `db:"prepayments_balance"`
}

// Lease is a row of lease.
type Lease struct {
	LeaseID         string         `db:"id"`
	PropertyID      string         `db:"property_id"`
	UnitID          sql.NullString `db:"unit_id"`
	BuildiumLeaseID sql.NullString `db:"buildium_lease_id"`
}
