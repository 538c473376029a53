package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of transactions. TotalAmount is nullable because synced
// headers frequently arrive without a total.
type Transaction struct {
	TransactionID   string              `db:"id"`
	TransactionType string              `db:"transaction_type"`
	TotalAmount     decimal.NullDecimal `db:"total_amount"`
	LeaseID         sql.NullString      `db:"lease_id"`
	BuildiumLeaseID sql.NullString      `db:"buildium_lease_id"`
	Date            time.Time           `db:"date"`
	Memo            sql.NullString      `db:"memo"`
	Reference       sql.NullString      `db:"reference_number"`
	Lines           []TransactionLine   `db:"-"`
}

// TransactionLine is a row of transaction_lines. Amount is stored unsigned.
type TransactionLine struct {
	LineID            string          `db:"id"`
	TransactionID     sql.NullString  `db:"transaction_id"`
	GLAccountID       string          `db:"gl_account_id"`
	Amount            decimal.Decimal `db:"amount"`
	PostingType       string          `db:"posting_type"`
	PropertyID        sql.NullString  `db:"property_id"`
	UnitID            sql.NullString  `db:"unit_id"`
	LeaseID           sql.NullString  `db:"lease_id"`
	BuildiumLeaseID   sql.NullString  `db:"buildium_lease_id"`
	AccountEntityType sql.NullString  `db:"account_entity_type"`
	Date              time.Time       `db:"date"`
	Account           *GLAccount      `db:"-"`
}
