package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one transaction line joined with its transaction, GL account,
// property and unit, as selected for general-ledger reports.
type LedgerRow struct {
	TransactionID        sql.NullString  `db:"transaction_id"`
	PropertyID           sql.NullString  `db:"property_id"`
	PropertyName         sql.NullString  `db:"property_name"`
	UnitID               sql.NullString  `db:"unit_id"`
	UnitNumber           sql.NullString  `db:"unit_number"`
	UnitName             sql.NullString  `db:"unit_name"`
	Date                 time.Time       `db:"date"`
	CreatedAt            time.Time       `db:"created_at"`
	Amount               decimal.Decimal `db:"amount"`
	PostingType          sql.NullString  `db:"posting_type"`
	Memo                 sql.NullString  `db:"memo"`
	GLAccountID          string          `db:"gl_account_id"`
	GLAccountName        sql.NullString  `db:"gl_account_name"`
	GLAccountNumber      sql.NullString  `db:"gl_account_number"`
	GLAccountType        sql.NullString  `db:"gl_account_type"`
	TransactionType      sql.NullString  `db:"transaction_type"`
	TransactionMemo      sql.NullString  `db:"transaction_memo"`
	TransactionReference sql.NullString  `db:"transaction_reference"`
}
