package models

import "database/sql"

// GLAccount is a row of gl_accounts joined with its category label.
type GLAccount struct {
	GLAccountID                string         `db:"gl_account_id"`
	Name                       string         `db:"name"`
	AccountNumber              sql.NullString `db:"account_number"`
	Type                       string         `db:"type"`
	SubType                    sql.NullString `db:"sub_type"`
	Category                   sql.NullString `db:"category"` // gl_account_category.category
	IsBankAccount              bool           `db:"is_bank_account"`
	IsSecurityDepositLiability bool           `db:"is_security_deposit_liability"`
	ExcludeFromCashBalances    bool           `db:"exclude_from_cash_balances"`
}
