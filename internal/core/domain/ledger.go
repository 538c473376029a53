package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Basis is the reporting convention used to pick eligible transactions and dates.
type Basis string

const (
	BasisCash    Basis = "cash"
	BasisAccrual Basis = "accrual"
)

// ParseBasis maps any label other than "cash" to accrual.
func ParseBasis(raw string) Basis {
	if strings.EqualFold(strings.TrimSpace(raw), string(BasisCash)) {
		return BasisCash
	}
	return BasisAccrual
}

// LedgerLine is one flattened transaction line ready for general-ledger display.
type LedgerLine struct {
	TransactionID        string          `json:"transactionID,omitempty"`
	PropertyID           string          `json:"propertyID,omitempty"`
	PropertyLabel        string          `json:"propertyLabel,omitempty"`
	UnitID               string          `json:"unitID,omitempty"`
	UnitLabel            string          `json:"unitLabel,omitempty"`
	Date                 time.Time       `json:"date"`
	CreatedAt            time.Time       `json:"createdAt"`
	Amount               decimal.Decimal `json:"amount"`
	PostingType          PostingType     `json:"postingType"`
	Memo                 string          `json:"memo,omitempty"`
	GLAccountID          string          `json:"glAccountID"`
	GLAccountName        string          `json:"glAccountName"`
	GLAccountNumber      string          `json:"glAccountNumber,omitempty"`
	GLAccountType        AccountType     `json:"glAccountType"`
	TransactionType      string          `json:"transactionType,omitempty"`
	TransactionMemo      string          `json:"transactionMemo,omitempty"`
	TransactionReference string          `json:"transactionReference,omitempty"`
}

// LedgerEntry pairs a line with its normal-balance signed amount.
type LedgerEntry struct {
	Line   LedgerLine      `json:"line"`
	Signed decimal.Decimal `json:"signed"`
}

// LedgerGroup is the general-ledger block of a single GL account.
type LedgerGroup struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Number string          `json:"number,omitempty"`
	Type   AccountType     `json:"type"`
	Prior  decimal.Decimal `json:"prior"`
	Net    decimal.Decimal `json:"net"`
	Lines  []LedgerEntry   `json:"lines"`
}

// Ending is the balance carried out of the period.
func (g LedgerGroup) Ending() decimal.Decimal {
	return g.Prior.Add(g.Net)
}

// LedgerRow is a presentation row: an entry plus the running balance after it.
type LedgerRow struct {
	LedgerEntry
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerQuery selects the lines of a general-ledger report.
// Empty id filters mean "no restriction".
type LedgerQuery struct {
	From         time.Time
	To           time.Time
	Basis        Basis
	PropertyIDs  []string
	UnitIDs      []string
	GLAccountIDs []string
}

// GeneralLedger is the assembled general-ledger report.
type GeneralLedger struct {
	Basis  Basis
	From   time.Time
	To     time.Time
	Groups []LedgerGroup
}
