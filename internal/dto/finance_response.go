package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	"github.com/shopspring/decimal"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// SnapshotResponse is the consolidated balance position.
type SnapshotResponse struct {
	CashBalance      decimal.Decimal `json:"cash_balance"`
	SecurityDeposits decimal.Decimal `json:"security_deposits"`
	Prepayments      decimal.Decimal `json:"prepayments"`
	Reserve          decimal.Decimal `json:"reserve"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	AsOf             string          `json:"as_of"`
}

// RollupResponse is a snapshot together with the diagnostics that produced it.
type RollupResponse struct {
	Fin   SnapshotResponse         `json:"fin"`
	Debug domain.RollupDiagnostics `json:"debug"`
}

// ToRollupResponse converts a rollup result.
func ToRollupResponse(r domain.RollupResult) RollupResponse {
	s := r.Snapshot
	return RollupResponse{
		Fin: SnapshotResponse{
			CashBalance:      s.CashBalance,
			SecurityDeposits: s.SecurityDeposits,
			Prepayments:      s.Prepayments,
			Reserve:          s.Reserve,
			AvailableBalance: s.AvailableBalance,
			AsOf:             s.AsOfDate(),
		},
		Debug: r.Diagnostics,
	}
}

// BankLineResponse is one bank-account line included in a property rollup.
type BankLineResponse struct {
	ID            string             `json:"id,omitempty"`
	TransactionID string             `json:"transactionID,omitempty"`
	GLAccountID   string             `json:"glAccountID,omitempty"`
	GLAccountName string             `json:"glAccountName,omitempty"`
	Amount        decimal.Decimal    `json:"amount"`
	PostingType   domain.PostingType `json:"postingType"`
	Date          string             `json:"date,omitempty"`
}

// PropertyFinancialsResponse is the property rollup plus the bank lines it used.
type PropertyFinancialsResponse struct {
	PropertyID string `json:"propertyID"`
	RollupResponse
	BankLines          []BankLineResponse `json:"bankLines"`
	BankLinesTruncated bool               `json:"bankLinesTruncated"`
}

// ToPropertyFinancialsResponse converts property financials.
func ToPropertyFinancialsResponse(pf *domain.PropertyFinancials) PropertyFinancialsResponse {
	lines := make([]BankLineResponse, len(pf.BankLines))
	for i, l := range pf.BankLines {
		lines[i] = BankLineResponse{
			ID:            l.ID,
			TransactionID: l.TransactionID,
			GLAccountID:   l.GLAccountID,
			Amount:        l.Amount,
			PostingType:   l.PostingType,
			Date:          formatDate(l.Date),
		}
		if l.Account != nil {
			lines[i].GLAccountName = l.Account.Name
			if lines[i].GLAccountID == "" {
				lines[i].GLAccountID = l.Account.ID
			}
		}
	}
	return PropertyFinancialsResponse{
		PropertyID:         pf.PropertyID,
		RollupResponse:     ToRollupResponse(pf.Result),
		BankLines:          lines,
		BankLinesTruncated: pf.BankLinesTruncated,
	}
}

// UnitFinancialsResponse is the rollup of a single unit.
type UnitFinancialsResponse struct {
	UnitID string `json:"unitID"`
	RollupResponse
}

// SignedTransactionsResponse lists per-transaction signed amounts and their sum.
type SignedTransactionsResponse struct {
	Transactions []domain.SignedTransaction `json:"transactions"`
	Net          decimal.Decimal            `json:"net"`
}

// LeaseLedgerRowResponse is one row of a lease ledger.
type LeaseLedgerRowResponse struct {
	TransactionID  string          `json:"transactionID"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Account        string          `json:"account,omitempty"`
	Memo           string          `json:"memo,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	SignedAmount   decimal.Decimal `json:"signedAmount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LeaseBalanceResponse is a resolved lease position and its ledger.
type LeaseBalanceResponse struct {
	LeaseID         string                   `json:"leaseID,omitempty"`
	Balance         decimal.Decimal          `json:"balance"`
	Prepayments     decimal.Decimal          `json:"prepayments"`
	DepositsHeld    decimal.Decimal          `json:"depositsHeld"`
	ComputedLocally bool                     `json:"computedLocally"`
	RemoteAvailable bool                     `json:"remoteAvailable"`
	Ledger          []LeaseLedgerRowResponse `json:"ledger"`
}

// ToLeaseBalanceResponse converts a lease balance report.
func ToLeaseBalanceResponse(r domain.LeaseBalanceReport) LeaseBalanceResponse {
	rows := make([]LeaseLedgerRowResponse, len(r.Ledger))
	for i, row := range r.Ledger {
		rows[i] = LeaseLedgerRowResponse{
			TransactionID:  row.TransactionID,
			Date:           formatDate(row.Date),
			Type:           row.Type,
			Account:        row.Account,
			Memo:           row.Memo,
			Reference:      row.Reference,
			Amount:         row.Amount,
			SignedAmount:   row.SignedAmount,
			RunningBalance: row.RunningBalance,
		}
	}
	return LeaseBalanceResponse{
		LeaseID:         r.LeaseID,
		Balance:         r.Balances.Balance,
		Prepayments:     r.Balances.Prepayments,
		DepositsHeld:    r.Balances.DepositsHeld,
		ComputedLocally: r.Balances.ComputedLocally,
		RemoteAvailable: r.RemoteAvailable,
		Ledger:          rows,
	}
}

// LedgerRowResponse is a general-ledger line with its running balance.
type LedgerRowResponse struct {
	TransactionID   string             `json:"transactionID,omitempty"`
	Date            string             `json:"date"`
	Property        string             `json:"property,omitempty"`
	Unit            string             `json:"unit,omitempty"`
	TransactionType string             `json:"transactionType,omitempty"`
	Memo            string             `json:"memo,omitempty"`
	Reference       string             `json:"reference,omitempty"`
	Amount          decimal.Decimal    `json:"amount"`
	PostingType     domain.PostingType `json:"postingType"`
	Signed          decimal.Decimal    `json:"signed"`
	RunningBalance  decimal.Decimal    `json:"runningBalance"`
}

// LedgerGroupResponse is the block of one GL account, rows most recent first.
type LedgerGroupResponse struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Number string              `json:"number,omitempty"`
	Type   domain.AccountType  `json:"type"`
	Prior  decimal.Decimal     `json:"prior"`
	Net    decimal.Decimal     `json:"net"`
	Ending decimal.Decimal     `json:"ending"`
	Rows   []LedgerRowResponse `json:"rows"`
}

// GeneralLedgerResponse is the general-ledger report.
type GeneralLedgerResponse struct {
	Basis  domain.Basis          `json:"basis"`
	From   string                `json:"from,omitempty"`
	To     string                `json:"to,omitempty"`
	Groups []LedgerGroupResponse `json:"groups"`
}

// ToGeneralLedgerResponse converts a report, presenting each group's running balance.
func ToGeneralLedgerResponse(gl domain.GeneralLedger) GeneralLedgerResponse {
	groups := make([]LedgerGroupResponse, len(gl.Groups))
	for i, g := range gl.Groups {
		presented := finance.PresentLedgerGroup(g)
		rows := make([]LedgerRowResponse, len(presented))
		for j, r := range presented {
			l := r.Line
			memo := l.Memo
			if memo == "" {
				memo = l.TransactionMemo
			}
			rows[j] = LedgerRowResponse{
				TransactionID:   l.TransactionID,
				Date:            formatDate(l.Date),
				Property:        l.PropertyLabel,
				Unit:            l.UnitLabel,
				TransactionType: l.TransactionType,
				Memo:            memo,
				Reference:       l.TransactionReference,
				Amount:          l.Amount,
				PostingType:     l.PostingType,
				Signed:          r.Signed,
				RunningBalance:  r.RunningBalance,
			}
		}
		groups[i] = LedgerGroupResponse{
			ID:     g.ID,
			Name:   g.Name,
			Number: g.Number,
			Type:   g.Type,
			Prior:  g.Prior,
			Net:    g.Net,
			Ending: g.Ending(),
			Rows:   rows,
		}
	}
	return GeneralLedgerResponse{
		Basis:  gl.Basis,
		From:   formatDate(gl.From),
		To:     formatDate(gl.To),
		Groups: groups,
	}
}
