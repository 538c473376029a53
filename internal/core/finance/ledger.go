package finance

import (
	"sort"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var accountTypeOrder = map[domain.AccountType]int{
	domain.Asset:     0,
	domain.Liability: 1,
	domain.Equity:    2,
	domain.Income:    3,
	domain.Expense:   4,
}

func typeRank(t domain.AccountType) int {
	if r, ok := accountTypeOrder[t]; ok {
		return r
	}
	return len(accountTypeOrder)
}

// lineBefore orders lines chronologically, using the creation time to break date ties.
func lineBefore(a, b domain.LedgerLine) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}

func signLedgerLine(l domain.LedgerLine) decimal.Decimal {
	return accounting.SignedByNormalBalance(l.Amount, l.PostingType, l.GLAccountType)
}

// BuildLedgerGroups groups prior-period and current-period lines by GL account.
// Prior lines only contribute to the carried-forward balance; accounts that only have
// prior activity still get a group. Groups are ordered by account type, name and id;
// lines within a group are chronological.
func BuildLedgerGroups(prior, period []domain.LedgerLine) []domain.LedgerGroup {
	byID := make(map[string]*domain.LedgerGroup)
	var order []string

	groupFor := func(l domain.LedgerLine) *domain.LedgerGroup {
		g, ok := byID[l.GLAccountID]
		if !ok {
			g = &domain.LedgerGroup{
				ID:     l.GLAccountID,
				Name:   l.GLAccountName,
				Number: l.GLAccountNumber,
				Type:   l.GLAccountType,
				Prior:  decimal.Zero,
				Net:    decimal.Zero,
				Lines:  []domain.LedgerEntry{},
			}
			byID[l.GLAccountID] = g
			order = append(order, l.GLAccountID)
		}
		return g
	}

	for _, l := range prior {
		g := groupFor(l)
		g.Prior = g.Prior.Add(signLedgerLine(l))
	}
	for _, l := range period {
		g := groupFor(l)
		signed := signLedgerLine(l)
		g.Net = g.Net.Add(signed)
		g.Lines = append(g.Lines, domain.LedgerEntry{Line: l, Signed: signed})
	}

	groups := make([]domain.LedgerGroup, 0, len(order))
	for _, id := range order {
		g := byID[id]
		sort.SliceStable(g.Lines, func(i, j int) bool {
			return lineBefore(g.Lines[i].Line, g.Lines[j].Line)
		})
		groups = append(groups, *g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if ra, rb := typeRank(a.Type), typeRank(b.Type); ra != rb {
			return ra < rb
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return groups
}

// PresentLedgerGroup returns the rows of a group most recent first, each carrying the
// running balance accumulated chronologically from the group's prior balance.
func PresentLedgerGroup(g domain.LedgerGroup) []domain.LedgerRow {
	entries := make([]domain.LedgerEntry, len(g.Lines))
	copy(entries, g.Lines)
	sort.SliceStable(entries, func(i, j int) bool {
		return lineBefore(entries[i].Line, entries[j].Line)
	})

	rows := make([]domain.LedgerRow, len(entries))
	running := g.Prior
	for i, e := range entries {
		running = running.Add(e.Signed)
		rows[i] = domain.LedgerRow{LedgerEntry: e, RunningBalance: running}
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}

// BuildGeneralLedger assembles a report for the query's range and basis. The basis has
// already been applied by whoever selected the lines; it is recorded here for display.
func BuildGeneralLedger(q domain.LedgerQuery, prior, period []domain.LedgerLine) domain.GeneralLedger {
	return domain.GeneralLedger{
		Basis:  q.Basis,
		From:   q.From,
		To:     q.To,
		Groups: BuildLedgerGroups(prior, period),
	}
}

// SplitLedgerLines separates lines dated before from (carried into the prior balance)
// from those within [from, to]. Lines after to are dropped. A zero bound is open.
// Bounds and line dates are compared by calendar day, so a timestamp late on the
// to day is still in the period.
func SplitLedgerLines(lines []domain.LedgerLine, from, to time.Time) (prior, period []domain.LedgerLine) {
	fromDay, toDay := calendarDay(from), calendarDay(to)
	for _, l := range lines {
		d := calendarDay(l.Date)
		switch {
		case !from.IsZero() && d.Before(fromDay):
			prior = append(prior, l)
		case !to.IsZero() && d.After(toDay):
		default:
			period = append(period, l)
		}
	}
	return prior, period
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
