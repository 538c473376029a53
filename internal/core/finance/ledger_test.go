package finance_test

import (
	"testing"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func ledgerLine(glID, name string, typ domain.AccountType, date time.Time, amount int64, posting domain.PostingType) domain.LedgerLine {
	return domain.LedgerLine{
		TransactionID: glID + "-" + date.Format("0102"),
		GLAccountID:   glID,
		GLAccountName: name,
		GLAccountType: typ,
		Date:          date,
		CreatedAt:     date.Add(9 * time.Hour),
		Amount:        decimal.NewFromInt(amount),
		PostingType:   posting,
	}
}

func TestBuildLedgerGroups(t *testing.T) {
	prior := []domain.LedgerLine{
		ledgerLine("gl-bank", "Operating Bank", domain.Asset, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), 1000, domain.Debit),
		ledgerLine("gl-bank", "Operating Bank", domain.Asset, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), 200, domain.Credit),
		ledgerLine("gl-dep", "Security Deposits", domain.Liability, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 500, domain.Credit),
	}
	period := []domain.LedgerLine{
		ledgerLine("gl-rent", "Rent Income", domain.Income, day(10), 1500, domain.Credit),
		ledgerLine("gl-bank", "Operating Bank", domain.Asset, day(10), 1500, domain.Debit),
		ledgerLine("gl-bank", "Operating Bank", domain.Asset, day(3), 300, domain.Credit),
		ledgerLine("gl-repairs", "Repairs", domain.Expense, day(3), 300, domain.Debit),
	}

	groups := finance.BuildLedgerGroups(prior, period)
	require.Len(t, groups, 4)

	assert.Equal(t, "gl-bank", groups[0].ID)
	assert.Equal(t, "gl-dep", groups[1].ID)
	assert.Equal(t, "gl-rent", groups[2].ID)
	assert.Equal(t, "gl-repairs", groups[3].ID)

	bank := groups[0]
	assert.Equal(t, "800", bank.Prior.String())
	assert.Equal(t, "1200", bank.Net.String())
	assert.Equal(t, "2000", bank.Ending().String())
	require.Len(t, bank.Lines, 2)
	assert.True(t, bank.Lines[0].Line.Date.Equal(day(3)), "lines are chronological")
	assert.Equal(t, "-300", bank.Lines[0].Signed.String())

	deposits := groups[1]
	assert.Equal(t, "500", deposits.Prior.String())
	assert.True(t, deposits.Net.IsZero())
	assert.Empty(t, deposits.Lines, "prior-only accounts still get a group")

	assert.Equal(t, "1500", groups[2].Net.String())
	assert.Equal(t, "300", groups[3].Net.String())
}

func TestBuildLedgerGroups_SortsByNameWithinType(t *testing.T) {
	period := []domain.LedgerLine{
		ledgerLine("gl-2", "Savings", domain.Asset, day(1), 10, domain.Debit),
		ledgerLine("gl-1", "Checking", domain.Asset, day(1), 10, domain.Debit),
		ledgerLine("gl-0", "Checking", domain.Asset, day(1), 10, domain.Debit),
		ledgerLine("gl-x", "Suspense", domain.AccountType("other"), day(1), 10, domain.Debit),
	}
	groups := finance.BuildLedgerGroups(nil, period)
	require.Len(t, groups, 4)
	assert.Equal(t, []string{"gl-0", "gl-1", "gl-2", "gl-x"}, []string{groups[0].ID, groups[1].ID, groups[2].ID, groups[3].ID})
}

func TestBuildLedgerGroups_Empty(t *testing.T) {
	assert.Empty(t, finance.BuildLedgerGroups(nil, nil))
}

func TestPresentLedgerGroup(t *testing.T) {
	first := ledgerLine("gl-bank", "Operating Bank", domain.Asset, day(5), 100, domain.Debit)
	second := ledgerLine("gl-bank", "Operating Bank", domain.Asset, day(5), 40, domain.Credit)
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	third := ledgerLine("gl-bank", "Operating Bank", domain.Asset, day(9), 10, domain.Debit)

	group := finance.BuildLedgerGroups(
		[]domain.LedgerLine{ledgerLine("gl-bank", "Operating Bank", domain.Asset, day(1), 1000, domain.Debit)},
		[]domain.LedgerLine{third, second, first},
	)[0]

	rows := finance.PresentLedgerGroup(group)
	require.Len(t, rows, 3)

	// most recent first
	assert.True(t, rows[0].Line.Date.Equal(day(9)))
	assert.Equal(t, "1070", rows[0].RunningBalance.String())
	assert.Equal(t, "-40", rows[1].Signed.String())
	assert.Equal(t, "1060", rows[1].RunningBalance.String())
	assert.Equal(t, "1100", rows[2].RunningBalance.String())

	assert.True(t, rows[0].RunningBalance.Equal(group.Ending()))
}

func TestPresentLedgerGroup_DoesNotReorderGroup(t *testing.T) {
	group := finance.BuildLedgerGroups(nil, []domain.LedgerLine{
		ledgerLine("gl", "A", domain.Asset, day(1), 1, domain.Debit),
		ledgerLine("gl", "A", domain.Asset, day(2), 2, domain.Debit),
	})[0]
	_ = finance.PresentLedgerGroup(group)
	assert.True(t, group.Lines[0].Line.Date.Equal(day(1)))
}

func TestBuildGeneralLedger(t *testing.T) {
	q := domain.LedgerQuery{From: day(1), To: day(31), Basis: domain.BasisCash}
	gl := finance.BuildGeneralLedger(q, nil, []domain.LedgerLine{
		ledgerLine("gl", "A", domain.Asset, day(2), 2, domain.Debit),
	})
	assert.Equal(t, domain.BasisCash, gl.Basis)
	assert.True(t, gl.From.Equal(day(1)))
	assert.Len(t, gl.Groups, 1)
}

func TestSplitLedgerLines(t *testing.T) {
	lines := []domain.LedgerLine{
		ledgerLine("gl", "A", domain.Asset, day(1), 1, domain.Debit),
		ledgerLine("gl", "A", domain.Asset, day(10), 2, domain.Debit),
		ledgerLine("gl", "A", domain.Asset, day(20), 3, domain.Debit),
		ledgerLine("gl", "A", domain.Asset, day(31), 4, domain.Debit),
	}

	prior, period := finance.SplitLedgerLines(lines, day(10), day(20))
	require.Len(t, prior, 1)
	assert.Equal(t, "1", prior[0].Amount.String())
	require.Len(t, period, 2)
	assert.Equal(t, "2", period[0].Amount.String())
	assert.Equal(t, "3", period[1].Amount.String())

	prior, period = finance.SplitLedgerLines(lines, time.Time{}, time.Time{})
	assert.Empty(t, prior)
	assert.Len(t, period, 4)
}

func TestSplitLedgerLines_ComparesCalendarDays(t *testing.T) {
	lines := []domain.LedgerLine{
		ledgerLine("a", "A", domain.Asset, day(9).Add(23*time.Hour), 1, domain.Debit),
		ledgerLine("a", "A", domain.Asset, day(10).Add(30*time.Minute), 2, domain.Debit),
		ledgerLine("a", "A", domain.Asset, day(20).Add(15*time.Hour+4*time.Minute+5*time.Second), 100, domain.Debit),
		ledgerLine("a", "A", domain.Asset, day(20), 50, domain.Debit),
		ledgerLine("a", "A", domain.Asset, day(21).Add(time.Second), 7, domain.Debit),
	}

	prior, period := finance.SplitLedgerLines(lines, day(10), day(20))
	require.Len(t, prior, 1)
	assert.Equal(t, "1", prior[0].Amount.String())
	require.Len(t, period, 3)
	assert.Equal(t, "2", period[0].Amount.String())
	assert.Equal(t, "100", period[1].Amount.String())
	assert.Equal(t, "50", period[2].Amount.String())

	groups := finance.BuildLedgerGroups(prior, period)
	require.Len(t, groups, 1)
	assert.Equal(t, "152", groups[0].Net.String())
}
