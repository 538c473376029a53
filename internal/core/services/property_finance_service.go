package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxReportedBankLines caps the bank lines returned with property financials.
	MaxReportedBankLines = 200

	// SynthesizedPaymentType labels transactions rebuilt from lines whose header is missing.
	SynthesizedPaymentType = "PaymentFromLines"
)

// propertyFinanceService implements the PropertyFinanceSvc interface
type propertyFinanceService struct {
	BaseService
	propertyRepo       portsrepo.PropertyRepositoryFacade
	transactionRepo    portsrepo.TransactionRepositoryFacade
	receivableFallback bool
}

// PropertyFinanceServiceOption is a functional option for configuring the property finance service
type PropertyFinanceServiceOption func(*propertyFinanceService)

// WithReceivableFallback lets unit rollups fall back to the receivable total.
func WithReceivableFallback(enabled bool) PropertyFinanceServiceOption {
	return func(s *propertyFinanceService) {
		s.receivableFallback = enabled
	}
}

// WithPropertyDiagnosticsLogging logs the diagnostics of every rollup.
func WithPropertyDiagnosticsLogging(enabled bool) PropertyFinanceServiceOption {
	return func(s *propertyFinanceService) {
		s.DiagnosticsLogging = enabled
	}
}

// NewPropertyFinanceService creates a new property finance service with the provided options
func NewPropertyFinanceService(propertyRepo portsrepo.PropertyRepositoryFacade, transactionRepo portsrepo.TransactionRepositoryFacade, options ...PropertyFinanceServiceOption) portssvc.PropertyFinanceSvc {
	svc := &propertyFinanceService{
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PropertyFinanceSvc = (*propertyFinanceService)(nil)

// dayOrToday truncates t to its UTC calendar day, using today when t is zero.
func dayOrToday(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func leaseIDs(leases []domain.Lease) (ids, buildiumIDs []string) {
	for _, l := range leases {
		ids = append(ids, l.ID)
		if l.BuildiumLeaseID != "" {
			buildiumIDs = append(buildiumIDs, l.BuildiumLeaseID)
		}
	}
	return ids, buildiumIDs
}

// lineKey identifies a line across overlapping queries.
func lineKey(l domain.TransactionLine) string {
	if l.ID != "" {
		return l.ID
	}
	return fmt.Sprintf("%s:%s:%s:%s", l.TransactionID, l.GLAccountID, l.Amount.String(), l.PostingType)
}

// mergeLines concatenates line sets, dropping lines on accounts excluded from cash
// balances and keeping the first occurrence of each line.
func mergeLines(sets ...[]domain.TransactionLine) []domain.TransactionLine {
	seen := make(map[string]struct{})
	var out []domain.TransactionLine
	for _, set := range sets {
		for _, l := range set {
			if l.Account != nil && l.Account.ExcludeFromCashBalances {
				continue
			}
			key := lineKey(l)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, l)
		}
	}
	return out
}

// missingTransactionIDs lists, in order of first appearance, the transaction ids that lines
// reference but txs does not contain.
func missingTransactionIDs(lines []domain.TransactionLine, txs []domain.Transaction) []string {
	have := make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		have[tx.ID] = struct{}{}
	}
	var missing []string
	for _, l := range lines {
		if l.TransactionID == "" {
			continue
		}
		if _, ok := have[l.TransactionID]; ok {
			continue
		}
		have[l.TransactionID] = struct{}{}
		missing = append(missing, l.TransactionID)
	}
	return missing
}

// synthesizePayments builds a payment-like header for every listed id whose lines carry a
// non-zero total.
func synthesizePayments(ids []string, lines []domain.TransactionLine) []domain.Transaction {
	totals := make(map[string]decimal.Decimal, len(ids))
	for _, l := range lines {
		totals[l.TransactionID] = totals[l.TransactionID].Add(l.Amount.Abs())
	}
	var out []domain.Transaction
	for _, id := range ids {
		total := totals[id]
		if total.IsZero() {
			continue
		}
		out = append(out, domain.Transaction{ID: id, Type: SynthesizedPaymentType, HeaderTotal: total})
	}
	return out
}

// bankLines returns the lines that hit a bank account, capped at limit.
func bankLines(lines []domain.TransactionLine, limit int) ([]domain.TransactionLine, bool) {
	out := []domain.TransactionLine{}
	for _, l := range lines {
		if !accounting.ClassifyLine(l).Flags.Bank {
			continue
		}
		if len(out) == limit {
			return out, true
		}
		out = append(out, l)
	}
	return out, false
}

// PropertyFinancials rolls up every line and transaction of a property up to asOf.
func (s *propertyFinanceService) PropertyFinancials(ctx context.Context, propertyID string, asOf time.Time) (*domain.PropertyFinancials, error) {
	asOf = dayOrToday(asOf)

	property, err := s.propertyRepo.FindPropertyByID(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load property", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to load property %s: %w", propertyID, err)
	}

	var units []domain.Unit
	var leases []domain.Lease
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		units, err = s.propertyRepo.ListUnitsByProperty(gctx, propertyID)
		return err
	})
	g.Go(func() error {
		var err error
		leases, err = s.propertyRepo.ListLeasesByProperty(gctx, propertyID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load units and leases", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to load units and leases for property %s: %w", propertyID, err)
	}

	ids, buildiumIDs := leaseIDs(leases)
	unitIDs := make([]string, 0, len(units))
	for _, u := range units {
		unitIDs = append(unitIDs, u.ID)
	}

	filters := []portsrepo.LineFilter{{PropertyIDs: []string{propertyID}, AsOf: asOf}}
	if len(unitIDs) > 0 {
		filters = append(filters, portsrepo.LineFilter{UnitIDs: unitIDs, AsOf: asOf})
	}
	if len(ids) > 0 {
		filters = append(filters, portsrepo.LineFilter{LeaseIDs: ids, AsOf: asOf})
	}
	if len(buildiumIDs) > 0 {
		filters = append(filters, portsrepo.LineFilter{BuildiumLeaseIDs: buildiumIDs, AsOf: asOf})
	}
	// bank lines are often booked without a property or unit
	if property.OperatingBankGLAccountID != "" {
		filters = append(filters, portsrepo.LineFilter{GLAccountIDs: []string{property.OperatingBankGLAccountID}, AsOf: asOf})
	}

	sets := make([][]domain.TransactionLine, len(filters))
	var txs []domain.Transaction
	g, gctx = errgroup.WithContext(ctx)
	for i, filter := range filters {
		i, filter := i, filter
		g.Go(func() error {
			lines, err := s.transactionRepo.ListLines(gctx, filter)
			sets[i] = lines
			return err
		})
	}
	g.Go(func() error {
		var err error
		txs, err = s.transactionRepo.ListTransactionsByLeases(gctx, ids, buildiumIDs, asOf)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load property transactions", slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to load transactions for property %s: %w", propertyID, err)
	}
	lines := mergeLines(sets...)

	if missing := missingTransactionIDs(lines, txs); len(missing) > 0 {
		extra, err := s.transactionRepo.FindTransactionsByIDs(ctx, missing)
		if err != nil {
			s.LogError(ctx, err, "Failed to backfill transactions", slog.String("property_id", propertyID), slog.Int("missing", len(missing)))
			return nil, fmt.Errorf("failed to backfill transactions for property %s: %w", propertyID, err)
		}
		txs = append(txs, extra...)
		txs = append(txs, synthesizePayments(missingTransactionIDs(lines, txs), lines)...)
	}

	result := finance.RollupFinances(finance.RollupParams{
		Lines:        lines,
		Transactions: txs,
		Reserve:      property.Reserve,
		AsOf:         asOf,
	})
	included, truncated := bankLines(lines, MaxReportedBankLines)

	s.LogRollup(ctx, "Property financials computed", result,
		slog.String("property_id", propertyID),
		slog.Int("bank_lines_included", len(included)),
		slog.Bool("bank_lines_truncated", truncated))

	return &domain.PropertyFinancials{
		PropertyID:         propertyID,
		Result:             result,
		BankLines:          included,
		BankLinesTruncated: truncated,
	}, nil
}

// UnitFinancials rolls up the rental lines of a unit on top of its stored balances.
func (s *propertyFinanceService) UnitFinancials(ctx context.Context, unitID string, asOf time.Time) (*domain.RollupResult, error) {
	asOf = dayOrToday(asOf)

	unit, err := s.propertyRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load unit", slog.String("unit_id", unitID))
		return nil, fmt.Errorf("failed to load unit %s: %w", unitID, err)
	}

	var property *domain.Property
	var leases []domain.Lease
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		property, err = s.propertyRepo.FindPropertyByID(gctx, unit.PropertyID)
		return err
	})
	g.Go(func() error {
		var err error
		leases, err = s.propertyRepo.ListLeasesByUnit(gctx, unitID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load unit context", slog.String("unit_id", unitID))
		return nil, fmt.Errorf("failed to load property and leases for unit %s: %w", unitID, err)
	}

	ids, buildiumIDs := leaseIDs(leases)
	var lines []domain.TransactionLine
	var txs []domain.Transaction
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = s.transactionRepo.ListLines(gctx, portsrepo.LineFilter{UnitIDs: []string{unitID}, AsOf: asOf})
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.transactionRepo.ListTransactionsByLeases(gctx, ids, buildiumIDs, asOf)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load unit transactions", slog.String("unit_id", unitID))
		return nil, fmt.Errorf("failed to load transactions for unit %s: %w", unitID, err)
	}

	result := finance.RollupFinances(finance.RollupParams{
		Lines:        lines,
		Transactions: txs,
		UnitBalances: unit.Balances,
		Reserve:      property.Reserve,
		EntityType:   domain.EntityRental,
		AsOf:         asOf,
		Options:      finance.RollupOptions{ReceivableFallback: s.receivableFallback},
	})

	s.LogRollup(ctx, "Unit financials computed", result, slog.String("unit_id", unitID))
	return &result, nil
}
