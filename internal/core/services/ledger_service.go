package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_finance/internal/apperrors"
	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// ledgerService implements the LedgerSvc interface
type ledgerService struct {
	BaseService
	ledgerRepo   portsrepo.LedgerReader
	defaultBasis domain.Basis
	now          func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithDefaultBasis sets the basis used when a query does not name one.
func WithDefaultBasis(basis domain.Basis) LedgerServiceOption {
	return func(s *ledgerService) {
		s.defaultBasis = basis
	}
}

// WithLedgerClock replaces the clock used to pick the default period.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new general-ledger service with the provided options
func NewLedgerService(ledgerRepo portsrepo.LedgerReader, options ...LedgerServiceOption) portssvc.LedgerSvc {
	svc := &ledgerService{
		ledgerRepo:   ledgerRepo,
		defaultBasis: domain.BasisAccrual,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func monthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// normalizeQuery fills in the default period and basis. A missing start defaults to the
// first of the month of the end date (or of today); a missing end to the last of the
// start's month.
func (s *ledgerService) normalizeQuery(q domain.LedgerQuery) (domain.LedgerQuery, error) {
	if q.From.IsZero() {
		ref := q.To
		if ref.IsZero() {
			ref = s.now().UTC()
		}
		q.From, _ = monthBounds(ref)
	}
	if q.To.IsZero() {
		_, q.To = monthBounds(q.From)
	}
	if q.From.After(q.To) {
		return q, fmt.Errorf("%w: from %s is after to %s", apperrors.ErrValidation, q.From.Format(time.DateOnly), q.To.Format(time.DateOnly))
	}
	if q.Basis == "" {
		q.Basis = s.defaultBasis
	}
	return q, nil
}

// GeneralLedger loads the lines before and within the query range and groups them by
// GL account. Property filters restrict lines to rental entities.
func (s *ledgerService) GeneralLedger(ctx context.Context, query domain.LedgerQuery) (*domain.GeneralLedger, error) {
	q, err := s.normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	base := portsrepo.LedgerLineFilter{
		Basis:        q.Basis,
		PropertyIDs:  q.PropertyIDs,
		UnitIDs:      q.UnitIDs,
		GLAccountIDs: q.GLAccountIDs,
	}
	if len(q.PropertyIDs) > 0 {
		base.EntityType = domain.EntityRental
	}
	priorFilter := base
	priorFilter.Before = q.From
	periodFilter := base
	periodFilter.OnOrAfter = q.From
	periodFilter.OnOrBefore = q.To

	var prior, period []domain.LedgerLine
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prior, err = s.ledgerRepo.ListLedgerLines(gctx, priorFilter)
		return err
	})
	g.Go(func() error {
		var err error
		period, err = s.ledgerRepo.ListLedgerLines(gctx, periodFilter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load ledger lines",
			slog.String("from", q.From.Format(time.DateOnly)),
			slog.String("to", q.To.Format(time.DateOnly)),
			slog.String("basis", string(q.Basis)))
		return nil, fmt.Errorf("failed to load ledger lines: %w", err)
	}

	gl := finance.BuildGeneralLedger(q, prior, period)

	s.LogInfo(ctx, "General ledger generated successfully",
		slog.String("from", q.From.Format(time.DateOnly)),
		slog.String("to", q.To.Format(time.DateOnly)),
		slog.String("basis", string(q.Basis)),
		slog.Int("group_count", len(gl.Groups)),
		slog.Int("prior_line_count", len(prior)),
		slog.Int("period_line_count", len(period)))
	return &gl, nil
}
