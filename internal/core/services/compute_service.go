package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// computeService runs the finance engine over caller-supplied data.
type computeService struct {
	BaseService
	receivableFallback bool
}

// ComputeServiceOption is a functional option for configuring the compute service
type ComputeServiceOption func(*computeService)

// WithComputeReceivableFallback turns the receivable fallback on for every rollup.
func WithComputeReceivableFallback(enabled bool) ComputeServiceOption {
	return func(s *computeService) {
		s.receivableFallback = enabled
	}
}

// WithComputeDiagnosticsLogging logs the diagnostics of every rollup.
func WithComputeDiagnosticsLogging(enabled bool) ComputeServiceOption {
	return func(s *computeService) {
		s.DiagnosticsLogging = enabled
	}
}

// NewComputeService creates a new compute service with the provided options
func NewComputeService(options ...ComputeServiceOption) portssvc.ComputeSvc {
	svc := &computeService{}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ComputeSvc = (*computeService)(nil)

func (s *computeService) Rollup(ctx context.Context, params finance.RollupParams) domain.RollupResult {
	if s.receivableFallback {
		params.Options.ReceivableFallback = true
	}
	result := finance.RollupFinances(params)
	s.LogRollup(ctx, "Rollup computed", result)
	return result
}

// SignTransactions signs each transaction by its effect on a lease balance and sums them.
func (s *computeService) SignTransactions(ctx context.Context, transactions []domain.Transaction) ([]domain.SignedTransaction, decimal.Decimal) {
	out := make([]domain.SignedTransaction, 0, len(transactions))
	net := decimal.Zero
	for _, tx := range transactions {
		signed := accounting.SignedAmountFromTransaction(tx)
		net = net.Add(signed)
		out = append(out, domain.SignedTransaction{
			ID:           tx.ID,
			Type:         tx.Type,
			Kind:         accounting.TransactionKindOf(tx.Type),
			SignedAmount: signed,
		})
	}
	s.LogDebug(ctx, "Transactions signed", slog.Int("count", len(out)), slog.String("net", net.String()))
	return out, net
}

// ResolveLeaseBalances applies the lease balance rules to a supplied remote response.
func (s *computeService) ResolveLeaseBalances(ctx context.Context, remote domain.RemoteLeaseBalances, transactions []domain.Transaction) domain.LeaseBalanceReport {
	balances := finance.ResolveLeaseBalances(remote, transactions)
	return domain.LeaseBalanceReport{
		Balances:        balances,
		Ledger:          finance.LeaseLedgerRows(balances, transactions),
		RemoteAvailable: true,
	}
}

func (s *computeService) GeneralLedger(ctx context.Context, query domain.LedgerQuery, lines []domain.LedgerLine) domain.GeneralLedger {
	if query.Basis == "" {
		query.Basis = domain.BasisAccrual
	}
	prior, period := finance.SplitLedgerLines(lines, query.From, query.To)
	return finance.BuildGeneralLedger(query, prior, period)
}
