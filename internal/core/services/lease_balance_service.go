package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	"github.com/SscSPs/property_finance/internal/core/ports"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
)

// leaseBalanceService implements the LeaseBalanceSvc interface
type leaseBalanceService struct {
	BaseService
	propertyRepo    portsrepo.LeaseReader
	transactionRepo portsrepo.TransactionReader
	remote          ports.LeaseBalanceClient
}

// NewLeaseBalanceService creates a lease balance service. remote may be nil, in which
// case balances come from local transactions only.
func NewLeaseBalanceService(propertyRepo portsrepo.LeaseReader, transactionRepo portsrepo.TransactionReader, remote ports.LeaseBalanceClient) portssvc.LeaseBalanceSvc {
	return &leaseBalanceService{
		propertyRepo:    propertyRepo,
		transactionRepo: transactionRepo,
		remote:          remote,
	}
}

var _ portssvc.LeaseBalanceSvc = (*leaseBalanceService)(nil)

// LeaseBalances resolves the balances of a lease and lists its ledger. A failing remote
// lookup is logged and treated as an all-zero remote.
func (s *leaseBalanceService) LeaseBalances(ctx context.Context, leaseID string) (*domain.LeaseBalanceReport, error) {
	lease, err := s.propertyRepo.FindLeaseByID(ctx, leaseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lease", slog.String("lease_id", leaseID))
		return nil, fmt.Errorf("failed to load lease %s: %w", leaseID, err)
	}

	var remote domain.RemoteLeaseBalances
	remoteAvailable := false
	if lease.BuildiumLeaseID != "" && s.remote != nil {
		remote, err = s.remote.FetchLeaseBalances(ctx, lease.BuildiumLeaseID)
		if err != nil {
			s.LogWarn(ctx, "Remote lease balances unavailable, using local transactions",
				slog.String("lease_id", leaseID),
				slog.String("buildium_lease_id", lease.BuildiumLeaseID),
				slog.String("error", err.Error()))
			remote = domain.RemoteLeaseBalances{}
		} else {
			remoteAvailable = true
		}
	}

	var buildiumIDs []string
	if lease.BuildiumLeaseID != "" {
		buildiumIDs = []string{lease.BuildiumLeaseID}
	}
	txs, err := s.transactionRepo.ListTransactionsByLeases(ctx, []string{lease.ID}, buildiumIDs, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load lease transactions", slog.String("lease_id", leaseID))
		return nil, fmt.Errorf("failed to load transactions for lease %s: %w", leaseID, err)
	}

	balances := finance.ResolveLeaseBalances(remote, txs)
	s.LogDebug(ctx, "Lease balances resolved",
		slog.String("lease_id", leaseID),
		slog.String("balance", balances.Balance.String()),
		slog.Bool("computed_locally", balances.ComputedLocally),
		slog.Bool("remote_available", remoteAvailable))

	return &domain.LeaseBalanceReport{
		LeaseID:         lease.ID,
		Balances:        balances,
		Ledger:          finance.LeaseLedgerRows(balances, txs),
		RemoteAvailable: remoteAvailable,
	}, nil
}
