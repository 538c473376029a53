package services

import (
	"github.com/SscSPs/property_finance/internal/core/ports"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/property_finance/internal/core/ports/services"
	"github.com/SscSPs/property_finance/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// remote may be nil when no remote system of record is configured.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, remote ports.LeaseBalanceClient) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		PropertyFinance: NewPropertyFinanceService(
			repos.PropertyRepo,
			repos.TransactionRepo,
			WithReceivableFallback(cfg.Finance.ReceivableFallback),
			WithPropertyDiagnosticsLogging(cfg.Finance.DiagnosticsLogging),
		),
		Ledger: NewLedgerService(
			repos.LedgerRepo,
			WithDefaultBasis(cfg.Finance.DefaultBasis),
		),
		LeaseBalance: NewLeaseBalanceService(repos.PropertyRepo, repos.TransactionRepo, remote),
		Compute: NewComputeService(
			WithComputeReceivableFallback(cfg.Finance.ReceivableFallback),
			WithComputeDiagnosticsLogging(cfg.Finance.DiagnosticsLogging),
		),
	}
}
