package ports

import (
	"context"

	"github.com/SscSPs/property_finance/internal/core/domain"
)

// LeaseBalanceClient fetches the outstanding balances the property-management system
// of record holds for a lease.
type LeaseBalanceClient interface {
	FetchLeaseBalances(ctx context.Context, buildiumLeaseID string) (domain.RemoteLeaseBalances, error)
}
