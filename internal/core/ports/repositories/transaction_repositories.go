package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
)

// LineFilter selects transaction lines. Every non-empty id list is ANDed;
// a zero AsOf means no date bound.
type LineFilter struct {
	PropertyIDs      []string
	UnitIDs          []string
	LeaseIDs         []string
	BuildiumLeaseIDs []string
	GLAccountIDs     []string
	AsOf             time.Time
}

// TransactionLineReader defines read operations for transaction lines.
type TransactionLineReader interface {
	// ListLines retrieves lines with their GL accounts attached.
	ListLines(ctx context.Context, filter LineFilter) ([]domain.TransactionLine, error)
}

// TransactionReader defines read operations for transaction headers.
type TransactionReader interface {
	// ListTransactionsByLeases retrieves transactions of the given local or Buildium
	// leases dated on or before asOf (zero asOf means no bound), with their lines.
	ListTransactionsByLeases(ctx context.Context, leaseIDs, buildiumLeaseIDs []string, asOf time.Time) ([]domain.Transaction, error)

	// FindTransactionsByIDs retrieves transactions by id, with their lines.
	// Missing ids are skipped.
	FindTransactionsByIDs(ctx context.Context, transactionIDs []string) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines the line and transaction readers.
type TransactionRepositoryFacade interface {
	TransactionLineReader
	TransactionReader
}
