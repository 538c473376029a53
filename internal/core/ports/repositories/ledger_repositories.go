package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
)

// LedgerLineFilter selects general-ledger lines. OnOrAfter and OnOrBefore are inclusive,
// Before is exclusive; zero values leave that side unbounded.
type LedgerLineFilter struct {
	OnOrAfter    time.Time
	OnOrBefore   time.Time
	Before       time.Time
	Basis        domain.Basis
	EntityType   domain.EntityType
	PropertyIDs  []string
	UnitIDs      []string
	GLAccountIDs []string
}

// LedgerReader defines operations for retrieving general-ledger lines.
type LedgerReader interface {
	// ListLedgerLines retrieves flattened lines. Under the cash basis the transaction
	// date is used and only transactions touching a bank account are returned; under
	// accrual the line date is used. Lines with an unresolved posting type are dropped.
	ListLedgerLines(ctx context.Context, filter LedgerLineFilter) ([]domain.LedgerLine, error)
}
