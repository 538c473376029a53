package services

import (
	"context"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	"github.com/SscSPs/property_finance/internal/core/finance"
	"github.com/shopspring/decimal"
)

// PropertyFinanceSvc computes stored-data financial snapshots.
type PropertyFinanceSvc interface {
	// PropertyFinancials rolls up every line and transaction of a property up to asOf.
	PropertyFinancials(ctx context.Context, propertyID string, asOf time.Time) (*domain.PropertyFinancials, error)

	// UnitFinancials rolls up a single unit on top of its stored balances.
	UnitFinancials(ctx context.Context, unitID string, asOf time.Time) (*domain.RollupResult, error)
}

// LedgerSvc builds general-ledger reports.
type LedgerSvc interface {
	GeneralLedger(ctx context.Context, query domain.LedgerQuery) (*domain.GeneralLedger, error)
}

// LeaseBalanceSvc resolves lease balances against the remote system of record.
type LeaseBalanceSvc interface {
	LeaseBalances(ctx context.Context, leaseID string) (*domain.LeaseBalanceReport, error)
}

// ComputeSvc runs the finance engine over caller-supplied data.
type ComputeSvc interface {
	Rollup(ctx context.Context, params finance.RollupParams) domain.RollupResult
	SignTransactions(ctx context.Context, transactions []domain.Transaction) ([]domain.SignedTransaction, decimal.Decimal)
	ResolveLeaseBalances(ctx context.Context, remote domain.RemoteLeaseBalances, transactions []domain.Transaction) domain.LeaseBalanceReport
	// GeneralLedger splits lines around the query range and groups them.
	GeneralLedger(ctx context.Context, query domain.LedgerQuery, lines []domain.LedgerLine) domain.GeneralLedger
}
