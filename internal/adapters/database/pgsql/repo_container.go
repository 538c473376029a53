package pgsql

import (
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	propertyRepo := newPgxPropertyRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PropertyRepo:    propertyRepo,
		TransactionRepo: transactionRepo,
		LedgerRepo:      ledgerRepo,
	}
}
