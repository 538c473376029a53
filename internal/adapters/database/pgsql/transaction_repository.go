package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	"github.com/SscSPs/property_finance/internal/models"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lineSelect = `
	SELECT tl.id, tl.transaction_id, tl.gl_account_id, tl.amount, tl.posting_type,
	       tl.property_id, tl.unit_id, tl.lease_id, tl.buildium_lease_id, tl.account_entity_type, tl.date,
	       ga.id, ga.name, ga.account_number, ga.type, ga.sub_type, gc.category,
	       ga.is_bank_account, ga.is_security_deposit_liability, ga.exclude_from_cash_balances
	FROM transaction_lines tl
	JOIN gl_accounts ga ON ga.id = tl.gl_account_id
	LEFT JOIN gl_account_category gc ON gc.gl_account_id = ga.id
`

const transactionSelect = `
	SELECT t.id, t.transaction_type, t.total_amount, t.lease_id, t.buildium_lease_id, t.date, t.memo, t.reference_number
	FROM transactions t
`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanLine(rows pgx.Rows) (models.TransactionLine, error) {
	var m models.TransactionLine
	var acc models.GLAccount
	err := rows.Scan(
		&m.LineID,
		&m.TransactionID,
		&m.GLAccountID,
		&m.Amount,
		&m.PostingType,
		&m.PropertyID,
		&m.UnitID,
		&m.LeaseID,
		&m.BuildiumLeaseID,
		&m.AccountEntityType,
		&m.Date,
		&acc.GLAccountID,
		&acc.Name,
		&acc.AccountNumber,
		&acc.Type,
		&acc.SubType,
		&acc.Category,
		&acc.IsBankAccount,
		&acc.IsSecurityDepositLiability,
		&acc.ExcludeFromCashBalances,
	)
	if err != nil {
		return m, err
	}
	m.Account = &acc
	return m, nil
}

func (r *PgxTransactionRepository) queryLines(ctx context.Context, where *whereClause) ([]models.TransactionLine, error) {
	query := lineSelect + where.String() + " ORDER BY tl.date, tl.id;"

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction lines: %w", err)
	}
	defer rows.Close()

	var lines []models.TransactionLine
	for rows.Next() {
		m, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction line row: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction line rows: %w", err)
	}
	return lines, nil
}

// ListLines retrieves the lines matching filter with their GL accounts attached.
func (r *PgxTransactionRepository) ListLines(ctx context.Context, filter portsrepo.LineFilter) ([]domain.TransactionLine, error) {
	var where whereClause
	where.anyOf("tl.property_id", filter.PropertyIDs)
	where.anyOf("tl.unit_id", filter.UnitIDs)
	where.anyOf("tl.lease_id", filter.LeaseIDs)
	where.anyOf("tl.buildium_lease_id", filter.BuildiumLeaseIDs)
	where.anyOf("tl.gl_account_id", filter.GLAccountIDs)
	where.dateBound("tl.date", "<=", filter.AsOf)

	lines, err := r.queryLines(ctx, &where)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactionLineSlice(lines), nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, where *whereClause) ([]domain.Transaction, error) {
	query := transactionSelect + where.String() + " ORDER BY t.date, t.id;"

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	var ids []string
	for rows.Next() {
		var m models.Transaction
		err := rows.Scan(
			&m.TransactionID,
			&m.TransactionType,
			&m.TotalAmount,
			&m.LeaseID,
			&m.BuildiumLeaseID,
			&m.Date,
			&m.Memo,
			&m.Reference,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txs = append(txs, m)
		ids = append(ids, m.TransactionID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	if len(txs) == 0 {
		return []domain.Transaction{}, nil
	}

	var lineWhere whereClause
	lineWhere.anyOf("tl.transaction_id", ids)
	lines, err := r.queryLines(ctx, &lineWhere)
	if err != nil {
		return nil, fmt.Errorf("failed to load lines for %d transactions: %w", len(ids), err)
	}
	attachLines(txs, lines)

	return mapping.ToDomainTransactionSlice(txs), nil
}

// attachLines distributes lines onto their transactions by transaction id.
func attachLines(txs []models.Transaction, lines []models.TransactionLine) {
	index := make(map[string]int, len(txs))
	for i, t := range txs {
		index[t.TransactionID] = i
	}
	for _, l := range lines {
		if i, ok := index[l.TransactionID.String]; ok && l.TransactionID.Valid {
			txs[i].Lines = append(txs[i].Lines, l)
		}
	}
}

// ListTransactionsByLeases retrieves the transactions of the given leases, matched either
// by local lease id or by Buildium lease id, dated on or before asOf.
func (r *PgxTransactionRepository) ListTransactionsByLeases(ctx context.Context, leaseIDs, buildiumLeaseIDs []string, asOf time.Time) ([]domain.Transaction, error) {
	if len(leaseIDs) == 0 && len(buildiumLeaseIDs) == 0 {
		return []domain.Transaction{}, nil
	}
	if leaseIDs == nil {
		leaseIDs = []string{}
	}
	if buildiumLeaseIDs == nil {
		buildiumLeaseIDs = []string{}
	}

	var where whereClause
	where.args = append(where.args, leaseIDs, buildiumLeaseIDs)
	where.raw("(t.lease_id = ANY($1) OR t.buildium_lease_id = ANY($2))")
	where.dateBound("t.date", "<=", asOf)

	return r.queryTransactions(ctx, &where)
}

// FindTransactionsByIDs retrieves transactions by id. Unknown ids are skipped.
func (r *PgxTransactionRepository) FindTransactionsByIDs(ctx context.Context, transactionIDs []string) ([]domain.Transaction, error) {
	if len(transactionIDs) == 0 {
		return []domain.Transaction{}, nil
	}
	var where whereClause
	where.anyOf("t.id", transactionIDs)
	return r.queryTransactions(ctx, &where)
}
