package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/property_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	"github.com/SscSPs/property_finance/internal/models"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// bankTouched holds for transactions with at least one line on a bank account.
const bankTouched = `EXISTS (
		SELECT 1 FROM transaction_lines bl
		JOIN gl_accounts bga ON bga.id = bl.gl_account_id
		WHERE bl.transaction_id = t.id AND bga.is_bank_account
	)`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerReader {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerReader = (*PgxLedgerRepository)(nil)

// ledgerDateExpr is the date a line is reported under for the given basis.
func ledgerDateExpr(basis domain.Basis) string {
	if basis == domain.BasisCash {
		return "t.date"
	}
	return "tl.date"
}

func buildLedgerWhere(filter portsrepo.LedgerLineFilter) *whereClause {
	dateExpr := ledgerDateExpr(filter.Basis)

	var where whereClause
	if filter.Basis == domain.BasisCash {
		where.raw("t.id IS NOT NULL")
		where.raw(bankTouched)
	}
	where.dateBound(dateExpr, ">=", filter.OnOrAfter)
	where.dateBound(dateExpr, "<=", filter.OnOrBefore)
	where.dateBound(dateExpr, "<", filter.Before)
	if filter.EntityType != "" {
		where.add("tl.account_entity_type = ?", string(filter.EntityType))
	}
	where.anyOf("tl.property_id", filter.PropertyIDs)
	where.anyOf("tl.unit_id", filter.UnitIDs)
	where.anyOf("tl.gl_account_id", filter.GLAccountIDs)
	return &where
}

// ListLedgerLines retrieves flattened general-ledger lines in chronological order.
func (r *PgxLedgerRepository) ListLedgerLines(ctx context.Context, filter portsrepo.LedgerLineFilter) ([]domain.LedgerLine, error) {
	dateExpr := ledgerDateExpr(filter.Basis)
	where := buildLedgerWhere(filter)

	query := `
		SELECT tl.transaction_id, tl.property_id, p.name, tl.unit_id, u.unit_number, u.unit_name,
		       ` + dateExpr + ` AS report_date,
		       COALESCE(tl.created_at, t.created_at, ` + dateExpr + `::timestamptz) AS created_at,
		       tl.amount, tl.posting_type, tl.memo,
		       tl.gl_account_id, ga.name, ga.account_number, ga.type,
		       t.transaction_type, t.memo, t.reference_number
		FROM transaction_lines tl
		JOIN gl_accounts ga ON ga.id = tl.gl_account_id
		LEFT JOIN transactions t ON t.id = tl.transaction_id
		LEFT JOIN properties p ON p.id = tl.property_id
		LEFT JOIN units u ON u.id = tl.unit_id
		` + where.String() + `
		ORDER BY report_date, created_at, tl.id;
	`

	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines: %w", err)
	}
	defer rows.Close()

	var ms []models.LedgerRow
	for rows.Next() {
		var m models.LedgerRow
		err := rows.Scan(
			&m.TransactionID,
			&m.PropertyID,
			&m.PropertyName,
			&m.UnitID,
			&m.UnitNumber,
			&m.UnitName,
			&m.Date,
			&m.CreatedAt,
			&m.Amount,
			&m.PostingType,
			&m.Memo,
			&m.GLAccountID,
			&m.GLAccountName,
			&m.GLAccountNumber,
			&m.GLAccountType,
			&m.TransactionType,
			&m.TransactionMemo,
			&m.TransactionReference,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}

	return mapping.ToDomainLedgerLines(ms), nil
}
