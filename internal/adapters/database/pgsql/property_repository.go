package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/property_finance/internal/apperrors"
	"github.com/SscSPs/property_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	"github.com/SscSPs/property_finance/internal/models"
	"github.com/SscSPs/property_finance/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const unitColumns = `id, property_id, COALESCE(unit_number, unit_name), balance, deposits_held_balance, prepayments_balance`

const leaseColumns = `id, property_id, unit_id, buildium_lease_id`

type PgxPropertyRepository struct {
	BaseRepository
}

func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepositoryFacade {
	return &PgxPropertyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

// FindPropertyByID retrieves a property by its ID.
func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `
		SELECT id, name, reserve, operating_bank_gl_account_id, deposit_trust_gl_account_id
		FROM properties
		WHERE id = $1;
	`
	var m models.Property
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&m.PropertyID,
		&m.Name,
		&m.Reserve,
		&m.OperatingBankGLAccountID,
		&m.DepositTrustGLAccountID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: property %s", apperrors.ErrNotFound, propertyID)
		}
		return nil, fmt.Errorf("failed to find property by ID %s: %w", propertyID, err)
	}

	property := mapping.ToDomainProperty(m)
	return &property, nil
}

func scanUnit(row pgx.Row) (models.Unit, error) {
	var m models.Unit
	err := row.Scan(
		&m.UnitID,
		&m.PropertyID,
		&m.UnitNumber,
		&m.Balance,
		&m.DepositsHeldBalance,
		&m.PrepaymentsBalance,
	)
	return m, err
}

// FindUnitByID retrieves a unit with its stored balances.
func (r *PgxPropertyRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1;`

	m, err := scanUnit(r.Pool.QueryRow(ctx, query, unitID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: unit %s", apperrors.ErrNotFound, unitID)
		}
		return nil, fmt.Errorf("failed to find unit by ID %s: %w", unitID, err)
	}

	unit := mapping.ToDomainUnit(m)
	return &unit, nil
}

// ListUnitsByProperty retrieves all units of a property ordered by label.
func (r *PgxPropertyRepository) ListUnitsByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE property_id = $1 ORDER BY unit_number, id;`

	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query units for property %s: %w", propertyID, err)
	}
	defer rows.Close()

	units := []domain.Unit{}
	for rows.Next() {
		m, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit row for property %s: %w", propertyID, err)
		}
		units = append(units, mapping.ToDomainUnit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unit rows for property %s: %w", propertyID, err)
	}
	return units, nil
}

func scanLease(row pgx.Row) (models.Lease, error) {
	var m models.Lease
	err := row.Scan(&m.LeaseID, &m.PropertyID, &m.UnitID, &m.BuildiumLeaseID)
	return m, err
}

// FindLeaseByID retrieves a lease by its ID.
func (r *PgxPropertyRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM lease WHERE id = $1;`

	m, err := scanLease(r.Pool.QueryRow(ctx, query, leaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: lease %s", apperrors.ErrNotFound, leaseID)
		}
		return nil, fmt.Errorf("failed to find lease by ID %s: %w", leaseID, err)
	}

	lease := mapping.ToDomainLease(m)
	return &lease, nil
}

func (r *PgxPropertyRepository) listLeases(ctx context.Context, column, id string) ([]domain.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM lease WHERE ` + column + ` = $1 ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query leases by %s %s: %w", column, id, err)
	}
	defer rows.Close()

	var ms []models.Lease
	for rows.Next() {
		m, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lease rows: %w", err)
	}
	return mapping.ToDomainLeaseSlice(ms), nil
}

// ListLeasesByProperty retrieves all leases of a property.
func (r *PgxPropertyRepository) ListLeasesByProperty(ctx context.Context, propertyID string) ([]domain.Lease, error) {
	return r.listLeases(ctx, "property_id", propertyID)
}

// ListLeasesByUnit retrieves all leases of a unit.
func (r *PgxPropertyRepository) ListLeasesByUnit(ctx context.Context, unitID string) ([]domain.Lease, error) {
	return r.listLeases(ctx, "unit_id", unitID)
}
