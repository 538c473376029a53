package repositories

import (
	"context"

	"github.com/SscSPs/property_finance/internal/core/domain"
)

// PropertyReader defines read operations for properties and their units.
type PropertyReader interface {
	// FindPropertyByID retrieves a property with its reserve and bank account settings.
	FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// FindUnitByID retrieves a unit with its stored balances.
	FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error)

	// ListUnitsByProperty retrieves all units of a property.
	ListUnitsByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error)
}

// LeaseReader defines read operations for leases.
type LeaseReader interface {
	FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error)
	ListLeasesByProperty(ctx context.Context, propertyID string) ([]domain.Lease, error)
	ListLeasesByUnit(ctx context.Context, unitID string) ([]domain.Lease, error)
}

// PropertyRepositoryFacade combines the property and lease readers.
type PropertyRepositoryFacade interface {
	PropertyReader
	LeaseReader
}
