package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/property_finance/internal/core/domain"
	portsrepo "github.com/SscSPs/property_finance/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockPropertyRepository is a mock type for the PropertyRepositoryFacade interface
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindUnitByID(ctx context.Context, unitID string) (*domain.Unit, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockPropertyRepository) ListUnitsByProperty(ctx context.Context, propertyID string) ([]domain.Unit, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

func (m *MockPropertyRepository) FindLeaseByID(ctx context.Context, leaseID string) (*domain.Lease, error) {
	args := m.Called(ctx, leaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lease), args.Error(1)
}

func (m *MockPropertyRepository) ListLeasesByProperty(ctx context.Context, propertyID string) ([]domain.Lease, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lease), args.Error(1)
}

func (m *MockPropertyRepository) ListLeasesByUnit(ctx context.Context, unitID string) ([]domain.Lease, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lease), args.Error(1)
}

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListLines(ctx context.Context, filter portsrepo.LineFilter) ([]domain.TransactionLine, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionLine), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByLeases(ctx context.Context, leaseIDs, buildiumLeaseIDs []string, asOf time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, leaseIDs, buildiumLeaseIDs, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByIDs(ctx context.Context, transactionIDs []string) ([]domain.Transaction, error) {
	args := m.Called(ctx, transactionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockLedgerRepository is a mock type for the LedgerReader interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ListLedgerLines(ctx context.Context, filter portsrepo.LedgerLineFilter) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

// MockLeaseBalanceClient is a mock type for the LeaseBalanceClient interface
type MockLeaseBalanceClient struct {
	mock.Mock
}

func (m *MockLeaseBalanceClient) FetchLeaseBalances(ctx context.Context, buildiumLeaseID string) (domain.RemoteLeaseBalances, error) {
	args := m.Called(ctx, buildiumLeaseID)
	return args.Get(0).(domain.RemoteLeaseBalances), args.Error(1)
}
