package customer

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fmartins/bond_crm/src/internal/domain/customer"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// Mocks
// ===========================

// MockCustomerRepository mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByAPIID(ctx context.Context, apiID string) (*customer.Customer, error) {
	args := m.Called(ctx, apiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ExistsBy(ctx context.Context, document shared.BusinessDocument, sinacorID string, company customer.Company) (bool, error) {
	args := m.Called(ctx, document, sinacorID, company)
	return args.Bool(0), args.Error(1)
}

// FakeTransactionManager runs the unit of work directly, without a
// database, for unit tests.
type FakeTransactionManager struct{}

func (FakeTransactionManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
