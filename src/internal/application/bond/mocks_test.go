package bond

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

// ===========================
// Mocks
// ===========================

// MockBondRepository mock implementation of BondRepository
type MockBondRepository struct {
	mock.Mock
}

func (m *MockBondRepository) Add(ctx context.Context, b *bond.Bond) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBondRepository) Update(ctx context.Context, b *bond.Bond) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBondRepository) FindByID(ctx context.Context, id int) (*bond.Bond, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bond.Bond), args.Error(1)
}

func (m *MockBondRepository) FindByAPIID(ctx context.Context, apiID uuid.UUID) (*bond.Bond, error) {
	args := m.Called(ctx, apiID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bond.Bond), args.Error(1)
}

func (m *MockBondRepository) ExistsByIsin(ctx context.Context, isin bond.Isin) (bool, error) {
	args := m.Called(ctx, isin)
	return args.Bool(0), args.Error(1)
}

// MockBondDetailRepository mock implementation of BondDetailRepository
type MockBondDetailRepository struct {
	mock.Mock
}

func (m *MockBondDetailRepository) Add(ctx context.Context, d *bond.BondDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockBondDetailRepository) Update(ctx context.Context, d *bond.BondDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockBondDetailRepository) FindByID(ctx context.Context, id int) (*bond.BondDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bond.BondDetail), args.Error(1)
}

// FakeTransactionManager runs the unit of work directly, without a
// database, for unit tests.
type FakeTransactionManager struct{}

func (FakeTransactionManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
