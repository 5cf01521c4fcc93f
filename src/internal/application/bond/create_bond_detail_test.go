package bond

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateBondDetailCommand() CreateBondDetailCommand {
	return CreateBondDetailCommand{
		FantasyName:             "CDB Inter 110% CDI",
		DeadlineCalendarDays:    720,
		InitialUnitValue:        decimal.NewFromInt(1000),
		BenchmarkPercentualRate: decimal.NewFromInt(110),
		FixedPercentualRate:     decimal.Zero,
		IsAvailable:             true,
		DaysToGracePeriod:       90,
		MarketIndexID:           1,
		BondBaseID:              1,
		BondEmitterID:           1,
	}
}

// Test 1: a valid command creates the detail with its classification
func TestCreateBondDetailHandler_Handle_ValidCommand_CreatesDetail(t *testing.T) {
	// Arrange
	mockRepo := new(MockBondDetailRepository)
	handler := NewCreateBondDetailHandler(mockRepo, FakeTransactionManager{})

	mockRepo.On("Add", mock.Anything, mock.AnythingOfType("*bond.BondDetail")).Return(nil)

	// Act
	res := handler.Handle(context.Background(), validCreateBondDetailCommand())

	// Assert
	require.True(t, res.IsSuccess())
	assert.Equal(t, "CDB Inter 110% CDI", res.Value().FantasyName)
	assert.True(t, res.Value().IsPostFixed)
	assert.Equal(t, "Liquidity after 90 days", res.Value().LiquidityDescription)
	assert.Equal(t, "2.0 years", res.Value().DeadlineDescription)
	mockRepo.AssertExpectations(t)
}

// Test 2: a grace period past the deadline is a validation failure
func TestCreateBondDetailHandler_Handle_GracePeriodPastDeadline_ReturnsValidationFailed(t *testing.T) {
	// Arrange
	mockRepo := new(MockBondDetailRepository)
	handler := NewCreateBondDetailHandler(mockRepo, FakeTransactionManager{})

	cmd := validCreateBondDetailCommand()
	cmd.DaysToGracePeriod = 721

	// Act
	res := handler.Handle(context.Background(), cmd)

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeDetailValidationFailed, res.Err().Code)
	assert.Contains(t, res.Err().Message, "cannot exceed deadline")
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// Test 3: a non-positive deadline is a validation failure
func TestCreateBondDetailHandler_Handle_ZeroDeadline_ReturnsValidationFailed(t *testing.T) {
	// Arrange
	mockRepo := new(MockBondDetailRepository)
	handler := NewCreateBondDetailHandler(mockRepo, FakeTransactionManager{})

	cmd := validCreateBondDetailCommand()
	cmd.DeadlineCalendarDays = 0
	cmd.DaysToGracePeriod = 0

	// Act
	res := handler.Handle(context.Background(), cmd)

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeDetailValidationFailed, res.Err().Code)
}
