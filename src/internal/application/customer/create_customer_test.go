package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fmartins/bond_crm/src/internal/domain/customer"
)

func validCreateCommand() CreateCustomerCommand {
	return CreateCustomerCommand{
		APIID:     "API_WARREN_001",
		Document:  "12345678901",
		Company:   1,
		SinacorID: "123456789",
	}
}

// Test 1: creating a customer with no existing match succeeds
func TestCreateCustomerHandler_Handle_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockCustomerRepository)
	handler := NewCreateCustomerHandler(mockRepo, FakeTransactionManager{})

	mockRepo.On("ExistsBy", mock.Anything, mock.Anything, "123456789", customer.Warren).Return(false, nil)
	mockRepo.On("Add", mock.Anything, mock.Anything).Return(nil)

	// Act
	res := handler.Handle(context.Background(), validCreateCommand())

	// Assert
	require.True(t, res.IsSuccess())
	response := res.Value()
	assert.Equal(t, "API_WARREN_001", response.APIID)
	assert.Equal(t, "12345678901", response.Document)
	assert.Equal(t, "Cpf", response.DocumentType)
	assert.Equal(t, "Warren", response.Company)
	assert.Len(t, response.ExternalRegisters, 2)
	for _, reg := range response.ExternalRegisters {
		assert.Equal(t, "NotRegistered", reg.Status)
	}
	mockRepo.AssertExpectations(t)
}

// Test 2: an existing (document, sinacor id, company) match fails without
// constructing or persisting anything
func TestCreateCustomerHandler_Handle_DuplicateTuple_ReturnsAlreadyExists(t *testing.T) {
	// Arrange
	mockRepo := new(MockCustomerRepository)
	handler := NewCreateCustomerHandler(mockRepo, FakeTransactionManager{})

	mockRepo.On("ExistsBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	// Act
	res := handler.Handle(context.Background(), validCreateCommand())

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeAlreadyExists, res.Err().Code)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// Test 3: a late unique-constraint violation from the store still maps to
// AlreadyExists
func TestCreateCustomerHandler_Handle_LateConstraintViolation_ReturnsAlreadyExists(t *testing.T) {
	// Arrange
	mockRepo := new(MockCustomerRepository)
	handler := NewCreateCustomerHandler(mockRepo, FakeTransactionManager{})

	mockRepo.On("ExistsBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	mockRepo.On("Add", mock.Anything, mock.Anything).Return(customer.ErrCustomerAlreadyExists)

	// Act
	res := handler.Handle(context.Background(), validCreateCommand())

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeAlreadyExists, res.Err().Code)
}

// Test 4: invalid document fails validation before touching the repository
func TestCreateCustomerHandler_Handle_InvalidDocument_ReturnsValidationFailed(t *testing.T) {
	// Arrange
	mockRepo := new(MockCustomerRepository)
	handler := NewCreateCustomerHandler(mockRepo, FakeTransactionManager{})

	cmd := validCreateCommand()
	cmd.Document = "123"

	// Act
	res := handler.Handle(context.Background(), cmd)

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeValidationFailed, res.Err().Code)
	mockRepo.AssertNotCalled(t, "ExistsBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test 5: aggregate construction failures map to ValidationFailed
func TestCreateCustomerHandler_Handle_InvalidCompany_ReturnsValidationFailed(t *testing.T) {
	// Arrange
	mockRepo := new(MockCustomerRepository)
	handler := NewCreateCustomerHandler(mockRepo, FakeTransactionManager{})

	mockRepo.On("ExistsBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	cmd := validCreateCommand()
	cmd.Company = 9

	// Act
	res := handler.Handle(context.Background(), cmd)

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeValidationFailed, res.Err().Code)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

// Test 6: unexpected repository errors map to the DomainError catch-all
func TestCreateCustomerHandler_Handle_RepositoryError_ReturnsDomainError(t *testing.T) {
	// Arrange
	mockRepo := new(MockCustomerRepository)
	handler := NewCreateCustomerHandler(mockRepo, FakeTransactionManager{})

	mockRepo.On("ExistsBy", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(false, errors.New("connection reset"))

	// Act
	res := handler.Handle(context.Background(), validCreateCommand())

	// Assert
	require.True(t, res.IsFailure())
	assert.Equal(t, CodeDomainError, res.Err().Code)
}
