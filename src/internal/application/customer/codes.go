package customer

import (
	"errors"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/customer"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// Result error codes for the customer slice. The boundary layer maps them
// to transport status codes by suffix (NotFound, AlreadyExists,
// ValidationFailed, InvalidQuery).
const (
	CodeNotFound         = "Customer.NotFound"
	CodeAlreadyExists    = "Customer.AlreadyExists"
	CodeValidationFailed = "Customer.ValidationFailed"
	CodeInvalidQuery     = "Customer.InvalidQuery"
	CodeDomainError      = "Customer.DomainError"
)

// toFailure converts any error crossing the handler boundary into a
// result Error. Construction-constraint violations become
// ValidationFailed, the uniqueness violation becomes AlreadyExists, any
// other domain rule (and any unexpected repository error) becomes the
// DomainError catch-all.
func toFailure(err error) result.Error {
	if errors.Is(err, customer.ErrCustomerAlreadyExists) {
		return result.NewError(CodeAlreadyExists, err.Error())
	}
	if errors.Is(err, customer.ErrCustomerNotFound) {
		return result.NewError(CodeNotFound, err.Error())
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if isValidationCode(domainErr.Code) {
			return result.NewError(CodeValidationFailed, err.Error())
		}
		return result.NewError(CodeDomainError, err.Error())
	}

	return result.NewError(CodeDomainError, err.Error())
}

// isValidationCode separates argument-shaped construction failures from
// business-rule violations.
func isValidationCode(code shared.ErrorCode) bool {
	switch code {
	case customer.ErrAPIIDRequired.Code,
		customer.ErrAPIIDTooLong.Code,
		customer.ErrSinacorIDTooLong.Code,
		customer.ErrLegacyExternalIDTooLong.Code,
		customer.ErrInvalidCompany.Code,
		shared.ErrInvalidBusinessDocument.Code:
		return true
	default:
		return false
	}
}
