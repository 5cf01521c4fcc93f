package customer

import "github.com/fmartins/bond_crm/src/internal/domain/shared"

// ===========================
// Customer domain errors
// ===========================

var (
	// ErrAPIIDRequired is raised when the api id is empty after trimming.
	ErrAPIIDRequired = shared.NewDomainError(
		"CUSTOMER_API_ID_REQUIRED",
		"api id cannot be empty",
	)

	// ErrAPIIDTooLong is raised when the api id exceeds 32 characters.
	ErrAPIIDTooLong = shared.NewDomainError(
		"CUSTOMER_API_ID_TOO_LONG",
		"api id cannot exceed 32 characters",
	)

	// ErrSinacorIDTooLong is raised when the sinacor id exceeds 9 characters.
	ErrSinacorIDTooLong = shared.NewDomainError(
		"CUSTOMER_SINACOR_ID_TOO_LONG",
		"sinacor id cannot exceed 9 characters",
	)

	// ErrLegacyExternalIDTooLong is raised when the legacy external id
	// exceeds 9 characters.
	ErrLegacyExternalIDTooLong = shared.NewDomainError(
		"CUSTOMER_LEGACY_EXTERNAL_ID_TOO_LONG",
		"legacy external id cannot exceed 9 characters",
	)

	// ErrInvalidCompany is raised for a company outside the known set.
	ErrInvalidCompany = shared.NewDomainError(
		"CUSTOMER_COMPANY_INVALID",
		"company must be Warren or Rena",
	)

	// ErrCustomerAlreadyExists is raised by the persistence layer when the
	// (document, sinacor id, company) uniqueness constraint is violated.
	ErrCustomerAlreadyExists = shared.NewDomainError(
		"CUSTOMER_ALREADY_EXISTS",
		"a customer with the same document, sinacor id and company already exists",
	)

	// ErrCustomerNotFound is raised when a lookup yields nothing.
	ErrCustomerNotFound = shared.NewDomainError(
		"CUSTOMER_NOT_FOUND",
		"customer not found",
	)

	// ErrRegisterNotFound is raised when a status transition targets a
	// system type the customer has no register for. The construction
	// invariant seeds one register per system, so this is a defensive case.
	ErrRegisterNotFound = shared.NewDomainError(
		"CUSTOMER_REGISTER_NOT_FOUND",
		"customer has no register for the given external system",
	)
)
