package bond

import "github.com/fmartins/bond_crm/src/internal/domain/shared"

// ===========================
// Bond domain errors
// ===========================

var (
	// ErrSymbolRequired is raised when a bond symbol is empty after trimming.
	ErrSymbolRequired = shared.NewDomainError(
		"BOND_SYMBOL_REQUIRED",
		"bond symbol cannot be empty",
	)

	// ErrSymbolTooLong is raised when a bond symbol exceeds 50 characters.
	ErrSymbolTooLong = shared.NewDomainError(
		"BOND_SYMBOL_TOO_LONG",
		"bond symbol cannot exceed 50 characters",
	)

	// ErrInvalidIsin is raised when an ISIN is not 2 letters followed by
	// 10 alphanumerics.
	ErrInvalidIsin = shared.NewDomainError(
		"BOND_ISIN_INVALID",
		"isin must be 12 characters: 2 letters followed by 10 alphanumerics",
	)

	// ErrRateOutOfRange is raised for a percentage outside [0, 1000].
	ErrRateOutOfRange = shared.NewDomainError(
		"RATE_OUT_OF_RANGE",
		"rate must be between 0 and 1000 percent",
	)

	// ErrNegativeMoney is raised when constructing a negative amount.
	ErrNegativeMoney = shared.NewDomainError(
		"MONEY_NEGATIVE",
		"money amount cannot be negative",
	)

	// ErrMoneyUnderflow is raised when a subtraction would go below zero.
	ErrMoneyUnderflow = shared.NewDomainError(
		"MONEY_UNDERFLOW",
		"money subtraction cannot produce a negative amount",
	)

	// ErrDivisionByZero is raised on Money division by zero.
	ErrDivisionByZero = shared.NewDomainError(
		"MONEY_DIVISION_BY_ZERO",
		"money cannot be divided by zero",
	)

	// ErrInvalidDateRange is raised when a range starts after it ends.
	ErrInvalidDateRange = shared.NewDomainError(
		"DATE_RANGE_INVALID",
		"start date cannot be after end date",
	)

	// ErrExpirationNotAfterIssuance is raised at creation when the
	// expiration date is not strictly after the issuance date.
	ErrExpirationNotAfterIssuance = shared.NewDomainError(
		"BOND_EXPIRATION_NOT_AFTER_ISSUANCE",
		"expiration date must be after issuance date",
	)

	// ErrExpirationNotAfterCurrent is raised by ExtendExpiration when the
	// new date is not strictly after the current expiration.
	ErrExpirationNotAfterCurrent = shared.NewDomainError(
		"BOND_EXPIRATION_NOT_AFTER_CURRENT",
		"new expiration date must be after current expiration date",
	)

	// ErrNilAPIID is raised when assigning the nil GUID as api id.
	ErrNilAPIID = shared.NewDomainError(
		"BOND_API_ID_NIL",
		"api id cannot be the nil guid",
	)

	// ErrInvalidBondDetailID is raised when linking to a non-positive
	// bond detail id.
	ErrInvalidBondDetailID = shared.NewDomainError(
		"BOND_DETAIL_ID_INVALID",
		"bond detail id must be a positive identifier",
	)

	// ErrBondExpired is the guard failure for operations on expired bonds.
	ErrBondExpired = shared.NewDomainError(
		"BOND_EXPIRED",
		"bond has already expired",
	)

	// ErrBondNotActive is the guard failure for operations on bonds
	// outside their active window.
	ErrBondNotActive = shared.NewDomainError(
		"BOND_NOT_ACTIVE",
		"bond is not active",
	)

	// ErrBondNotCetipVerified is the guard failure for trade operations
	// on bonds pending Cetip verification.
	ErrBondNotCetipVerified = shared.NewDomainError(
		"BOND_NOT_CETIP_VERIFIED",
		"bond is not cetip verified",
	)

	// ErrBondNotFound is raised when a lookup yields nothing.
	ErrBondNotFound = shared.NewDomainError(
		"BOND_NOT_FOUND",
		"bond not found",
	)

	// ErrBondAlreadyExists is raised by the persistence layer when the
	// isin uniqueness constraint is violated.
	ErrBondAlreadyExists = shared.NewDomainError(
		"BOND_ALREADY_EXISTS",
		"a bond with the same isin already exists",
	)
)

// ===========================
// BondDetail domain errors
// ===========================

var (
	// ErrDeadlineNotPositive is raised for a non-positive deadline.
	ErrDeadlineNotPositive = shared.NewDomainError(
		"BOND_DETAIL_DEADLINE_NOT_POSITIVE",
		"deadline in calendar days must be positive",
	)

	// ErrGracePeriodNegative is raised for a negative grace period.
	ErrGracePeriodNegative = shared.NewDomainError(
		"BOND_DETAIL_GRACE_NEGATIVE",
		"days to grace period cannot be negative",
	)

	// ErrGracePeriodExceedsDeadline is raised when the grace period is
	// longer than the deadline.
	ErrGracePeriodExceedsDeadline = shared.NewDomainError(
		"BOND_DETAIL_GRACE_EXCEEDS_DEADLINE",
		"days to grace period cannot exceed deadline",
	)

	// ErrInvalidReferenceID is raised for a non-positive market index,
	// bond base or bond emitter id.
	ErrInvalidReferenceID = shared.NewDomainError(
		"BOND_DETAIL_REFERENCE_ID_INVALID",
		"reference id must be a positive identifier",
	)

	// ErrBondDetailNotFound is raised when a lookup yields nothing.
	ErrBondDetailNotFound = shared.NewDomainError(
		"BOND_DETAIL_NOT_FOUND",
		"bond detail not found",
	)
)

// ===========================
// Reference entity errors
// ===========================

var (
	// ErrNameRequired is raised when a reference entity name is empty.
	ErrNameRequired = shared.NewDomainError(
		"REFERENCE_NAME_REQUIRED",
		"name cannot be empty",
	)

	// ErrNameTooLong is raised when a reference entity name exceeds 100
	// characters.
	ErrNameTooLong = shared.NewDomainError(
		"REFERENCE_NAME_TOO_LONG",
		"name cannot exceed 100 characters",
	)

	// ErrIndexSymbolRequired is raised when an index/base symbol is empty.
	ErrIndexSymbolRequired = shared.NewDomainError(
		"REFERENCE_SYMBOL_REQUIRED",
		"symbol cannot be empty",
	)

	// ErrIndexSymbolTooLong is raised when an index/base symbol exceeds
	// 10 characters.
	ErrIndexSymbolTooLong = shared.NewDomainError(
		"REFERENCE_SYMBOL_TOO_LONG",
		"symbol cannot exceed 10 characters",
	)

	// ErrInvalidEmail is raised for a malformed emitter email.
	ErrInvalidEmail = shared.NewDomainError(
		"EMITTER_EMAIL_INVALID",
		"email address is malformed",
	)

	// ErrInvalidRating is raised for a credit rating outside the scale.
	ErrInvalidRating = shared.NewDomainError(
		"EMITTER_RATING_INVALID",
		"credit rating is not part of the rating scale",
	)
)
