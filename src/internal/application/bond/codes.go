package bond

import (
	"errors"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/bond"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// Result error codes for the bond slice.
const (
	CodeNotFound         = "Bond.NotFound"
	CodeAlreadyExists    = "Bond.AlreadyExists"
	CodeValidationFailed = "Bond.ValidationFailed"
	CodeInvalidQuery     = "Bond.InvalidQuery"
	CodeDomainError      = "Bond.DomainError"

	CodeDetailNotFound         = "BondDetail.NotFound"
	CodeDetailValidationFailed = "BondDetail.ValidationFailed"
	CodeDetailDomainError      = "BondDetail.DomainError"
)

// toFailure converts any error crossing the bond handler boundary into a
// result Error.
func toFailure(err error) result.Error {
	if errors.Is(err, bond.ErrBondAlreadyExists) {
		return result.NewError(CodeAlreadyExists, err.Error())
	}
	if errors.Is(err, bond.ErrBondNotFound) {
		return result.NewError(CodeNotFound, err.Error())
	}
	if errors.Is(err, bond.ErrBondDetailNotFound) {
		return result.NewError(CodeDetailNotFound, err.Error())
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

// toDetailFailure is toFailure with BondDetail code prefixes for the
// detail slice.
func toDetailFailure(err error) result.Error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if isValidationCode(domainErr.Code) {
			return result.NewError(CodeDetailValidationFailed, err.Error())
		}
	}
	return result.NewError(CodeDetailDomainError, err.Error())
}

// isValidationCode separates argument-shaped construction failures from
// business-rule violations.
func isValidationCode(code shared.ErrorCode) bool {
	switch code {
	case bond.ErrSymbolRequired.Code,
		bond.ErrSymbolTooLong.Code,
		bond.ErrInvalidIsin.Code,
		bond.ErrExpirationNotAfterIssuance.Code,
		bond.ErrInvalidDateRange.Code,
		bond.ErrNilAPIID.Code,
		bond.ErrInvalidBondDetailID.Code,
		bond.ErrRateOutOfRange.Code,
		bond.ErrNegativeMoney.Code,
		bond.ErrDeadlineNotPositive.Code,
		bond.ErrGracePeriodNegative.Code,
		bond.ErrGracePeriodExceedsDeadline.Code,
		bond.ErrInvalidReferenceID.Code:
		return true
	default:
		return false
	}
}
