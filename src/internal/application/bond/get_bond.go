package bond

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/bond"
)

// ===========================
// GetBond
// ===========================

// GetBondQuery looks a bond up by surrogate id or api id (GUID string).
// At least one must be present; id wins when both are.
type GetBondQuery struct {
	ID    *int
	APIID *string
}

// GetBondHandler resolves the query against the repository and projects
// the aggregate.
type GetBondHandler struct {
	bondRepo bond.BondRepository
}

// NewGetBondHandler wires the handler's collaborator.
func NewGetBondHandler(bondRepo bond.BondRepository) *GetBondHandler {
	return &GetBondHandler{bondRepo: bondRepo}
}

// Handle resolves the lookup. An empty query is Bond.InvalidQuery; a miss
// is Bond.NotFound carrying the attempted identifier.
func (h *GetBondHandler) Handle(ctx context.Context, query GetBondQuery) result.Result[BondResponse] {
	var (
		found      *bond.Bond
		err        error
		identifier string
	)

	switch {
	case query.ID != nil:
		identifier = fmt.Sprintf("id %d", *query.ID)
		found, err = h.bondRepo.FindByID(ctx, *query.ID)
	case query.APIID != nil:
		identifier = fmt.Sprintf("api id %q", *query.APIID)
		apiID, parseErr := uuid.Parse(*query.APIID)
		if parseErr != nil {
			return result.Fail[BondResponse](result.NewError(
				CodeInvalidQuery,
				"api id must be a valid guid",
			))
		}
		found, err = h.bondRepo.FindByAPIID(ctx, apiID)
	default:
		return result.Fail[BondResponse](result.NewError(
			CodeInvalidQuery,
			"either id or api id must be provided",
		))
	}

	if err != nil {
		if errors.Is(err, bond.ErrBondNotFound) {
			return result.Fail[BondResponse](result.NewError(
				CodeNotFound,
				fmt.Sprintf("bond with %s was not found", identifier),
			))
		}
		return result.Fail[BondResponse](toFailure(err))
	}

	return result.Ok(toResponse(found))
}
