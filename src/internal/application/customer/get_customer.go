package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/customer"
)

// ===========================
// GetCustomer
// ===========================

// GetCustomerQuery looks a customer up by surrogate id or api id. At
// least one must be present; id wins when both are.
type GetCustomerQuery struct {
	ID    *int
	APIID *string
}

// GetCustomerHandler resolves the query against the repository and
// projects the aggregate.
type GetCustomerHandler struct {
	customerRepo customer.CustomerRepository
}

// NewGetCustomerHandler wires the handler's collaborator.
func NewGetCustomerHandler(customerRepo customer.CustomerRepository) *GetCustomerHandler {
	return &GetCustomerHandler{customerRepo: customerRepo}
}

// Handle resolves the lookup. An empty query is Customer.InvalidQuery; a
// miss is Customer.NotFound carrying the attempted identifier.
func (h *GetCustomerHandler) Handle(ctx context.Context, query GetCustomerQuery) result.Result[CustomerResponse] {
	var (
		found      *customer.Customer
		err        error
		identifier string
	)

	switch {
	case query.ID != nil:
		identifier = fmt.Sprintf("id %d", *query.ID)
		found, err = h.customerRepo.FindByID(ctx, *query.ID)
	case query.APIID != nil:
		identifier = fmt.Sprintf("api id %q", *query.APIID)
		found, err = h.customerRepo.FindByAPIID(ctx, *query.APIID)
	default:
		return result.Fail[CustomerResponse](result.NewError(
			CodeInvalidQuery,
			"either id or api id must be provided",
		))
	}

	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			return result.Fail[CustomerResponse](result.NewError(
				CodeNotFound,
				fmt.Sprintf("customer with %s was not found", identifier),
			))
		}
		return result.Fail[CustomerResponse](toFailure(err))
	}

	return result.Ok(toResponse(found))
}
