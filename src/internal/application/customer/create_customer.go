package customer

import (
	"context"

	"github.com/fmartins/bond_crm/src/internal/application/result"
	"github.com/fmartins/bond_crm/src/internal/domain/customer"
	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// CreateCustomer
// ===========================

// CreateCustomerCommand is the input DTO: primitives only, converted to
// value objects by the handler.
type CreateCustomerCommand struct {
	APIID            string
	Document         string
	Company          int
	SinacorID        string
	LegacyExternalID string
}

// CreateCustomerHandler creates a customer after probing the
// (document, sinacor id, company) uniqueness tuple.
//
// The probe and the insert run inside one transaction; the storage
// layer's unique constraint is the backstop for races, and a late
// violation still comes back as Customer.AlreadyExists.
type CreateCustomerHandler struct {
	customerRepo customer.CustomerRepository
	txManager    shared.TransactionManager
}

// NewCreateCustomerHandler wires the handler's collaborators.
func NewCreateCustomerHandler(
	customerRepo customer.CustomerRepository,
	txManager shared.TransactionManager,
) *CreateCustomerHandler {
	return &CreateCustomerHandler{customerRepo: customerRepo, txManager: txManager}
}

// Handle validates, checks uniqueness, persists and projects. Domain
// violations never escape: they are converted to failure Results here.
func (h *CreateCustomerHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) result.Result[CustomerResponse] {
	document, err := shared.NewBusinessDocument(cmd.Document)
	if err != nil {
		return result.Fail[CustomerResponse](toFailure(err))
	}

	company := customer.Company(cmd.Company)

	var created *customer.Customer

	err = h.txManager.InTransaction(ctx, func(ctx context.Context) error {
		exists, txErr := h.customerRepo.ExistsBy(ctx, document, cmd.SinacorID, company)
		if txErr != nil {
			return txErr
		}
		if exists {
			return customer.ErrCustomerAlreadyExists.WithContext(
				"document", document.Value(),
				"sinacor_id", cmd.SinacorID,
				"company", company.String(),
			)
		}

		created, txErr = customer.NewCustomer(
			cmd.APIID,
			cmd.Document,
			company,
			cmd.SinacorID,
			cmd.LegacyExternalID,
		)
		if txErr != nil {
			return txErr
		}

		return h.customerRepo.Add(ctx, created)
	})
	if err != nil {
		return result.Fail[CustomerResponse](toFailure(err))
	}

	return result.Ok(toResponse(created))
}
