package customer

import (
	"context"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// CustomerRepository
// ===========================

// CustomerRepository is the persistence contract the application layer
// depends on. The implementation lives in the infrastructure layer.
//
// Behavior contract:
//   - Add persists a new customer with its registers and assigns ids.
//     Must run inside a transaction; a unique-constraint violation on
//     (document, sinacor id, company) surfaces as ErrCustomerAlreadyExists.
//   - Update persists mutations of an already-persisted customer.
//   - FindByID / FindByAPIID return ErrCustomerNotFound on a miss.
//   - ExistsBy probes the uniqueness tuple without loading the aggregate.
//
// The exists probe and Add are not race-safe as a sequence; callers wrap
// both in shared.TransactionManager.InTransaction and the storage layer
// keeps the constraint as a backstop.
type CustomerRepository interface {
	Add(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id int) (*Customer, error)
	FindByAPIID(ctx context.Context, apiID string) (*Customer, error)
	ExistsBy(ctx context.Context, document shared.BusinessDocument, sinacorID string, company Company) (bool, error)
}
