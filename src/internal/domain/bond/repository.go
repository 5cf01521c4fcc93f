package bond

import (
	"context"

	"github.com/google/uuid"
)

// ===========================
// Repository contracts
// ===========================

// BondRepository is the persistence contract for bonds. Implementations
// live in the infrastructure layer.
//
// Behavior contract:
//   - Add persists a new bond and assigns its id; an isin unique-
//     constraint violation surfaces as ErrBondAlreadyExists.
//   - FindByID / FindByAPIID return ErrBondNotFound on a miss.
//   - ExistsByIsin probes uniqueness without loading the aggregate; the
//     probe and Add must run inside the same transaction.
type BondRepository interface {
	Add(ctx context.Context, b *Bond) error
	Update(ctx context.Context, b *Bond) error
	FindByID(ctx context.Context, id int) (*Bond, error)
	FindByAPIID(ctx context.Context, apiID uuid.UUID) (*Bond, error)
	ExistsByIsin(ctx context.Context, isin Isin) (bool, error)
}

// BondDetailRepository is the persistence contract for pricing details.
// FindByID returns ErrBondDetailNotFound on a miss.
type BondDetailRepository interface {
	Add(ctx context.Context, d *BondDetail) error
	Update(ctx context.Context, d *BondDetail) error
	FindByID(ctx context.Context, id int) (*BondDetail, error)
}
