package shared

import "context"

// ===========================
// TransactionManager
// ===========================

// TransactionManager runs a unit of work atomically.
//
// The transaction travels inside the context: repositories called with the
// ctx passed to fn participate in the same transaction, and cancelling the
// outer context aborts the transaction before anything is committed.
//
// Handlers that perform a check-then-act sequence (uniqueness probe
// followed by an insert) must run both steps through InTransaction; the
// sequence is not race-safe on its own, and the storage layer additionally
// enforces the uniqueness constraint so a late violation still surfaces as
// a conflict rather than a duplicate row.
type TransactionManager interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
