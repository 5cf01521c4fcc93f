package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/fmartins/bond_crm/src/internal/domain/shared"
)

// ===========================
// GORM transaction manager
// ===========================

// txKey carries the transactional *gorm.DB through the context so
// repositories called inside InTransaction participate in the same
// transaction without the domain layer ever seeing GORM.
type txKey struct{}

// GormTransactionManager implements shared.TransactionManager on top of
// gorm's Transaction: fn's context carries the tx handle, cancellation of
// the outer context rolls the transaction back.
type GormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager wires the manager to a database handle.
func NewGormTransactionManager(db *gorm.DB) shared.TransactionManager {
	return &GormTransactionManager{db: db}
}

// InTransaction runs fn atomically. A non-nil error from fn rolls back;
// nil commits.
func (m *GormTransactionManager) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext returns the transactional handle when the context carries
// one, else the fallback bound to the context (auto-commit mode).
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
