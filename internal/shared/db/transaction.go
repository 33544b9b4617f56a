// Package db carries the gorm transaction plumbing shared by the
// repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txCtxKey struct{}

// TransactionManager starts transactions and threads the open *gorm.DB
// through the context so repositories called inside the closure join it
// without knowing about each other.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside one transaction. A returned error rolls
// everything back; nil commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txCtxKey{}, tx))
	})
}

// GetTxFromContext hands repositories the transaction carried by ctx, falling
// back to their own connection when no transaction is open.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
