package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var snapshotOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// TxManager runs callbacks inside a transaction carried by the context.
// Nested RunInTx calls reuse the outer transaction.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a Read Committed transaction.
// It commits when fn returns nil and rolls back on error or panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, m.db.Begin, fn)
}

// RunReadOnly executes fn within a read-only Repeatable Read transaction, so
// every query in fn sees the same snapshot. Inside an existing transaction it
// reuses that one.
func (m *TxManager) RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, func(ctx context.Context) (pgx.Tx, error) {
		return m.db.BeginTx(ctx, snapshotOptions)
	}, fn)
}

func (m *TxManager) run(
	ctx context.Context,
	begin func(context.Context) (pgx.Tx, error),
	fn func(ctx context.Context) error,
) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
