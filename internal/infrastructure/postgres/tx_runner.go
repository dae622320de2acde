package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ninjasaskeh/vr46/internal/application/weighing"
	"github.com/ninjasaskeh/vr46/internal/domain/repository"
)

var _ weighing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunWeighing ejecuta fn con los repos de pesaje y material atados a una misma
// transacción: el registro y el ajuste de stock se confirman juntos o no se confirma nada.
func (r *TxRunner) RunWeighing(ctx context.Context, fn func(
	records repository.WeightRecordRepository,
	materials repository.MaterialRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewWeightRecordRepository(tx), NewMaterialRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
