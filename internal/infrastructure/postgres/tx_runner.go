package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción pgx. Los repos que
// recibe el callback están atados a la tx, no al pool.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor transaccional sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, invoca fn con repos transaccionales y commitea.
// Cualquier error de fn rueda atrás la transacción completa.
func (t *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	catalog repository.CatalogRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewProductRepository(tx), NewCatalogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
