package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// Asegura que TxRunner implementa el puerto del caso de uso de pedidos.
var _ usecase.OrderTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Cada
// escritura lógica (pedido + líneas) se confirma completa o se revierte.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback según el resultado.
func (r *TxRunner) Run(fn func(
	orderRepo repository.BeerOrderRepository,
	lineRepo repository.BeerOrderLineRepository,
	beerRepo repository.BeerRepository,
) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewBeerOrderRepository(tx)
	lineRepo := NewBeerOrderLineRepository(tx)
	beerRepo := NewBeerRepository(tx)

	if err := fn(orderRepo, lineRepo, beerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
