package inventory

import (
	"context"

	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la unidad atómica del ledger: cabecera,
// detalles y mutaciones de stock de un movimiento se confirman todas o
// ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entryRepo repository.EntryRepository,
		exitRepo repository.ExitRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
