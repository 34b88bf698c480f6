package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

// Dirección de la reversa al eliminar un movimiento.
const (
	ReverseEntry = "entry" // eliminar una entrada descuenta stock
	ReverseExit  = "exit"  // eliminar una salida repone stock
)

// StockLedger aplica incrementos y descuentos sobre el stock materializado
// de un producto. Debe construirse con un StockRepository atado a la
// transacción del movimiento: GetForUpdate toma el bloqueo de fila que
// serializa chequeo y descuento frente a otros escritores del mismo
// producto.
type StockLedger struct {
	stockRepo repository.StockRepository
}

// NewStockLedger construye el ledger sobre el repositorio (tx) dado.
func NewStockLedger(stockRepo repository.StockRepository) *StockLedger {
	return &StockLedger{stockRepo: stockRepo}
}

// Increment suma qty al stock del producto. Sin tope superior.
func (l *StockLedger) Increment(productID string, qty decimal.Decimal) error {
	level, err := l.stockRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	level.Quantity = level.Quantity.Add(qty)
	level.UpdatedAt = time.Now()
	return l.stockRepo.Upsert(level)
}

// Decrement resta qty del stock del producto. Falla con
// InsufficientStockError si el stock vigente es menor que qty; el chequeo y
// el descuento ocurren bajo el bloqueo de fila.
func (l *StockLedger) Decrement(productID string, qty decimal.Decimal) error {
	level, err := l.stockRepo.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if level.Quantity.LessThan(qty) {
		return &domain.InsufficientStockError{
			ProductID: productID,
			Requested: qty,
			Available: level.Quantity,
		}
	}
	level.Quantity = level.Quantity.Sub(qty)
	level.UpdatedAt = time.Now()
	return l.stockRepo.Upsert(level)
}

// Reverse revierte el efecto de una línea al eliminar su movimiento:
// dirección entry descuenta, dirección exit repone. Una reversa que dejaría
// el stock negativo retorna InconsistentReversalError: el ledger ya divergió
// del historial por una escritura no protegida y debe reportarse, no
// recortarse en silencio.
func (l *StockLedger) Reverse(productID string, qty decimal.Decimal, direction string) error {
	switch direction {
	case ReverseExit:
		return l.Increment(productID, qty)
	case ReverseEntry:
		level, err := l.stockRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if level.Quantity.LessThan(qty) {
			return &domain.InconsistentReversalError{
				ProductID: productID,
				Reversal:  qty,
				Available: level.Quantity,
			}
		}
		level.Quantity = level.Quantity.Sub(qty)
		level.UpdatedAt = time.Now()
		return l.stockRepo.Upsert(level)
	default:
		return domain.ErrInvalidInput
	}
}
