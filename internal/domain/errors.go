package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrProductNotFound      = errors.New("producto no encontrado")
	ErrProductInactive      = errors.New("producto inactivo, no se puede vender")
	ErrCounterpartyNotFound = errors.New("contraparte no encontrada")
	ErrEntryNotFound        = errors.New("entrada de inventario no encontrada")
	ErrExitNotFound         = errors.New("salida de inventario no encontrada")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidRut           = errors.New("RUT inválido")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInconsistentReversal = errors.New("reversa inconsistente: el stock quedaría negativo")
)

// InsufficientStockError identifica el producto ofensor y las cantidades
// solicitada y disponible. errors.Is(err, ErrInsufficientStock) == true.
type InsufficientStockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: solicitado %s, disponible %s",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// InconsistentReversalError indica que revertir un movimiento dejaría el
// stock negativo: el ledger y el historial ya divergieron por una escritura
// no protegida. Es una falla de servidor, no se reintenta.
type InconsistentReversalError struct {
	ProductID string
	Reversal  decimal.Decimal
	Available decimal.Decimal
}

func (e *InconsistentReversalError) Error() string {
	return fmt.Sprintf("reversa inconsistente para producto %s: reversa %s, disponible %s",
		e.ProductID, e.Reversal, e.Available)
}

func (e *InconsistentReversalError) Unwrap() error { return ErrInconsistentReversal }
