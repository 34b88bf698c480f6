package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa la cantidad vigente de un producto en bodega
// (columna materializada, fuente de verdad). Invariante: Quantity >= 0 en
// todo estado confirmado; solo se muta dentro de la misma transacción que
// persiste las líneas del movimiento que la justifica.
type StockLevel struct {
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
