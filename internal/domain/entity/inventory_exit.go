package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryExit representa la cabecera de una salida de inventario
// (bodega → cliente). Inmutable una vez creada; solo puede eliminarse,
// lo que revierte su efecto sobre el stock.
type InventoryExit struct {
	ID         string
	CustomerID string
	CreatedAt  time.Time
}

// InventoryExitDetail representa una línea de salida. UnitPrice es la
// fotografía del precio de venta del producto al momento de la venta;
// TotalPrice = Quantity × UnitPrice.
type InventoryExitDetail struct {
	ID         string
	ExitID     string
	LineNo     int
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
