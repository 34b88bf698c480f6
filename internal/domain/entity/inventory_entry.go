package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryEntry representa la cabecera de una entrada de inventario
// (proveedor → bodega). Inmutable una vez creada; solo puede eliminarse,
// lo que revierte su efecto sobre el stock.
type InventoryEntry struct {
	ID         string
	SupplierID string
	CreatedAt  time.Time
}

// InventoryEntryDetail representa una línea de entrada. UnitPrice es el
// precio de compra informado; TotalPrice = Quantity × UnitPrice se guarda
// redundante para auditoría y no se recalcula después.
type InventoryEntryDetail struct {
	ID         string
	EntryID    string
	LineNo     int
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
