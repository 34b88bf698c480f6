package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLineRequest línea de entrada: producto, cantidad (entero > 0) y
// precio de compra (>= 0).
type EntryLineRequest struct {
	ProductID     string          `json:"product_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
}

// CreateEntryRequest body para POST /api/inventory/entries.
type CreateEntryRequest struct {
	SupplierRut string             `json:"supplier_rut"`
	Details     []EntryLineRequest `json:"details"`
}

// ExitLineRequest línea de salida: producto y cantidad. El precio unitario
// no se informa: se fotografía el precio de venta vigente del producto.
type ExitLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateExitRequest body para POST /api/inventory/exits.
type CreateExitRequest struct {
	CustomerRut string            `json:"customer_rut"`
	Details     []ExitLineRequest `json:"details"`
}

// MovementDetailResponse línea de detalle en respuestas de entrada/salida.
type MovementDetailResponse struct {
	ID         string          `json:"id"`
	LineNo     int             `json:"line_no"`
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// EntryResponse entrada con detalle para POST/GET /api/inventory/entries.
type EntryResponse struct {
	ID          string                   `json:"id"`
	SupplierID  string                   `json:"supplier_id"`
	SupplierRut string                   `json:"supplier_rut,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	Details     []MovementDetailResponse `json:"details"`
}

// ExitResponse salida con detalle para POST/GET /api/inventory/exits.
type ExitResponse struct {
	ID          string                   `json:"id"`
	CustomerID  string                   `json:"customer_id"`
	CustomerRut string                   `json:"customer_rut,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	Details     []MovementDetailResponse `json:"details"`
}

// StockItemResponse stock vigente de un producto para GET /api/inventory.
type StockItemResponse struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku,omitempty"`
	Name      string          `json:"name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}
