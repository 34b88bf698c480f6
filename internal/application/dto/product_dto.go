package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ProductType string          `json:"product_type"`
	SalePrice   decimal.Decimal `json:"sale_price"`
}

// UpdateProductRequest body para PUT /api/products/:id. Solo precio y
// vigencia son editables una vez que el producto tiene movimientos.
type UpdateProductRequest struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ProductType string          `json:"product_type"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	Active      bool            `json:"active"`
}
