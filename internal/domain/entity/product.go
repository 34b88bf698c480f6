package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto.
const (
	ProductTypeMaterial    = "MATERIAL"
	ProductTypeRepuesto    = "REPUESTO"
	ProductTypeHerramienta = "HERRAMIENTA"
	ProductTypeInsumo      = "INSUMO"
)

// ValidProductType verifica que el tipo pertenezca a la enumeración.
func ValidProductType(t string) bool {
	switch t {
	case ProductTypeMaterial, ProductTypeRepuesto, ProductTypeHerramienta, ProductTypeInsumo:
		return true
	}
	return false
}

// Product representa un producto del catálogo. SalePrice es el precio de
// venta vigente (CLP, sin decimales); los detalles históricos guardan su
// propia copia del precio y no se recalculan al editarlo. Un producto
// inactivo puede recibir entradas (reposición de línea descontinuada) pero
// no salidas.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	ProductType string
	SalePrice   decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
