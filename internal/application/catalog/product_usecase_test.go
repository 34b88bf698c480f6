package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorsur/bodega-api/internal/application/catalog"
	"github.com/gestorsur/bodega-api/internal/application/dto"
	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/infrastructure/memory"
)

func newProductUC() *catalog.ProductUseCase {
	return catalog.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))
}

func TestProductCreate_Valido(t *testing.T) {
	uc := newProductUC()
	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "HER-010", Name: "Taladro percutor", ProductType: "HERRAMIENTA",
		SalePrice: decimal.NewFromInt(45990),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Active, "el producto nace activo")
	assert.True(t, resp.SalePrice.Equal(decimal.NewFromInt(45990)))
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc := newProductUC()
	in := dto.CreateProductRequest{
		SKU: "HER-010", Name: "Taladro", ProductType: "HERRAMIENTA", SalePrice: decimal.NewFromInt(100),
	}
	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_TipoInvalido(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "X-001", Name: "Algo", ProductType: "MUEBLE", SalePrice: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "X-001", Name: "Algo", ProductType: "INSUMO", SalePrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_PrecioYVigencia(t *testing.T) {
	uc := newProductUC()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "MAT-001", Name: "Cemento", ProductType: "MATERIAL", SalePrice: decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(175)
	inactive := false
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SalePrice: &newPrice,
		Active:    &inactive,
	})
	require.NoError(t, err)
	assert.True(t, updated.SalePrice.Equal(newPrice))
	assert.False(t, updated.Active)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := newProductUC()
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	uc := newProductUC()

	// id mal formado: se rechaza antes de consultar (las columnas son UUID)
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// UUID bien formado pero sin registro
	_, err = uc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
