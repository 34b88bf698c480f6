package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestorsur/bodega-api/internal/application/dto"
	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

// StockUseCase consultas de stock vigente (solo lectura).
type StockUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo}
}

// GetStock devuelve el stock vigente de un producto. El producto debe
// existir en el catálogo; sin movimientos registrados el stock es cero.
func (uc *StockUseCase) GetStock(ctx context.Context, productID string) (*dto.StockItemResponse, error) {
	if uuid.Validate(productID) != nil {
		return nil, domain.ErrProductNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	level, err := uc.stockRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	return &dto.StockItemResponse{
		ProductID: productID,
		SKU:       product.SKU,
		Name:      product.Name,
		Quantity:  level.Quantity,
		UpdatedAt: level.UpdatedAt,
	}, nil
}

// ListStock devuelve el stock vigente por producto para GET /api/inventory.
func (uc *StockUseCase) ListStock(ctx context.Context) ([]dto.StockItemResponse, error) {
	levels, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(levels))
	for _, level := range levels {
		item := dto.StockItemResponse{
			ProductID: level.ProductID,
			Quantity:  level.Quantity,
			UpdatedAt: level.UpdatedAt,
		}
		if product, _ := uc.productRepo.GetByID(level.ProductID); product != nil {
			item.SKU = product.SKU
			item.Name = product.Name
		}
		out = append(out, item)
	}
	return out, nil
}
