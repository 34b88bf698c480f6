package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestorsur/bodega-api/internal/application/dto"
	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
	"github.com/gestorsur/bodega-api/pkg/rut"
)

// ExitUseCase registra salidas de inventario (bodega → cliente) de forma
// transaccional. El precio unitario de cada línea es la fotografía del
// precio de venta vigente del producto; si cualquier línea queda sin stock
// la salida completa se descarta.
type ExitUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	exitRepo     repository.ExitRepository
}

// NewExitUseCase construye el caso de uso.
func NewExitUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	exitRepo repository.ExitRepository,
) *ExitUseCase {
	return &ExitUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		exitRepo:     exitRepo,
	}
}

// CreateExit valida RUT y líneas, resuelve cliente y productos (los
// inactivos no se venden), y dentro de una transacción persiste cabecera y
// detalles y descuenta stock por línea. El descuento toma el bloqueo de
// fila del producto: dos salidas concurrentes del mismo producto no pueden
// confirmar ambas si la suma excede lo disponible.
func (uc *ExitUseCase) CreateExit(ctx context.Context, in dto.CreateExitRequest) (*dto.ExitResponse, error) {
	if err := rut.Validate(in.CustomerRut); err != nil {
		return nil, domain.ErrInvalidRut
	}
	if len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Details {
		if uuid.Validate(line.ProductID) != nil || !validQuantity(line.Quantity) {
			return nil, domain.ErrInvalidInput
		}
	}

	normalizedRut, _ := rut.Normalize(in.CustomerRut)
	customer, err := uc.customerRepo.GetByRut(normalizedRut)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCounterpartyNotFound
	}

	// Resolver productos y fotografiar el precio de venta vigente
	productsByID := make(map[string]*entity.Product, len(in.Details))
	for _, line := range in.Details {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		if !product.Active {
			return nil, domain.ErrProductInactive
		}
		productsByID[line.ProductID] = product
	}

	now := time.Now()
	exit := &entity.InventoryExit{
		ID:         uuid.New().String(),
		CustomerID: customer.ID,
		CreatedAt:  now,
	}
	details := make([]*entity.InventoryExitDetail, 0, len(in.Details))
	for i, line := range in.Details {
		salePrice := productsByID[line.ProductID].SalePrice
		details = append(details, &entity.InventoryExitDetail{
			ID:         uuid.New().String(),
			ExitID:     exit.ID,
			LineNo:     i + 1,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  salePrice,
			TotalPrice: line.Quantity.Mul(salePrice),
		})
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.EntryRepository,
		exitRepo repository.ExitRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		if err := exitRepo.Create(exit); err != nil {
			return err
		}
		ledger := NewStockLedger(stockRepo)
		for _, d := range details {
			if err := exitRepo.CreateDetail(d); err != nil {
				return err
			}
			// Primer producto sin stock aborta la salida completa (rollback)
			if err := ledger.Decrement(d.ProductID, d.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(exit, customer.Rut, details), nil
}

// DeleteExit repone el stock de cada línea (dirección exit) y elimina
// cabecera y detalles, todo en una transacción.
func (uc *ExitUseCase) DeleteExit(ctx context.Context, id string) error {
	// Un id mal formado no puede referir a ninguna salida
	if uuid.Validate(id) != nil {
		return domain.ErrExitNotFound
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.EntryRepository,
		exitRepo repository.ExitRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		exit, err := exitRepo.GetByID(id)
		if err != nil {
			return err
		}
		if exit == nil {
			return domain.ErrExitNotFound
		}
		details, err := exitRepo.GetDetails(id)
		if err != nil {
			return err
		}
		ledger := NewStockLedger(stockRepo)
		for _, d := range details {
			if err := ledger.Reverse(d.ProductID, d.Quantity, ReverseExit); err != nil {
				return err
			}
		}
		return exitRepo.Delete(id)
	})
}

// GetExit obtiene una salida con su detalle.
func (uc *ExitUseCase) GetExit(ctx context.Context, id string) (*dto.ExitResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrExitNotFound
	}
	exit, err := uc.exitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if exit == nil {
		return nil, domain.ErrExitNotFound
	}
	details, err := uc.exitRepo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(exit.CustomerID)
	if err != nil {
		return nil, err
	}
	customerRut := ""
	if customer != nil {
		customerRut = customer.Rut
	}
	return uc.toResponse(exit, customerRut, details), nil
}

// ListExits lista cabeceras de salida (sin detalle).
func (uc *ExitUseCase) ListExits(ctx context.Context, limit, offset int) ([]*dto.ExitResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	exits, err := uc.exitRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExitResponse, 0, len(exits))
	for _, e := range exits {
		out = append(out, &dto.ExitResponse{
			ID:         e.ID,
			CustomerID: e.CustomerID,
			CreatedAt:  e.CreatedAt,
			Details:    []dto.MovementDetailResponse{},
		})
	}
	return out, nil
}

func (uc *ExitUseCase) toResponse(exit *entity.InventoryExit, customerRut string, details []*entity.InventoryExitDetail) *dto.ExitResponse {
	resp := &dto.ExitResponse{
		ID:          exit.ID,
		CustomerID:  exit.CustomerID,
		CustomerRut: customerRut,
		CreatedAt:   exit.CreatedAt,
		Details:     make([]dto.MovementDetailResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.MovementDetailResponse{
			ID:         d.ID,
			LineNo:     d.LineNo,
			ProductID:  d.ProductID,
			Quantity:   d.Quantity,
			UnitPrice:  d.UnitPrice,
			TotalPrice: d.TotalPrice,
		})
	}
	return resp
}
