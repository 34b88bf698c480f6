package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestorsur/bodega-api/internal/application/dto"
	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
	"github.com/gestorsur/bodega-api/pkg/rut"
)

// EntryUseCase registra entradas de inventario (proveedor → bodega) de
// forma transaccional: cabecera, detalles e incrementos de stock se
// confirman todos o ninguno.
type EntryUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	entryRepo    repository.EntryRepository
}

// NewEntryUseCase construye el caso de uso. Los repositorios recibidos
// aquí son de solo lectura (pool); los de escritura llegan atados a la tx
// vía TxRunner.Run.
func NewEntryUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	entryRepo repository.EntryRepository,
) *EntryUseCase {
	return &EntryUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		entryRepo:    entryRepo,
	}
}

// validQuantity: cantidad entera estrictamente positiva.
func validQuantity(q decimal.Decimal) bool {
	return q.IsPositive() && q.IsInteger()
}

// CreateEntry valida el RUT y las líneas, resuelve proveedor y productos, y
// dentro de una transacción persiste cabecera y detalles (totalPrice =
// cantidad × precio de compra) e incrementa el stock por línea.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	// Validación sin efectos: RUT malformado se rechaza antes de tocar la DB
	if err := rut.Validate(in.SupplierRut); err != nil {
		return nil, domain.ErrInvalidRut
	}
	if len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Details {
		if uuid.Validate(line.ProductID) != nil || !validQuantity(line.Quantity) || line.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	normalizedRut, _ := rut.Normalize(in.SupplierRut)
	supplier, err := uc.supplierRepo.GetByRut(normalizedRut)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrCounterpartyNotFound
	}

	// Productos: solo lectura, fuera de la tx. Entradas admiten productos
	// inactivos (reposición de línea descontinuada).
	for _, line := range in.Details {
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
	}

	now := time.Now()
	entry := &entity.InventoryEntry{
		ID:         uuid.New().String(),
		SupplierID: supplier.ID,
		CreatedAt:  now,
	}
	details := make([]*entity.InventoryEntryDetail, 0, len(in.Details))
	for i, line := range in.Details {
		details = append(details, &entity.InventoryEntryDetail{
			ID:         uuid.New().String(),
			EntryID:    entry.ID,
			LineNo:     i + 1,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  line.PurchasePrice,
			TotalPrice: line.Quantity.Mul(line.PurchasePrice),
		})
	}

	err = uc.txRunner.Run(ctx, func(
		entryRepo repository.EntryRepository,
		_ repository.ExitRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		if err := entryRepo.Create(entry); err != nil {
			return err
		}
		ledger := NewStockLedger(stockRepo)
		for _, d := range details {
			if err := entryRepo.CreateDetail(d); err != nil {
				return err
			}
			if err := ledger.Increment(d.ProductID, d.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(entry, supplier.Rut, details), nil
}

// DeleteEntry revierte el efecto de cada línea sobre el stock (dirección
// entry: descuento) y elimina cabecera y detalles, todo en una transacción.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	// Un id mal formado no puede referir a ninguna entrada
	if uuid.Validate(id) != nil {
		return domain.ErrEntryNotFound
	}
	return uc.txRunner.Run(ctx, func(
		entryRepo repository.EntryRepository,
		_ repository.ExitRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		entry, err := entryRepo.GetByID(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrEntryNotFound
		}
		details, err := entryRepo.GetDetails(id)
		if err != nil {
			return err
		}
		ledger := NewStockLedger(stockRepo)
		for _, d := range details {
			if err := ledger.Reverse(d.ProductID, d.Quantity, ReverseEntry); err != nil {
				return err
			}
		}
		return entryRepo.Delete(id)
	})
}

// GetEntry obtiene una entrada con su detalle.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*dto.EntryResponse, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrEntryNotFound
	}
	entry, err := uc.entryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrEntryNotFound
	}
	details, err := uc.entryRepo.GetDetails(id)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(entry.SupplierID)
	if err != nil {
		return nil, err
	}
	supplierRut := ""
	if supplier != nil {
		supplierRut = supplier.Rut
	}
	return uc.toResponse(entry, supplierRut, details), nil
}

// ListEntries lista cabeceras de entrada (sin detalle).
func (uc *EntryUseCase) ListEntries(ctx context.Context, limit, offset int) ([]*dto.EntryResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	entries, err := uc.entryRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.EntryResponse{
			ID:         e.ID,
			SupplierID: e.SupplierID,
			CreatedAt:  e.CreatedAt,
			Details:    []dto.MovementDetailResponse{},
		})
	}
	return out, nil
}

func (uc *EntryUseCase) toResponse(entry *entity.InventoryEntry, supplierRut string, details []*entity.InventoryEntryDetail) *dto.EntryResponse {
	resp := &dto.EntryResponse{
		ID:          entry.ID,
		SupplierID:  entry.SupplierID,
		SupplierRut: supplierRut,
		CreatedAt:   entry.CreatedAt,
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
