package party

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

// SupplierUseCase casos de uso de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor con RUT validado y normalizado.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := rut.Validate(in.Rut); err != nil {
		return nil, domain.ErrInvalidRut
	}
	normalizedRut, _ := rut.Normalize(in.Rut)
	existing, _ := uc.repo.GetByRut(normalizedRut)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Rut:       normalizedRut,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return &dto.PartyResponse{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Rut:     supplier.Rut,
		Address: supplier.Address,
		Phone:   supplier.Phone,
		Email:   supplier.Email,
	}, nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) ([]*dto.PartyResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	suppliers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartyResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, &dto.PartyResponse{
			ID:      s.ID,
			Name:    s.Name,
			Rut:     s.Rut,
			Address: s.Address,
			Phone:   s.Phone,
			Email:   s.Email,
		})
	}
	return out, nil
}
