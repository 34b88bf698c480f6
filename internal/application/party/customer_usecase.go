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

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. El RUT se valida (dígito verificador módulo 11)
// y se guarda normalizado; RUT y email son únicos.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
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
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Rut:       normalizedRut,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return &dto.PartyResponse{
		ID:      customer.ID,
		Name:    customer.Name,
		Rut:     customer.Rut,
		Address: customer.Address,
		Phone:   customer.Phone,
		Email:   customer.Email,
	}, nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.PartyResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	customers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PartyResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, &dto.PartyResponse{
			ID:      c.ID,
			Name:    c.Name,
			Rut:     c.Rut,
			Address: c.Address,
			Phone:   c.Phone,
			Email:   c.Email,
		})
	}
	return out, nil
}
