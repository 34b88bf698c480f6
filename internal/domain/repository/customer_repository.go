package repository

import "github.com/gestorsur/bodega-api/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByRut(rut string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
