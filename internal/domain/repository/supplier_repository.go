package repository

import "github.com/gestorsur/bodega-api/internal/domain/entity"

// SupplierRepository puerto de persistencia de proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	GetByRut(rut string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
