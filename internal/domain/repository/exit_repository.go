package repository

import "github.com/gestorsur/bodega-api/internal/domain/entity"

// ExitRepository puerto de persistencia de salidas de inventario
// (cabecera + detalle).
type ExitRepository interface {
	Create(exit *entity.InventoryExit) error
	CreateDetail(detail *entity.InventoryExitDetail) error
	GetByID(id string) (*entity.InventoryExit, error)
	GetDetails(exitID string) ([]*entity.InventoryExitDetail, error)
	List(limit, offset int) ([]*entity.InventoryExit, error)
	Delete(id string) error
}
