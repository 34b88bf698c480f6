package repository

import "github.com/gestorsur/bodega-api/internal/domain/entity"

// EntryRepository puerto de persistencia de entradas de inventario
// (cabecera + detalle). Delete elimina cabecera y detalles; la reversa del
// stock NO es responsabilidad del repositorio, la ejecuta el caso de uso
// dentro de la misma transacción.
type EntryRepository interface {
	Create(entry *entity.InventoryEntry) error
	CreateDetail(detail *entity.InventoryEntryDetail) error
	GetByID(id string) (*entity.InventoryEntry, error)
	GetDetails(entryID string) ([]*entity.InventoryEntryDetail, error)
	List(limit, offset int) ([]*entity.InventoryEntry, error)
	Delete(id string) error
}
