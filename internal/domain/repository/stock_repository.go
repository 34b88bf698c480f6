package repository

import "github.com/gestorsur/bodega-api/internal/domain/entity"

// StockRepository puerto de persistencia del stock materializado por
// producto. GetForUpdate bloquea la fila del producto hasta el fin de la
// transacción; es lo que serializa chequeo y descuento entre escritores
// concurrentes del mismo producto.
type StockRepository interface {
	Get(productID string) (*entity.StockLevel, error)
	GetForUpdate(productID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	List() ([]*entity.StockLevel, error)
}
