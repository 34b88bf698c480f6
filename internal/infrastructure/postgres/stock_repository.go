package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock vigente de un producto. Sin fila registrada el stock es cero.
func (r *StockRepo) Get(productID string) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT ... FOR UPDATE)
// hasta el fin de la transacción. Antes de leer siembra la fila en cero si
// no existe: FOR UPDATE no bloquea nada cuando no hay fila, y dos
// escritores concurrentes del primer movimiento de un producto leerían
// ambos stock cero y el segundo pisaría el incremento del primero.
func (r *StockRepo) GetForUpdate(productID string) (*entity.StockLevel, error) {
	seed := `
		INSERT INTO stock_levels (product_id, quantity, updated_at)
		VALUES ($1, 0, now())
		ON CONFLICT (product_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, productID); err != nil {
		return nil, fmt.Errorf("seed stock row: %w", err)
	}
	query := `
		SELECT product_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad de stock del producto. La tabla
// lleva CHECK (quantity >= 0) como respaldo del invariante.
func (r *StockRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.ProductID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// List devuelve el stock vigente de todos los productos con fila registrada.
func (r *StockRepo) List() ([]*entity.StockLevel, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM stock_levels ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
