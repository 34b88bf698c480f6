package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

var _ repository.ExitRepository = (*ExitRepo)(nil)

// ExitRepo implementación de ExitRepository sobre PostgreSQL (usable con
// pool o tx).
type ExitRepo struct {
	q Querier
}

// NewExitRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewExitRepository(q Querier) *ExitRepo {
	return &ExitRepo{q: q}
}

// Create persiste la cabecera de una salida.
func (r *ExitRepo) Create(exit *entity.InventoryExit) error {
	query := `
		INSERT INTO inventory_exits (id, customer_id, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, exit.ID, exit.CustomerID, exit.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de salida.
func (r *ExitRepo) CreateDetail(detail *entity.InventoryExitDetail) error {
	query := `
		INSERT INTO inventory_exit_details (id, exit_id, line_no, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.ExitID, detail.LineNo, detail.ProductID,
		detail.Quantity, detail.UnitPrice, detail.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert exit detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una salida.
func (r *ExitRepo) GetByID(id string) (*entity.InventoryExit, error) {
	query := `
		SELECT id, customer_id, created_at
		FROM inventory_exits WHERE id = $1`
	var e entity.InventoryExit
	err := r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.CustomerID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exit: %w", err)
	}
	return &e, nil
}

// GetDetails obtiene las líneas de una salida en orden.
func (r *ExitRepo) GetDetails(exitID string) ([]*entity.InventoryExitDetail, error) {
	query := `
		SELECT id, exit_id, line_no, product_id, quantity, unit_price, total_price
		FROM inventory_exit_details WHERE exit_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, exitID)
	if err != nil {
		return nil, fmt.Errorf("get exit details: %w", err)
	}
	defer rows.Close()
	var details []*entity.InventoryExitDetail
	for rows.Next() {
		var d entity.InventoryExitDetail
		if err := rows.Scan(&d.ID, &d.ExitID, &d.LineNo, &d.ProductID,
			&d.Quantity, &d.UnitPrice, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan exit detail: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

// List lista cabeceras de salidas, más recientes primero.
func (r *ExitRepo) List(limit, offset int) ([]*entity.InventoryExit, error) {
	query := `
		SELECT id, customer_id, created_at
		FROM inventory_exits ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryExit
	for rows.Next() {
		var e entity.InventoryExit
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exit: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina la cabecera; los detalles caen por ON DELETE CASCADE.
func (r *ExitRepo) Delete(id string) error {
	query := `DELETE FROM inventory_exits WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete exit: %w", err)
	}
	return nil
}
