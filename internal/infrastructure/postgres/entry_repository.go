package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

var _ repository.EntryRepository = (*EntryRepo)(nil)

// EntryRepo implementación de EntryRepository sobre PostgreSQL (usable con
// pool o tx). Las escrituras siempre llegan aquí dentro de una transacción
// vía TxRunner.
type EntryRepo struct {
	q Querier
}

// NewEntryRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewEntryRepository(q Querier) *EntryRepo {
	return &EntryRepo{q: q}
}

// Create persiste la cabecera de una entrada.
func (r *EntryRepo) Create(entry *entity.InventoryEntry) error {
	query := `
		INSERT INTO inventory_entries (id, supplier_id, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, entry.ID, entry.SupplierID, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de entrada.
func (r *EntryRepo) CreateDetail(detail *entity.InventoryEntryDetail) error {
	query := `
		INSERT INTO inventory_entry_details (id, entry_id, line_no, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.EntryID, detail.LineNo, detail.ProductID,
		detail.Quantity, detail.UnitPrice, detail.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert entry detail: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una entrada.
func (r *EntryRepo) GetByID(id string) (*entity.InventoryEntry, error) {
	query := `
		SELECT id, supplier_id, created_at
		FROM inventory_entries WHERE id = $1`
	var e entity.InventoryEntry
	err := r.q.QueryRow(context.Background(), query, id).Scan(&e.ID, &e.SupplierID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return &e, nil
}

// GetDetails obtiene las líneas de una entrada en orden.
func (r *EntryRepo) GetDetails(entryID string) ([]*entity.InventoryEntryDetail, error) {
	query := `
		SELECT id, entry_id, line_no, product_id, quantity, unit_price, total_price
		FROM inventory_entry_details WHERE entry_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry details: %w", err)
	}
	defer rows.Close()
	var details []*entity.InventoryEntryDetail
	for rows.Next() {
		var d entity.InventoryEntryDetail
		if err := rows.Scan(&d.ID, &d.EntryID, &d.LineNo, &d.ProductID,
			&d.Quantity, &d.UnitPrice, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan entry detail: %w", err)
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

// List lista cabeceras de entradas, más recientes primero.
func (r *EntryRepo) List(limit, offset int) ([]*entity.InventoryEntry, error) {
	query := `
		SELECT id, supplier_id, created_at
		FROM inventory_entries ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryEntry
	for rows.Next() {
		var e entity.InventoryEntry
		if err := rows.Scan(&e.ID, &e.SupplierID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina la cabecera; los detalles caen por ON DELETE CASCADE.
func (r *EntryRepo) Delete(id string) error {
	query := `DELETE FROM inventory_entries WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
