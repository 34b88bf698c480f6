package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestorsur/bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stub Querier: registra cada sentencia en orden para verificar el protocolo
// de bloqueo sin una base de datos viva.
// ──────────────────────────────────────────────────────────────────────────────

type recordingQuerier struct {
	ops   []string
	level entity.StockLevel
}

func (q *recordingQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.ops = append(q.ops, sql)
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.ops = append(q.ops, sql)
	return nil, nil
}

func (q *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.ops = append(q.ops, sql)
	return stubRow{level: q.level}
}

type stubRow struct{ level entity.StockLevel }

func (r stubRow) Scan(dest ...any) error {
	*dest[0].(*string) = r.level.ProductID
	*dest[1].(*decimal.Decimal) = r.level.Quantity
	*dest[2].(*time.Time) = r.level.UpdatedAt
	return nil
}

// GetForUpdate debe sembrar la fila (INSERT ... ON CONFLICT DO NOTHING)
// ANTES del SELECT ... FOR UPDATE: sin fila no hay nada que bloquear, y dos
// transacciones concurrentes sobre un producto recién creado leerían ambas
// stock cero y una pisaría el incremento de la otra.
func TestStockRepoGetForUpdate_SiembraLaFilaAntesDeBloquear(t *testing.T) {
	q := &recordingQuerier{level: entity.StockLevel{
		ProductID: "p-1", Quantity: decimal.Zero, UpdatedAt: time.Now(),
	}}
	repo := NewStockRepository(q)

	level, err := repo.GetForUpdate("p-1")
	require.NoError(t, err)
	assert.Equal(t, "p-1", level.ProductID)
	assert.True(t, level.Quantity.IsZero())

	require.Len(t, q.ops, 2, "siembra + lectura bloqueante")
	assert.Contains(t, q.ops[0], "INSERT INTO stock_levels")
	assert.Contains(t, q.ops[0], "ON CONFLICT (product_id) DO NOTHING",
		"la siembra no debe pisar una fila existente")
	assert.Contains(t, q.ops[1], "FOR UPDATE",
		"la lectura debe tomar el bloqueo de fila")
	assert.True(t, strings.Contains(q.ops[0], "INSERT") && strings.Contains(q.ops[1], "SELECT"),
		"la siembra va antes de la lectura")
}

// Get (solo lectura) no debe sembrar filas ni bloquear.
func TestStockRepoGet_NoSiembraNiBloquea(t *testing.T) {
	q := &recordingQuerier{level: entity.StockLevel{
		ProductID: "p-1", Quantity: decimal.NewFromInt(7), UpdatedAt: time.Now(),
	}}
	repo := NewStockRepository(q)

	level, err := repo.Get("p-1")
	require.NoError(t, err)
	assert.True(t, level.Quantity.Equal(decimal.NewFromInt(7)))

	require.Len(t, q.ops, 1)
	assert.NotContains(t, q.ops[0], "FOR UPDATE")
	assert.NotContains(t, q.ops[0], "INSERT")
}
