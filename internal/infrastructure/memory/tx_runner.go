package memory

import (
	"context"
	"sync"

	"github.com/gestorsur/bodega-api/internal/application/inventory"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner emula transacciones sobre el Store: serializa los scopes con un
// mutex (equivalente grueso del bloqueo de fila) y, si el callback falla,
// restaura un snapshot tomado al inicio. Solo para tests y desarrollo local.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos atados al almacén. Las transacciones corren de a
// una; un error de fn deja el almacén exactamente como estaba.
func (r *TxRunner) Run(ctx context.Context, fn func(
	entryRepo repository.EntryRepository,
	exitRepo repository.ExitRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	snap := r.store.takeSnapshot()
	r.store.mu.Unlock()

	err := fn(
		NewEntryRepository(r.store),
		NewExitRepository(r.store),
		NewStockRepository(r.store),
		NewProductRepository(r.store),
	)
	if err != nil {
		r.store.mu.Lock()
		r.store.restore(snap)
		r.store.mu.Unlock()
		return err
	}
	return nil
}
