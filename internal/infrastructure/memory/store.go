package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/gestorsur/bodega-api/internal/domain/entity"
)

// Store guarda todo el estado en mapas protegidos por mutex. Pensado para
// tests y desarrollo local sin PostgreSQL; las entidades se guardan por
// valor para que los snapshots del TxRunner sean copias reales.
type Store struct {
	mu sync.RWMutex

	products     map[string]entity.Product
	customers    map[string]entity.Customer
	suppliers    map[string]entity.Supplier
	entries      map[string]entity.InventoryEntry
	entryDetails map[string][]entity.InventoryEntryDetail
	exits        map[string]entity.InventoryExit
	exitDetails  map[string][]entity.InventoryExitDetail
	stock        map[string]entity.StockLevel
	users        map[string]entity.User
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:     make(map[string]entity.Product),
		customers:    make(map[string]entity.Customer),
		suppliers:    make(map[string]entity.Supplier),
		entries:      make(map[string]entity.InventoryEntry),
		entryDetails: make(map[string][]entity.InventoryEntryDetail),
		exits:        make(map[string]entity.InventoryExit),
		exitDetails:  make(map[string][]entity.InventoryExitDetail),
		stock:        make(map[string]entity.StockLevel),
		users:        make(map[string]entity.User),
	}
}

// snapshot copia el estado completo. Se llama con s.mu tomado.
type snapshot struct {
	products     map[string]entity.Product
	customers    map[string]entity.Customer
	suppliers    map[string]entity.Supplier
	entries      map[string]entity.InventoryEntry
	entryDetails map[string][]entity.InventoryEntryDetail
	exits        map[string]entity.InventoryExit
	exitDetails  map[string][]entity.InventoryExitDetail
	stock        map[string]entity.StockLevel
	users        map[string]entity.User
}

func (s *Store) takeSnapshot() snapshot {
	return snapshot{
		products:     maps.Clone(s.products),
		customers:    maps.Clone(s.customers),
		suppliers:    maps.Clone(s.suppliers),
		entries:      maps.Clone(s.entries),
		entryDetails: cloneDetailMap(s.entryDetails),
		exits:        maps.Clone(s.exits),
		exitDetails:  cloneDetailMap(s.exitDetails),
		stock:        maps.Clone(s.stock),
		users:        maps.Clone(s.users),
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.customers = snap.customers
	s.suppliers = snap.suppliers
	s.entries = snap.entries
	s.entryDetails = snap.entryDetails
	s.exits = snap.exits
	s.exitDetails = snap.exitDetails
	s.stock = snap.stock
	s.users = snap.users
}

func cloneDetailMap[D any](src map[string][]D) map[string][]D {
	dst := make(map[string][]D, len(src))
	for k, v := range src {
		dst[k] = slices.Clone(v)
	}
	return dst
}
