package memory

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestorsur/bodega-api/internal/domain"
	"github.com/gestorsur/bodega-api/internal/domain/entity"
	"github.com/gestorsur/bodega-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────
// Productos
// ─────────────────────────────────────────────────────────────

var _ repository.ProductRepository = (*ProductRepo)(nil)

type ProductRepo struct{ s *Store }

func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		p := p
		all = append(all, &p)
	}
	slices.SortFunc(all, func(a, b *entity.Product) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return page(all, limit, offset), nil
}

// ─────────────────────────────────────────────────────────────
// Clientes y proveedores
// ─────────────────────────────────────────────────────────────

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

type CustomerRepo struct{ s *Store }

func NewCustomerRepository(s *Store) *CustomerRepo { return &CustomerRepo{s: s} }

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Rut == customer.Rut {
			return domain.ErrDuplicate
		}
	}
	r.s.customers[customer.ID] = *customer
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CustomerRepo) GetByRut(rut string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.Rut == rut {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		c := c
		all = append(all, &c)
	}
	slices.SortFunc(all, func(a, b *entity.Customer) int {
		return strings.Compare(a.Name, b.Name)
	})
	return page(all, limit, offset), nil
}

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

type SupplierRepo struct{ s *Store }

func NewSupplierRepository(s *Store) *SupplierRepo { return &SupplierRepo{s: s} }

func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, sp := range r.s.suppliers {
		if sp.Rut == supplier.Rut {
			return domain.ErrDuplicate
		}
	}
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

func (r *SupplierRepo) GetByRut(rut string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, sp := range r.s.suppliers {
		if sp.Rut == rut {
			return &sp, nil
		}
	}
	return nil, nil
}

func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sp := range r.s.suppliers {
		sp := sp
		all = append(all, &sp)
	}
	slices.SortFunc(all, func(a, b *entity.Supplier) int {
		return strings.Compare(a.Name, b.Name)
	})
	return page(all, limit, offset), nil
}

// ─────────────────────────────────────────────────────────────
// Entradas y salidas
// ─────────────────────────────────────────────────────────────

var _ repository.EntryRepository = (*EntryRepo)(nil)

type EntryRepo struct{ s *Store }

func NewEntryRepository(s *Store) *EntryRepo { return &EntryRepo{s: s} }

func (r *EntryRepo) Create(entry *entity.InventoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.entries[entry.ID] = *entry
	return nil
}

func (r *EntryRepo) CreateDetail(detail *entity.InventoryEntryDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.entryDetails[detail.EntryID] = append(r.s.entryDetails[detail.EntryID], *detail)
	return nil
}

func (r *EntryRepo) GetByID(id string) (*entity.InventoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.entries[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *EntryRepo) GetDetails(entryID string) ([]*entity.InventoryEntryDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	stored := r.s.entryDetails[entryID]
	details := make([]*entity.InventoryEntryDetail, 0, len(stored))
	for _, d := range stored {
		d := d
		details = append(details, &d)
	}
	slices.SortFunc(details, func(a, b *entity.InventoryEntryDetail) int {
		return a.LineNo - b.LineNo
	})
	return details, nil
}

func (r *EntryRepo) List(limit, offset int) ([]*entity.InventoryEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.InventoryEntry, 0, len(r.s.entries))
	for _, e := range r.s.entries {
		e := e
		all = append(all, &e)
	}
	slices.SortFunc(all, func(a, b *entity.InventoryEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return page(all, limit, offset), nil
}

func (r *EntryRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.entries, id)
	delete(r.s.entryDetails, id)
	return nil
}

var _ repository.ExitRepository = (*ExitRepo)(nil)

type ExitRepo struct{ s *Store }

func NewExitRepository(s *Store) *ExitRepo { return &ExitRepo{s: s} }

func (r *ExitRepo) Create(exit *entity.InventoryExit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.exits[exit.ID] = *exit
	return nil
}

func (r *ExitRepo) CreateDetail(detail *entity.InventoryExitDetail) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.exitDetails[detail.ExitID] = append(r.s.exitDetails[detail.ExitID], *detail)
	return nil
}

func (r *ExitRepo) GetByID(id string) (*entity.InventoryExit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.exits[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *ExitRepo) GetDetails(exitID string) ([]*entity.InventoryExitDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	stored := r.s.exitDetails[exitID]
	details := make([]*entity.InventoryExitDetail, 0, len(stored))
	for _, d := range stored {
		d := d
		details = append(details, &d)
	}
	slices.SortFunc(details, func(a, b *entity.InventoryExitDetail) int {
		return a.LineNo - b.LineNo
	})
	return details, nil
}

func (r *ExitRepo) List(limit, offset int) ([]*entity.InventoryExit, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.InventoryExit, 0, len(r.s.exits))
	for _, e := range r.s.exits {
		e := e
		all = append(all, &e)
	}
	slices.SortFunc(all, func(a, b *entity.InventoryExit) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return page(all, limit, offset), nil
}

func (r *ExitRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.exits, id)
	delete(r.s.exitDetails, id)
	return nil
}

// ─────────────────────────────────────────────────────────────
// Stock
// ─────────────────────────────────────────────────────────────

var _ repository.StockRepository = (*StockRepo)(nil)

type StockRepo struct{ s *Store }

func NewStockRepository(s *Store) *StockRepo { return &StockRepo{s: s} }

func (r *StockRepo) Get(productID string) (*entity.StockLevel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	lvl, ok := r.s.stock[productID]
	if !ok {
		return &entity.StockLevel{ProductID: productID, Quantity: decimal.Zero}, nil
	}
	return &lvl, nil
}

// GetForUpdate equivale a Get: el TxRunner de este paquete ya serializa las
// transacciones completas.
func (r *StockRepo) GetForUpdate(productID string) (*entity.StockLevel, error) {
	return r.Get(productID)
}

func (r *StockRepo) Upsert(level *entity.StockLevel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.stock[level.ProductID] = entity.StockLevel{
		ProductID: level.ProductID,
		Quantity:  level.Quantity,
		UpdatedAt: time.Now(),
	}
	return nil
}

func (r *StockRepo) List() ([]*entity.StockLevel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.StockLevel, 0, len(r.s.stock))
	for _, lvl := range r.s.stock {
		lvl := lvl
		all = append(all, &lvl)
	}
	slices.SortFunc(all, func(a, b *entity.StockLevel) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
	return all, nil
}

// ─────────────────────────────────────────────────────────────
// Usuarios
// ─────────────────────────────────────────────────────────────

var _ repository.UserRepository = (*UserRepo)(nil)

type UserRepo struct{ s *Store }

func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func page[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
