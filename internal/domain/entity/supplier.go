package entity

import "time"

// Supplier representa un proveedor (origen de entradas de inventario).
// Rut se guarda normalizado "NNNNNNNN-D" y es único.
type Supplier struct {
	ID        string
	Name      string
	Rut       string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
