package entity

import "time"

// Customer representa un cliente (destinatario de salidas de inventario).
// Rut se guarda normalizado "NNNNNNNN-D" y es único.
type Customer struct {
	ID        string
	Name      string
	Rut       string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
