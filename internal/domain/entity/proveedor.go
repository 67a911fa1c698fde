package entity

import "time"

// Proveedor abastece lotes de carbón al acopio. El nombre es único.
type Proveedor struct {
	ID        string
	Nombre    string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
