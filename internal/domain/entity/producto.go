package entity

import "time"

// Producto representa un producto a granel (ej. carbón vegetal) del cual se
// derivan presentaciones vendibles.
type Producto struct {
	ID          string
	Nombre      string
	Descripcion string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
