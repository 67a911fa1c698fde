package entity

import "time"

// Almacen representa una bodega o sucursal donde se almacena inventario.
type Almacen struct {
	ID        string
	Nombre    string
	Direccion string
	Ciudad    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
