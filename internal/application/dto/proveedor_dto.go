package dto

import "time"

// CrearProveedorRequest body para POST /api/proveedores.
type CrearProveedorRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=255"`
	Telefono  string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Direccion string `json:"direccion,omitempty"`
}

// ActualizarProveedorRequest body para PUT /api/proveedores/:id.
type ActualizarProveedorRequest struct {
	Nombre    *string `json:"nombre,omitempty" validate:"omitempty,max=255"`
	Telefono  *string `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Direccion *string `json:"direccion,omitempty"`
}

// ProveedorResponse proveedor de lotes.
type ProveedorResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProveedorListResponse listado paginado de proveedores.
type ProveedorListResponse struct {
	Items []ProveedorResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
