package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Productos ─────────────────────────────────────────────────────────────────

// CrearProductoRequest body para POST /api/productos.
type CrearProductoRequest struct {
	Nombre      string `json:"nombre" validate:"required,max=255"`
	Descripcion string `json:"descripcion,omitempty"`
}

// ActualizarProductoRequest body para PUT /api/productos/:id.
type ActualizarProductoRequest struct {
	Nombre      *string `json:"nombre,omitempty" validate:"omitempty,max=255"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// ProductoResponse producto a granel.
type ProductoResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductoListResponse listado paginado de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ── Presentaciones ────────────────────────────────────────────────────────────

// CrearPresentacionRequest body para POST /api/presentaciones.
type CrearPresentacionRequest struct {
	ProductoID  string          `json:"producto_id" validate:"required,uuid4"`
	Nombre      string          `json:"nombre" validate:"required,max=100"`
	CapacidadKg decimal.Decimal `json:"capacidad_kg" validate:"required"`
	Tipo        string          `json:"tipo" validate:"required,oneof=bruto procesado merma briqueta detalle"`
	PrecioVenta decimal.Decimal `json:"precio_venta" validate:"required"`
	Activo      *bool           `json:"activo,omitempty"`
	URLFoto     string          `json:"url_foto,omitempty" validate:"omitempty,max=255"`
}

// ActualizarPresentacionRequest body para PUT /api/presentaciones/:id.
type ActualizarPresentacionRequest struct {
	Nombre      *string          `json:"nombre,omitempty" validate:"omitempty,max=100"`
	CapacidadKg *decimal.Decimal `json:"capacidad_kg,omitempty"`
	Tipo        *string          `json:"tipo,omitempty" validate:"omitempty,oneof=bruto procesado merma briqueta detalle"`
	PrecioVenta *decimal.Decimal `json:"precio_venta,omitempty"`
	Activo      *bool            `json:"activo,omitempty"`
	URLFoto     *string          `json:"url_foto,omitempty" validate:"omitempty,max=255"`
}

// PresentacionResponse presentación vendible.
type PresentacionResponse struct {
	ID          string          `json:"id"`
	ProductoID  string          `json:"producto_id"`
	Nombre      string          `json:"nombre"`
	CapacidadKg decimal.Decimal `json:"capacidad_kg"`
	Tipo        string          `json:"tipo"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Activo      bool            `json:"activo"`
	URLFoto     string          `json:"url_foto,omitempty"`
}

// PresentacionListResponse listado paginado de presentaciones.
type PresentacionListResponse struct {
	Items []PresentacionResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}

// ── Almacenes ─────────────────────────────────────────────────────────────────

// CrearAlmacenRequest body para POST /api/almacenes.
type CrearAlmacenRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=255"`
	Direccion string `json:"direccion,omitempty"`
	Ciudad    string `json:"ciudad,omitempty" validate:"omitempty,max=100"`
}

// ActualizarAlmacenRequest body para PUT /api/almacenes/:id.
type ActualizarAlmacenRequest struct {
	Nombre    *string `json:"nombre,omitempty" validate:"omitempty,max=255"`
	Direccion *string `json:"direccion,omitempty"`
	Ciudad    *string `json:"ciudad,omitempty" validate:"omitempty,max=100"`
}

// AlmacenResponse bodega.
type AlmacenResponse struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion,omitempty"`
	Ciudad    string `json:"ciudad,omitempty"`
}

// AlmacenListResponse listado paginado de almacenes.
type AlmacenListResponse struct {
	Items []AlmacenResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
