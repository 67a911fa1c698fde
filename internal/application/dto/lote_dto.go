package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearLoteRequest body para POST /api/lotes. Si CantidadDisponibleKg falta,
// se inicializa con el peso húmedo.
type CrearLoteRequest struct {
	ProductoID           string           `json:"producto_id" validate:"required,uuid4"`
	AlmacenID            string           `json:"almacen_id" validate:"required,uuid4"`
	ProveedorID          *string          `json:"proveedor_id,omitempty" validate:"omitempty,uuid4"`
	PesoHumedoKg         decimal.Decimal  `json:"peso_humedo_kg" validate:"required"`
	PesoSecoKg           *decimal.Decimal `json:"peso_seco_kg,omitempty"`
	CantidadDisponibleKg *decimal.Decimal `json:"cantidad_disponible_kg,omitempty"`
}

// ActualizarLoteRequest body para PUT /api/lotes/:id (ediciones correctivas).
type ActualizarLoteRequest struct {
	ProveedorID          *string          `json:"proveedor_id,omitempty" validate:"omitempty,uuid4"`
	PesoHumedoKg         *decimal.Decimal `json:"peso_humedo_kg,omitempty"`
	PesoSecoKg           *decimal.Decimal `json:"peso_seco_kg,omitempty"`
	CantidadDisponibleKg *decimal.Decimal `json:"cantidad_disponible_kg,omitempty"`
}

// LoteResponse lote de compra.
type LoteResponse struct {
	ID                   string           `json:"id"`
	ProductoID           string           `json:"producto_id"`
	AlmacenID            string           `json:"almacen_id"`
	ProveedorID          *string          `json:"proveedor_id,omitempty"`
	PesoHumedoKg         decimal.Decimal  `json:"peso_humedo_kg"`
	PesoSecoKg           *decimal.Decimal `json:"peso_seco_kg,omitempty"`
	CantidadDisponibleKg decimal.Decimal  `json:"cantidad_disponible_kg"`
	FechaIngreso         time.Time        `json:"fecha_ingreso"`
}

// LoteListResponse listado paginado de lotes.
type LoteListResponse struct {
	Items []LoteResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
