package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearClienteRequest body para POST /api/clientes.
type CrearClienteRequest struct {
	Nombre          string           `json:"nombre" validate:"required,max=255"`
	Telefono        string           `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Direccion       string           `json:"direccion,omitempty"`
	ConsumoDiarioKg *decimal.Decimal `json:"consumo_diario_kg,omitempty"`
}

// ActualizarClienteRequest body para PUT /api/clientes/:id.
type ActualizarClienteRequest struct {
	Nombre          *string          `json:"nombre,omitempty" validate:"omitempty,max=255"`
	Telefono        *string          `json:"telefono,omitempty" validate:"omitempty,max=20"`
	Direccion       *string          `json:"direccion,omitempty"`
	ConsumoDiarioKg *decimal.Decimal `json:"consumo_diario_kg,omitempty"`
}

// ClienteResponse cliente con campos de proyección de recompra.
type ClienteResponse struct {
	ID                   string           `json:"id"`
	Nombre               string           `json:"nombre"`
	Telefono             string           `json:"telefono,omitempty"`
	Direccion            string           `json:"direccion,omitempty"`
	ConsumoDiarioKg      *decimal.Decimal `json:"consumo_diario_kg,omitempty"`
	UltimaFechaCompra    *time.Time       `json:"ultima_fecha_compra,omitempty"`
	FrecuenciaCompraDias *int             `json:"frecuencia_compra_dias,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
}

// ClienteListResponse listado paginado de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
