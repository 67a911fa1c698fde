package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaDetalleRequest línea de una venta nueva. PrecioUnitario es opcional:
// si falta se usa el precio de venta vigente de la presentación.
type VentaDetalleRequest struct {
	PresentacionID string           `json:"presentacion_id" validate:"required,uuid4"`
	Cantidad       int              `json:"cantidad" validate:"required,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// CrearVentaRequest body para POST /api/ventas.
type CrearVentaRequest struct {
	ClienteID        string                `json:"cliente_id" validate:"required,uuid4"`
	AlmacenID        string                `json:"almacen_id" validate:"required,uuid4"`
	TipoPago         string                `json:"tipo_pago" validate:"required,oneof=contado credito"`
	FechaVencimiento *time.Time            `json:"fecha_vencimiento,omitempty"`
	ConsumoDiarioKg  *decimal.Decimal      `json:"consumo_diario_kg,omitempty"`
	Detalles         []VentaDetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

// VentaDetalleResponse línea de venta con precio congelado.
type VentaDetalleResponse struct {
	ID             string          `json:"id"`
	PresentacionID string          `json:"presentacion_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	TotalLinea     decimal.Decimal `json:"total_linea"`
}

// VentaResponse venta con detalles.
type VentaResponse struct {
	ID               string                 `json:"id"`
	ClienteID        string                 `json:"cliente_id"`
	AlmacenID        string                 `json:"almacen_id"`
	VendedorID       string                 `json:"vendedor_id"`
	Fecha            time.Time              `json:"fecha"`
	Total            decimal.Decimal        `json:"total"`
	TipoPago         string                 `json:"tipo_pago"`
	EstadoPago       string                 `json:"estado_pago"`
	FechaVencimiento *time.Time             `json:"fecha_vencimiento,omitempty"`
	Detalles         []VentaDetalleResponse `json:"detalles"`
}

// VentaListResponse listado paginado de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
