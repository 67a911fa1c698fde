package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PedidoDetalleRequest línea de un pedido nuevo.
type PedidoDetalleRequest struct {
	PresentacionID string           `json:"presentacion_id" validate:"required,uuid4"`
	Cantidad       int              `json:"cantidad" validate:"required,gt=0"`
	PrecioEstimado *decimal.Decimal `json:"precio_estimado,omitempty"`
}

// CrearPedidoRequest body para POST /api/pedidos.
type CrearPedidoRequest struct {
	ClienteID    string                 `json:"cliente_id" validate:"required,uuid4"`
	AlmacenID    string                 `json:"almacen_id" validate:"required,uuid4"`
	FechaEntrega time.Time              `json:"fecha_entrega" validate:"required"`
	Notas        string                 `json:"notas,omitempty"`
	Detalles     []PedidoDetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

// ActualizarPedidoRequest body para PUT /api/pedidos/:id.
type ActualizarPedidoRequest struct {
	FechaEntrega *time.Time `json:"fecha_entrega,omitempty"`
	Estado       *string    `json:"estado,omitempty" validate:"omitempty,oneof=programado confirmado entregado cancelado"`
	Notas        *string    `json:"notas,omitempty"`
}

// ConvertirPedidoRequest body para POST /api/pedidos/:id/convertir.
// UsarPrecioActual decide si la venta toma el precio vigente de cada
// presentación en lugar del precio estimado del pedido.
type ConvertirPedidoRequest struct {
	UsarPrecioActual bool   `json:"usar_precio_actual,omitempty"`
	TipoPago         string `json:"tipo_pago,omitempty" validate:"omitempty,oneof=contado credito"`
}

// PedidoDetalleResponse línea de pedido.
type PedidoDetalleResponse struct {
	ID             string          `json:"id"`
	PresentacionID string          `json:"presentacion_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioEstimado decimal.Decimal `json:"precio_estimado"`
}

// PedidoResponse pedido con detalles y total estimado.
type PedidoResponse struct {
	ID            string                  `json:"id"`
	ClienteID     string                  `json:"cliente_id"`
	AlmacenID     string                  `json:"almacen_id"`
	VendedorID    string                  `json:"vendedor_id,omitempty"`
	FechaEntrega  time.Time               `json:"fecha_entrega"`
	Estado        string                  `json:"estado"`
	Notas         string                  `json:"notas,omitempty"`
	FechaCreacion time.Time               `json:"fecha_creacion"`
	TotalEstimado decimal.Decimal         `json:"total_estimado"`
	Detalles      []PedidoDetalleResponse `json:"detalles"`
}

// PedidoListResponse listado paginado de pedidos.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// FaltanteStock reporta una línea de pedido sin stock suficiente.
type FaltanteStock struct {
	PresentacionID string `json:"presentacion_id"`
	Solicitado     int    `json:"solicitado"`
	Disponible     int    `json:"disponible"`
}

// VerificarStockResponse reporte de disponibilidad previo a la conversión.
type VerificarStockResponse struct {
	PedidoID    string          `json:"pedido_id"`
	Convertible bool            `json:"convertible"`
	Faltantes   []FaltanteStock `json:"faltantes"`
}
