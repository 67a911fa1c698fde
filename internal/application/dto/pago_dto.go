package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPagoRequest body para POST /api/pagos.
type CrearPagoRequest struct {
	VentaID        string          `json:"venta_id" validate:"required,uuid4"`
	Monto          decimal.Decimal `json:"monto" validate:"required"`
	MetodoPago     string          `json:"metodo_pago" validate:"required,oneof=efectivo transferencia tarjeta"`
	Referencia     string          `json:"referencia,omitempty" validate:"omitempty,max=50"`
	URLComprobante string          `json:"url_comprobante,omitempty" validate:"omitempty,max=255"`
}

// PagoResponse pago registrado.
type PagoResponse struct {
	ID             string          `json:"id"`
	VentaID        string          `json:"venta_id"`
	Monto          decimal.Decimal `json:"monto"`
	MetodoPago     string          `json:"metodo_pago"`
	Referencia     string          `json:"referencia,omitempty"`
	URLComprobante string          `json:"url_comprobante,omitempty"`
	UsuarioID      string          `json:"usuario_id,omitempty"`
	Fecha          time.Time       `json:"fecha"`
	// EstadoVenta es el estado de pago de la venta tras registrar este pago.
	EstadoVenta string `json:"estado_venta,omitempty"`
}

// PagoListResponse listado paginado de pagos.
type PagoListResponse struct {
	Items []PagoResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
