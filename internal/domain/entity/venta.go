package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago de una venta.
const (
	TipoPagoContado = "contado"
	TipoPagoCredito = "credito"
)

// Estados de pago de una venta, derivados de sus pagos.
const (
	EstadoPagoPendiente = "pendiente"
	EstadoPagoParcial   = "parcial"
	EstadoPagoPagado    = "pagado"
)

// Venta con sus líneas. Total siempre es la suma de los totales de línea.
type Venta struct {
	ID               string
	ClienteID        string
	AlmacenID        string
	VendedorID       string
	Fecha            time.Time
	Total            decimal.Decimal
	TipoPago         string
	EstadoPago       string
	FechaVencimiento *time.Time // solo ventas a crédito
	Detalles         []VentaDetalle
}

// VentaDetalle es una línea de venta con el precio congelado al momento de la venta.
type VentaDetalle struct {
	ID             string
	VentaID        string
	PresentacionID string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// TotalLinea devuelve cantidad * precio unitario.
func (d VentaDetalle) TotalLinea() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Cantidad)).Mul(d.PrecioUnitario)
}
