package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	MetodoPagoEfectivo      = "efectivo"
	MetodoPagoTransferencia = "transferencia"
	MetodoPagoTarjeta       = "tarjeta"
)

// Pago es un abono contra una venta. La suma de pagos de una venta nunca
// excede su total.
type Pago struct {
	ID             string
	VentaID        string
	Monto          decimal.Decimal
	MetodoPago     string
	Referencia     string
	URLComprobante string
	UsuarioID      string
	Fecha          time.Time
}
