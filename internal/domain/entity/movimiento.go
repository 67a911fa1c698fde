package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoTipoEntrada = "entrada"
	MovimientoTipoSalida  = "salida"
)

// Movimiento es el registro inmutable de auditoría de un cambio de cantidad de
// inventario. Nunca se actualiza; una reversión se modela con un movimiento
// nuevo del tipo opuesto. VentaID es la correlación explícita con la venta que
// lo originó (en lugar de embeber el ID en el motivo).
type Movimiento struct {
	ID             string
	Tipo           string
	PresentacionID string
	AlmacenID      string
	LoteID         *string
	VentaID        *string
	Cantidad       decimal.Decimal // siempre > 0; el tipo indica el signo
	Motivo         string
	UsuarioID      string
	Fecha          time.Time
}
