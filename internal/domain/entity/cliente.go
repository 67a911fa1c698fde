package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente con campos de proyección de recompra, actualizados como efecto
// secundario de la creación de ventas.
type Cliente struct {
	ID                    string
	Nombre                string
	Telefono              string
	Direccion             string
	ConsumoDiarioKg       *decimal.Decimal
	UltimaFechaCompra     *time.Time
	FrecuenciaCompraDias  *int // estimado: total de la venta / consumo diario
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
