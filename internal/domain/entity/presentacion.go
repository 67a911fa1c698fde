package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de presentación según el procesamiento del producto.
const (
	PresentacionTipoBruto     = "bruto"
	PresentacionTipoProcesado = "procesado"
	PresentacionTipoMerma     = "merma"
	PresentacionTipoBriqueta  = "briqueta" // producto derivado de mermas convertidas
	PresentacionTipoDetalle   = "detalle"
)

// Presentacion es un empaque vendible de un producto (ej. "Bolsa 5kg").
type Presentacion struct {
	ID          string
	ProductoID  string
	Nombre      string
	CapacidadKg decimal.Decimal // peso neto del empaque
	Tipo        string
	PrecioVenta decimal.Decimal
	Activo      bool
	URLFoto     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
