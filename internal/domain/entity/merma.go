package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Merma es una pérdida de material registrada contra un lote. Si se convierte
// a briquetas, acredita el inventario de la presentación derivada.
type Merma struct {
	ID                    string
	LoteID                string
	CantidadKg            decimal.Decimal
	ConvertidoABriquetas  bool
	UsuarioID             string
	FechaRegistro         time.Time
}
