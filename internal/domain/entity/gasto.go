package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto es un egreso operativo registrado manualmente.
type Gasto struct {
	ID          string
	Descripcion string
	Monto       decimal.Decimal
	Fecha       time.Time
	Categoria   string
	CreatedAt   time.Time
}
