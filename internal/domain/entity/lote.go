package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lote es un batch de compra de producto a granel con peso disponible agotable.
// CantidadDisponibleKg nunca es negativa y solo aumenta por ediciones correctivas.
type Lote struct {
	ID                   string
	ProductoID           string
	AlmacenID            string
	ProveedorID          *string
	PesoHumedoKg         decimal.Decimal
	PesoSecoKg           *decimal.Decimal
	CantidadDisponibleKg decimal.Decimal
	FechaIngreso         time.Time
	UpdatedAt            time.Time
}
