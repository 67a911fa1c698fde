// Package venta contiene la lógica pura del estado de pago de una venta.
// El estado derivado se calcula siempre como función del snapshot
// (total, suma de pagos) y nunca se parchea incrementalmente.
package venta

import (
	"github.com/shopspring/decimal"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// Tolerancia para considerar una venta pagada (redondeos de decimales).
var Tolerancia = decimal.RequireFromString("0.001")

// CalcularEstadoPago devuelve el estado de pago derivado:
// pagado si |total - pagado| <= tolerancia, parcial si hay abonos, pendiente si no.
func CalcularEstadoPago(total, pagado decimal.Decimal) string {
	if total.Sub(pagado).Abs().LessThanOrEqual(Tolerancia) {
		return entity.EstadoPagoPagado
	}
	if pagado.GreaterThan(decimal.Zero) {
		return entity.EstadoPagoParcial
	}
	return entity.EstadoPagoPendiente
}

// SumarPagos suma los montos de una lista de pagos.
func SumarPagos(pagos []*entity.Pago) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pagos {
		total = total.Add(p.Monto)
	}
	return total
}

// SaldoPendiente devuelve total - pagado (puede ser negativo dentro de la tolerancia).
func SaldoPendiente(total, pagado decimal.Decimal) decimal.Decimal {
	return total.Sub(pagado)
}
