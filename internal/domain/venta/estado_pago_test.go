package venta_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/venta"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── CalcularEstadoPago ────────────────────────────────────────────────────────

func TestCalcularEstadoPago_SinPagos(t *testing.T) {
	estado := venta.CalcularEstadoPago(d("100.00"), decimal.Zero)
	assert.Equal(t, entity.EstadoPagoPendiente, estado)
}

func TestCalcularEstadoPago_AbonoParcial(t *testing.T) {
	estado := venta.CalcularEstadoPago(d("100.00"), d("40.00"))
	assert.Equal(t, entity.EstadoPagoParcial, estado)
}

func TestCalcularEstadoPago_PagoExacto(t *testing.T) {
	estado := venta.CalcularEstadoPago(d("100.00"), d("100.00"))
	assert.Equal(t, entity.EstadoPagoPagado, estado)
}

// Dentro de la tolerancia de redondeo cuenta como pagado.
func TestCalcularEstadoPago_DentroDeTolerancia(t *testing.T) {
	assert.Equal(t, entity.EstadoPagoPagado, venta.CalcularEstadoPago(d("100.00"), d("99.9995")))
	assert.Equal(t, entity.EstadoPagoPagado, venta.CalcularEstadoPago(d("100.00"), d("100.0005")))
}

// Justo fuera de la tolerancia sigue siendo parcial.
func TestCalcularEstadoPago_FueraDeTolerancia(t *testing.T) {
	estado := venta.CalcularEstadoPago(d("100.00"), d("99.99"))
	assert.Equal(t, entity.EstadoPagoParcial, estado)
}

// ── SumarPagos / SaldoPendiente ───────────────────────────────────────────────

func TestSumarPagos(t *testing.T) {
	pagos := []*entity.Pago{
		{Monto: d("10.50")},
		{Monto: d("20.00")},
		{Monto: d("0.25")},
	}
	assert.True(t, venta.SumarPagos(pagos).Equal(d("30.75")))
}

func TestSumarPagos_ListaVacia(t *testing.T) {
	assert.True(t, venta.SumarPagos(nil).IsZero())
}

func TestSaldoPendiente(t *testing.T) {
	assert.True(t, venta.SaldoPendiente(d("100.00"), d("40.00")).Equal(d("60.00")))
	assert.True(t, venta.SaldoPendiente(d("100.00"), d("100.00")).IsZero())
}
