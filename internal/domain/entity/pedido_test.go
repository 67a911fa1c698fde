package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// ── Máquina de estados del pedido ─────────────────────────────────────────────

func TestPedido_TransicionesValidas(t *testing.T) {
	casos := []struct {
		desde, hacia string
		ok           bool
	}{
		{entity.PedidoEstadoProgramado, entity.PedidoEstadoConfirmado, true},
		{entity.PedidoEstadoProgramado, entity.PedidoEstadoCancelado, true},
		{entity.PedidoEstadoProgramado, entity.PedidoEstadoEntregado, false},
		{entity.PedidoEstadoConfirmado, entity.PedidoEstadoEntregado, true},
		{entity.PedidoEstadoConfirmado, entity.PedidoEstadoCancelado, true},
		{entity.PedidoEstadoConfirmado, entity.PedidoEstadoProgramado, false},
		{entity.PedidoEstadoEntregado, entity.PedidoEstadoCancelado, false},
		{entity.PedidoEstadoCancelado, entity.PedidoEstadoConfirmado, false},
	}
	for _, c := range casos {
		p := &entity.Pedido{Estado: c.desde}
		assert.Equalf(t, c.ok, p.PuedeTransicionar(c.hacia),
			"transición %s → %s", c.desde, c.hacia)
	}
}

func TestPedido_EstadosTerminales(t *testing.T) {
	assert.False(t, (&entity.Pedido{Estado: entity.PedidoEstadoProgramado}).EsTerminal())
	assert.False(t, (&entity.Pedido{Estado: entity.PedidoEstadoConfirmado}).EsTerminal())
	assert.True(t, (&entity.Pedido{Estado: entity.PedidoEstadoEntregado}).EsTerminal())
	assert.True(t, (&entity.Pedido{Estado: entity.PedidoEstadoCancelado}).EsTerminal())
}

// Solo los pedidos confirmados se convierten en venta.
func TestPedido_PuedeConvertirse(t *testing.T) {
	assert.False(t, (&entity.Pedido{Estado: entity.PedidoEstadoProgramado}).PuedeConvertirse())
	assert.True(t, (&entity.Pedido{Estado: entity.PedidoEstadoConfirmado}).PuedeConvertirse())
	assert.False(t, (&entity.Pedido{Estado: entity.PedidoEstadoEntregado}).PuedeConvertirse())
	assert.False(t, (&entity.Pedido{Estado: entity.PedidoEstadoCancelado}).PuedeConvertirse())
}

// ── Totales ───────────────────────────────────────────────────────────────────

func TestPedido_TotalEstimado(t *testing.T) {
	p := &entity.Pedido{Detalles: []entity.PedidoDetalle{
		{Cantidad: 4, PrecioEstimado: decimal.RequireFromString("25.00")},
		{Cantidad: 2, PrecioEstimado: decimal.RequireFromString("80.00")},
	}}
	assert.True(t, p.TotalEstimado().Equal(decimal.RequireFromString("260.00")))
}

func TestVentaDetalle_TotalLinea(t *testing.T) {
	d := entity.VentaDetalle{Cantidad: 3, PrecioUnitario: decimal.RequireFromString("25.50")}
	assert.True(t, d.TotalLinea().Equal(decimal.RequireFromString("76.50")))
}
