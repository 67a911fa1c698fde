package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido. Entregado y cancelado son terminales.
const (
	PedidoEstadoProgramado = "programado"
	PedidoEstadoConfirmado = "confirmado"
	PedidoEstadoEntregado  = "entregado"
	PedidoEstadoCancelado  = "cancelado"
)

// Pedido es un compromiso de venta previo a su ejecución.
type Pedido struct {
	ID            string
	ClienteID     string
	AlmacenID     string
	VendedorID    string
	FechaEntrega  time.Time
	Estado        string
	Notas         string
	FechaCreacion time.Time
	Detalles      []PedidoDetalle
}

// PedidoDetalle es una línea de pedido con precio estimado.
type PedidoDetalle struct {
	ID             string
	PedidoID       string
	PresentacionID string
	Cantidad       int
	PrecioEstimado decimal.Decimal
}

// TotalEstimado suma cantidad * precio estimado de todas las líneas.
func (p *Pedido) TotalEstimado() decimal.Decimal {
	total := decimal.Zero
	for _, d := range p.Detalles {
		total = total.Add(decimal.NewFromInt(int64(d.Cantidad)).Mul(d.PrecioEstimado))
	}
	return total
}

// EsTerminal indica si el estado no admite más transiciones.
func (p *Pedido) EsTerminal() bool {
	return p.Estado == PedidoEstadoEntregado || p.Estado == PedidoEstadoCancelado
}

// PuedeTransicionar valida la máquina de estados del pedido.
func (p *Pedido) PuedeTransicionar(nuevo string) bool {
	if p.EsTerminal() {
		return false
	}
	switch p.Estado {
	case PedidoEstadoProgramado:
		return nuevo == PedidoEstadoConfirmado || nuevo == PedidoEstadoCancelado
	case PedidoEstadoConfirmado:
		return nuevo == PedidoEstadoEntregado || nuevo == PedidoEstadoCancelado
	}
	return false
}

// PuedeConvertirse indica si el pedido puede convertirse en venta.
// Solo los pedidos confirmados se convierten.
func (p *Pedido) PuedeConvertirse() bool {
	return p.Estado == PedidoEstadoConfirmado
}
