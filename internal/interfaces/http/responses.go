package http

import (
	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// Mapeadores entidad → DTO de respuesta. Los casos de uso devuelven entidades
// de dominio; la capa HTTP decide qué campos exponer.

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		CreatedAt:   p.CreatedAt,
	}
}

func toPresentacionResponse(p *entity.Presentacion) dto.PresentacionResponse {
	return dto.PresentacionResponse{
		ID:          p.ID,
		ProductoID:  p.ProductoID,
		Nombre:      p.Nombre,
		CapacidadKg: p.CapacidadKg,
		Tipo:        p.Tipo,
		PrecioVenta: p.PrecioVenta,
		Activo:      p.Activo,
		URLFoto:     p.URLFoto,
	}
}

func toAlmacenResponse(a *entity.Almacen) dto.AlmacenResponse {
	return dto.AlmacenResponse{
		ID:        a.ID,
		Nombre:    a.Nombre,
		Direccion: a.Direccion,
		Ciudad:    a.Ciudad,
	}
}

func toClienteResponse(cl *entity.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:                   cl.ID,
		Nombre:               cl.Nombre,
		Telefono:             cl.Telefono,
		Direccion:            cl.Direccion,
		ConsumoDiarioKg:      cl.ConsumoDiarioKg,
		UltimaFechaCompra:    cl.UltimaFechaCompra,
		FrecuenciaCompraDias: cl.FrecuenciaCompraDias,
		CreatedAt:            cl.CreatedAt,
	}
}

func toProveedorResponse(p *entity.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Telefono:  p.Telefono,
		Direccion: p.Direccion,
		CreatedAt: p.CreatedAt,
	}
}

func toLoteResponse(l *entity.Lote) dto.LoteResponse {
	return dto.LoteResponse{
		ID:                   l.ID,
		ProductoID:           l.ProductoID,
		AlmacenID:            l.AlmacenID,
		ProveedorID:          l.ProveedorID,
		PesoHumedoKg:         l.PesoHumedoKg,
		PesoSecoKg:           l.PesoSecoKg,
		CantidadDisponibleKg: l.CantidadDisponibleKg,
		FechaIngreso:         l.FechaIngreso,
	}
}

func toInventarioResponse(inv *entity.Inventario) dto.InventarioResponse {
	return dto.InventarioResponse{
		ID:                  inv.ID,
		PresentacionID:      inv.PresentacionID,
		AlmacenID:           inv.AlmacenID,
		LoteID:              inv.LoteID,
		Cantidad:            inv.Cantidad,
		StockMinimo:         inv.StockMinimo,
		UltimaActualizacion: inv.UltimaActualizacion,
	}
}

func toMovimientoResponse(m *entity.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:             m.ID,
		Tipo:           m.Tipo,
		PresentacionID: m.PresentacionID,
		AlmacenID:      m.AlmacenID,
		LoteID:         m.LoteID,
		VentaID:        m.VentaID,
		Cantidad:       m.Cantidad,
		Motivo:         m.Motivo,
		UsuarioID:      m.UsuarioID,
		Fecha:          m.Fecha,
	}
}

func toVentaResponse(v *entity.Venta) dto.VentaResponse {
	detalles := make([]dto.VentaDetalleResponse, 0, len(v.Detalles))
	for _, d := range v.Detalles {
		detalles = append(detalles, dto.VentaDetalleResponse{
			ID:             d.ID,
			PresentacionID: d.PresentacionID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			TotalLinea:     d.TotalLinea(),
		})
	}
	return dto.VentaResponse{
		ID:               v.ID,
		ClienteID:        v.ClienteID,
		AlmacenID:        v.AlmacenID,
		VendedorID:       v.VendedorID,
		Fecha:            v.Fecha,
		Total:            v.Total,
		TipoPago:         v.TipoPago,
		EstadoPago:       v.EstadoPago,
		FechaVencimiento: v.FechaVencimiento,
		Detalles:         detalles,
	}
}

func toPagoResponse(p *entity.Pago, estadoVenta string) dto.PagoResponse {
	return dto.PagoResponse{
		ID:             p.ID,
		VentaID:        p.VentaID,
		Monto:          p.Monto,
		MetodoPago:     p.MetodoPago,
		Referencia:     p.Referencia,
		URLComprobante: p.URLComprobante,
		UsuarioID:      p.UsuarioID,
		Fecha:          p.Fecha,
		EstadoVenta:    estadoVenta,
	}
}

func toPedidoResponse(p *entity.Pedido) dto.PedidoResponse {
	detalles := make([]dto.PedidoDetalleResponse, 0, len(p.Detalles))
	for _, d := range p.Detalles {
		detalles = append(detalles, dto.PedidoDetalleResponse{
			ID:             d.ID,
			PresentacionID: d.PresentacionID,
			Cantidad:       d.Cantidad,
			PrecioEstimado: d.PrecioEstimado,
		})
	}
	return dto.PedidoResponse{
		ID:            p.ID,
		ClienteID:     p.ClienteID,
		AlmacenID:     p.AlmacenID,
		VendedorID:    p.VendedorID,
		FechaEntrega:  p.FechaEntrega,
		Estado:        p.Estado,
		Notas:         p.Notas,
		FechaCreacion: p.FechaCreacion,
		TotalEstimado: p.TotalEstimado(),
		Detalles:      detalles,
	}
}

func toMermaResponse(m *entity.Merma) dto.MermaResponse {
	return dto.MermaResponse{
		ID:                   m.ID,
		LoteID:               m.LoteID,
		CantidadKg:           m.CantidadKg,
		ConvertidoABriquetas: m.ConvertidoABriquetas,
		UsuarioID:            m.UsuarioID,
		FechaRegistro:        m.FechaRegistro,
	}
}

func toGastoResponse(g *entity.Gasto) dto.GastoResponse {
	return dto.GastoResponse{
		ID:          g.ID,
		Descripcion: g.Descripcion,
		Monto:       g.Monto,
		Fecha:       g.Fecha,
		Categoria:   g.Categoria,
	}
}

// pageFrom arma los metadatos de página para un listado.
func pageFrom(limit, offset, count int) dto.PageResponse {
	return dto.PageResponse{Limit: limit, Offset: offset, Total: count}
}

// parsePage lee limit/offset de la query con límites sanos.
func parsePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
