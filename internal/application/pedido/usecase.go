// Package pedido implementa los compromisos de venta: creación, máquina de
// estados, verificación de disponibilidad y conversión atómica a venta.
package pedido

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/ports"
	"github.com/jdvaldes/acopio-api/internal/application/venta"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// UseCase administra pedidos y su conversión a ventas.
type UseCase struct {
	txRunner         ports.TxRunner
	pedidoRepo       repository.PedidoRepository
	clienteRepo      repository.ClienteRepository
	almacenRepo      repository.AlmacenRepository
	presentacionRepo repository.PresentacionRepository
	inventarioRepo   repository.InventarioRepository
	ventaUC          *venta.UseCase
}

// NewUseCase construye el caso de uso. La conversión delega la creación de la
// venta al orquestador de ventas dentro de la misma transacción.
func NewUseCase(
	txRunner ports.TxRunner,
	pedidoRepo repository.PedidoRepository,
	clienteRepo repository.ClienteRepository,
	almacenRepo repository.AlmacenRepository,
	presentacionRepo repository.PresentacionRepository,
	inventarioRepo repository.InventarioRepository,
	ventaUC *venta.UseCase,
) *UseCase {
	return &UseCase{
		txRunner:         txRunner,
		pedidoRepo:       pedidoRepo,
		clienteRepo:      clienteRepo,
		almacenRepo:      almacenRepo,
		presentacionRepo: presentacionRepo,
		inventarioRepo:   inventarioRepo,
		ventaUC:          ventaUC,
	}
}

// Crear registra un pedido en estado programado. Un pedido no compromete
// stock: la disponibilidad se verifica al convertirlo.
func (uc *UseCase) Crear(ctx context.Context, vendedorID string, in dto.CrearPedidoRequest) (*entity.Pedido, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("cliente %s: %w", in.ClienteID, domain.ErrNotFound)
	}
	almacen, err := uc.almacenRepo.GetByID(in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("almacén %s: %w", in.AlmacenID, domain.ErrNotFound)
	}

	pedidoID := uuid.New().String()
	detalles := make([]entity.PedidoDetalle, 0, len(in.Detalles))
	for _, d := range in.Detalles {
		if d.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		pres, err := uc.presentacionRepo.GetByID(d.PresentacionID)
		if err != nil {
			return nil, err
		}
		if pres == nil || !pres.Activo {
			return nil, fmt.Errorf("presentación %s no válida o inactiva: %w", d.PresentacionID, domain.ErrInvalidInput)
		}
		precio := pres.PrecioVenta
		if d.PrecioEstimado != nil {
			precio = *d.PrecioEstimado
		}
		detalles = append(detalles, entity.PedidoDetalle{
			ID:             uuid.New().String(),
			PedidoID:       pedidoID,
			PresentacionID: d.PresentacionID,
			Cantidad:       d.Cantidad,
			PrecioEstimado: precio,
		})
	}

	pedido := &entity.Pedido{
		ID:            pedidoID,
		ClienteID:     in.ClienteID,
		AlmacenID:     in.AlmacenID,
		VendedorID:    vendedorID,
		FechaEntrega:  in.FechaEntrega,
		Estado:        entity.PedidoEstadoProgramado,
		Notas:         in.Notas,
		FechaCreacion: time.Now(),
		Detalles:      detalles,
	}
	if err := uc.pedidoRepo.Create(pedido); err != nil {
		return nil, err
	}
	log.Info().
		Str("pedido_id", pedido.ID).
		Str("cliente_id", in.ClienteID).
		Str("total_estimado", pedido.TotalEstimado().String()).
		Msg("pedido creado")
	return pedido, nil
}

// Actualizar modifica fecha de entrega, notas y estado (vía la máquina de
// estados). Los pedidos en estado terminal no se modifican.
func (uc *UseCase) Actualizar(ctx context.Context, pedidoID string, in dto.ActualizarPedidoRequest) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, fmt.Errorf("pedido %s: %w", pedidoID, domain.ErrNotFound)
	}
	if pedido.EsTerminal() {
		return nil, fmt.Errorf("pedido %s en estado %s: %w", pedidoID, pedido.Estado, domain.ErrEstadoPedido)
	}

	if in.Estado != nil && *in.Estado != pedido.Estado {
		if !pedido.PuedeTransicionar(*in.Estado) {
			return nil, fmt.Errorf("transición %s -> %s: %w", pedido.Estado, *in.Estado, domain.ErrEstadoPedido)
		}
		pedido.Estado = *in.Estado
	}
	if in.FechaEntrega != nil {
		pedido.FechaEntrega = *in.FechaEntrega
	}
	if in.Notas != nil {
		pedido.Notas = *in.Notas
	}
	if err := uc.pedidoRepo.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// VerificarStock reporta, línea por línea, si la conversión del pedido
// pasaría el chequeo de disponibilidad. Es solo informativo: la conversión
// vuelve a verificar bajo bloqueo.
func (uc *UseCase) VerificarStock(ctx context.Context, pedidoID string) (*dto.VerificarStockResponse, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, fmt.Errorf("pedido %s: %w", pedidoID, domain.ErrNotFound)
	}

	out := &dto.VerificarStockResponse{PedidoID: pedidoID, Convertible: pedido.PuedeConvertirse()}
	for _, d := range pedido.Detalles {
		inv, err := uc.inventarioRepo.Get(d.PresentacionID, pedido.AlmacenID)
		if err != nil {
			return nil, err
		}
		disponible := 0
		if inv != nil {
			disponible = inv.Cantidad
		}
		if disponible < d.Cantidad {
			out.Convertible = false
			out.Faltantes = append(out.Faltantes, dto.FaltanteStock{
				PresentacionID: d.PresentacionID,
				Solicitado:     d.Cantidad,
				Disponible:     disponible,
			})
		}
	}
	return out, nil
}

// Convertir transforma un pedido confirmado en una venta real. La venta se
// crea con el orquestador de ventas dentro de la misma transacción que marca
// el pedido como entregado: o ambas cosas ocurren o ninguna.
//
// Por omisión la venta sale a crédito con los precios estimados del pedido;
// el request permite forzar precios de catálogo vigentes o pago de contado.
func (uc *UseCase) Convertir(ctx context.Context, usuarioID, pedidoID string, in dto.ConvertirPedidoRequest) (*entity.Venta, error) {
	tipoPago := entity.TipoPagoCredito
	if in.TipoPago != "" {
		tipoPago = in.TipoPago
	}

	var creada *entity.Venta
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		// Bloqueo de fila: una segunda conversión concurrente espera aquí y
		// ve el pedido ya entregado.
		pedido, err := r.Pedidos.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return fmt.Errorf("pedido %s: %w", pedidoID, domain.ErrNotFound)
		}
		if !pedido.PuedeConvertirse() {
			return fmt.Errorf("pedido %s en estado %s no es convertible: %w",
				pedidoID, pedido.Estado, domain.ErrEstadoPedido)
		}

		detalles := make([]dto.VentaDetalleRequest, 0, len(pedido.Detalles))
		for _, d := range pedido.Detalles {
			linea := dto.VentaDetalleRequest{
				PresentacionID: d.PresentacionID,
				Cantidad:       d.Cantidad,
			}
			if !in.UsarPrecioActual {
				precio := d.PrecioEstimado
				linea.PrecioUnitario = &precio
			}
			detalles = append(detalles, linea)
		}

		creada, err = uc.ventaUC.CrearEnTx(ctx, r, usuarioID, dto.CrearVentaRequest{
			ClienteID: pedido.ClienteID,
			AlmacenID: pedido.AlmacenID,
			TipoPago:  tipoPago,
			Detalles:  detalles,
		})
		if err != nil {
			return err
		}
		return r.Pedidos.UpdateEstado(pedidoID, entity.PedidoEstadoEntregado)
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("pedido_id", pedidoID).
		Str("venta_id", creada.ID).
		Str("total", creada.Total.String()).
		Msg("pedido convertido en venta")
	return creada, nil
}

// GetByID devuelve un pedido con sus detalles.
func (uc *UseCase) GetByID(id string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	return pedido, nil
}

// List lista pedidos con filtros.
func (uc *UseCase) List(f repository.PedidoFilter, limit, offset int) ([]*entity.Pedido, error) {
	return uc.pedidoRepo.List(f, limit, offset)
}

// Eliminar borra un pedido no convertido. Los entregados se conservan como
// historial.
func (uc *UseCase) Eliminar(ctx context.Context, pedidoID string) error {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return err
	}
	if pedido == nil {
		return fmt.Errorf("pedido %s: %w", pedidoID, domain.ErrNotFound)
	}
	if pedido.Estado == entity.PedidoEstadoEntregado {
		return fmt.Errorf("pedido %s ya entregado: %w", pedidoID, domain.ErrEstadoPedido)
	}
	return uc.pedidoRepo.Delete(pedidoID)
}
