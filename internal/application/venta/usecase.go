// Package venta implementa el orquestador transaccional de ventas:
// verificación de stock bajo bloqueo de fila, creación de la venta con sus
// líneas, movimientos de salida e inventario decrementado como una sola unidad
// atómica, y la reversión completa al eliminar.
package venta

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/ports"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// StockInsuficienteError detalla qué presentación no tiene stock y cuánto hay.
type StockInsuficienteError struct {
	PresentacionID string
	Nombre         string
	Solicitado     int
	Disponible     int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("stock insuficiente para '%s': solicitado %d, disponible %d",
		e.Nombre, e.Solicitado, e.Disponible)
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientStock).
func (e *StockInsuficienteError) Unwrap() error { return domain.ErrInsufficientStock }

// UseCase orquesta la creación y reversión de ventas.
type UseCase struct {
	txRunner         ports.TxRunner
	clienteRepo      repository.ClienteRepository
	almacenRepo      repository.AlmacenRepository
	presentacionRepo repository.PresentacionRepository
	ventaRepo        repository.VentaRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner ports.TxRunner,
	clienteRepo repository.ClienteRepository,
	almacenRepo repository.AlmacenRepository,
	presentacionRepo repository.PresentacionRepository,
	ventaRepo repository.VentaRepository,
) *UseCase {
	return &UseCase{
		txRunner:         txRunner,
		clienteRepo:      clienteRepo,
		almacenRepo:      almacenRepo,
		presentacionRepo: presentacionRepo,
		ventaRepo:        ventaRepo,
	}
}

// Crear valida las referencias fuera de la transacción (fail fast) y ejecuta
// la creación atómica con CrearEnTx.
func (uc *UseCase) Crear(ctx context.Context, vendedorID string, in dto.CrearVentaRequest) (*entity.Venta, error) {
	if in.ClienteID == "" || in.AlmacenID == "" || len(in.Detalles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.TipoPago != entity.TipoPagoContado && in.TipoPago != entity.TipoPagoCredito {
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

	var venta *entity.Venta
	err = uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		venta, err = uc.CrearEnTx(ctx, r, vendedorID, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("venta_id", venta.ID).
		Str("vendedor_id", vendedorID).
		Str("total", venta.Total.String()).
		Msg("venta creada")
	return venta, nil
}

// CrearEnTx ejecuta la creación de la venta con los repositorios de la
// transacción del caller (lo usa también la conversión de pedidos).
//
// Por cada línea bloquea la fila de inventario antes de leer la cantidad; las
// filas se bloquean en orden estable por presentación para evitar interbloqueo
// entre ventas concurrentes con líneas solapadas en distinto orden.
func (uc *UseCase) CrearEnTx(ctx context.Context, r *ports.Repos, vendedorID string, in dto.CrearVentaRequest) (*entity.Venta, error) {
	detalles := make([]dto.VentaDetalleRequest, len(in.Detalles))
	copy(detalles, in.Detalles)
	sort.Slice(detalles, func(i, j int) bool {
		return detalles[i].PresentacionID < detalles[j].PresentacionID
	})
	for i := 1; i < len(detalles); i++ {
		if detalles[i].PresentacionID == detalles[i-1].PresentacionID {
			return nil, fmt.Errorf("presentación %s repetida en la venta: %w",
				detalles[i].PresentacionID, domain.ErrInvalidInput)
		}
	}

	now := time.Now()
	ventaID := uuid.New().String()
	total := decimal.Zero
	lineas := make([]entity.VentaDetalle, 0, len(detalles))
	movimientos := make([]*entity.Movimiento, 0, len(detalles))
	inventarios := make([]*entity.Inventario, 0, len(detalles))

	for _, d := range detalles {
		if d.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		pres, err := r.Presentaciones.GetByID(d.PresentacionID)
		if err != nil {
			return nil, err
		}
		if pres == nil || !pres.Activo {
			return nil, fmt.Errorf("presentación %s no válida o inactiva: %w", d.PresentacionID, domain.ErrInvalidInput)
		}

		// Bloquea la fila de inventario (SELECT FOR UPDATE) antes del chequeo
		// de stock; dos ventas concurrentes quedan serializadas aquí.
		inv, err := r.Inventarios.GetForUpdate(d.PresentacionID, in.AlmacenID)
		if err != nil {
			return nil, err
		}
		disponible := 0
		if inv != nil {
			disponible = inv.Cantidad
		}
		if inv == nil || disponible < d.Cantidad {
			return nil, &StockInsuficienteError{
				PresentacionID: pres.ID,
				Nombre:         pres.Nombre,
				Solicitado:     d.Cantidad,
				Disponible:     disponible,
			}
		}

		// nil = "usar precio de catálogo"; un cero explícito es un precio
		// válido (regalo, reposición).
		precio := pres.PrecioVenta
		if d.PrecioUnitario != nil {
			if d.PrecioUnitario.LessThan(decimal.Zero) {
				return nil, domain.ErrInvalidInput
			}
			precio = *d.PrecioUnitario
		}
		linea := entity.VentaDetalle{
			ID:             uuid.New().String(),
			VentaID:        ventaID,
			PresentacionID: d.PresentacionID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: precio,
		}
		total = total.Add(linea.TotalLinea())
		lineas = append(lineas, linea)

		vid := ventaID
		movimientos = append(movimientos, &entity.Movimiento{
			ID:             uuid.New().String(),
			Tipo:           entity.MovimientoTipoSalida,
			PresentacionID: d.PresentacionID,
			AlmacenID:      in.AlmacenID,
			LoteID:         inv.LoteID,
			VentaID:        &vid,
			Cantidad:       decimal.NewFromInt(int64(d.Cantidad)),
			Motivo:         fmt.Sprintf("Venta a cliente %s", in.ClienteID),
			UsuarioID:      vendedorID,
			Fecha:          now,
		})

		inv.Cantidad -= d.Cantidad
		inv.UltimaActualizacion = now
		if inv.Cantidad < 0 {
			// Nunca debería ocurrir bajo el bloqueo de fila.
			return nil, fmt.Errorf("inventario %s quedaría negativo: %w", inv.ID, domain.ErrConflict)
		}
		inventarios = append(inventarios, inv)
	}

	venta := &entity.Venta{
		ID:               ventaID,
		ClienteID:        in.ClienteID,
		AlmacenID:        in.AlmacenID,
		VendedorID:       vendedorID,
		Fecha:            now,
		Total:            total,
		TipoPago:         in.TipoPago,
		EstadoPago:       entity.EstadoPagoPendiente,
		FechaVencimiento: in.FechaVencimiento,
		Detalles:         lineas,
	}
	if err := r.Ventas.Create(venta); err != nil {
		return nil, err
	}
	for _, mov := range movimientos {
		if err := r.Movimientos.Create(mov); err != nil {
			return nil, err
		}
	}
	for _, inv := range inventarios {
		if err := r.Inventarios.Update(inv); err != nil {
			return nil, err
		}
	}

	// Proyección de recompra del cliente: frecuencia = total / consumo diario.
	if in.ConsumoDiarioKg != nil && in.ConsumoDiarioKg.GreaterThan(decimal.Zero) {
		frecuencia := int(total.Div(*in.ConsumoDiarioKg).Round(0).IntPart())
		if err := r.Clientes.ActualizarProyeccion(in.ClienteID, now, frecuencia); err != nil {
			return nil, err
		}
	}

	return venta, nil
}

// Eliminar revierte por completo una venta: por cada movimiento de salida
// correlacionado crea una entrada compensatoria, restaura el inventario bajo
// bloqueo, elimina el movimiento original y finalmente la venta (detalles en
// cascada). Las ventas con pagos registrados no se pueden eliminar; primero
// deben eliminarse sus pagos.
func (uc *UseCase) Eliminar(ctx context.Context, usuarioID, ventaID string) error {
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		venta, err := r.Ventas.GetForUpdate(ventaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return fmt.Errorf("venta %s: %w", ventaID, domain.ErrNotFound)
		}

		pagos, err := r.Pagos.ListByVenta(ventaID)
		if err != nil {
			return err
		}
		if len(pagos) > 0 {
			return fmt.Errorf("venta %s tiene %d pagos: %w", ventaID, len(pagos), domain.ErrVentaConPagos)
		}

		salidas, err := r.Movimientos.ListSalidasPorVenta(ventaID)
		if err != nil {
			return err
		}

		// Acumular por presentación y restaurar en orden estable (mismo orden
		// de bloqueo que la creación).
		porPresentacion := make(map[string]decimal.Decimal)
		lotePorPresentacion := make(map[string]*string)
		for _, mov := range salidas {
			porPresentacion[mov.PresentacionID] = porPresentacion[mov.PresentacionID].Add(mov.Cantidad)
			lotePorPresentacion[mov.PresentacionID] = mov.LoteID
		}
		presentaciones := make([]string, 0, len(porPresentacion))
		for id := range porPresentacion {
			presentaciones = append(presentaciones, id)
		}
		sort.Strings(presentaciones)

		now := time.Now()
		for _, presID := range presentaciones {
			cantidad := porPresentacion[presID]
			inv, err := r.Inventarios.GetForUpdate(presID, venta.AlmacenID)
			if err != nil {
				return err
			}
			if inv == nil {
				log.Warn().
					Str("venta_id", ventaID).
					Str("presentacion_id", presID).
					Str("almacen_id", venta.AlmacenID).
					Msg("inventario no encontrado al revertir venta")
				continue
			}
			inv.Cantidad += int(cantidad.Round(0).IntPart())
			inv.UltimaActualizacion = now
			if err := r.Inventarios.Update(inv); err != nil {
				return err
			}

			// Entrada compensatoria: deja rastro de la reversión en el libro.
			reversion := &entity.Movimiento{
				ID:             uuid.New().String(),
				Tipo:           entity.MovimientoTipoEntrada,
				PresentacionID: presID,
				AlmacenID:      venta.AlmacenID,
				LoteID:         lotePorPresentacion[presID],
				Cantidad:       cantidad,
				Motivo:         fmt.Sprintf("Reversión venta %s", ventaID),
				UsuarioID:      usuarioID,
				Fecha:          now,
			}
			if err := r.Movimientos.Create(reversion); err != nil {
				return err
			}
		}

		// Eliminar las salidas originales: la reversión las reemplaza por
		// entradas compensatorias.
		for _, mov := range salidas {
			if err := r.Movimientos.Delete(mov.ID); err != nil {
				return err
			}
		}

		return r.Ventas.Delete(ventaID)
	})
	if err != nil {
		return err
	}
	log.Info().Str("venta_id", ventaID).Str("usuario_id", usuarioID).Msg("venta eliminada y revertida")
	return nil
}

// GetByID devuelve una venta con sus detalles.
func (uc *UseCase) GetByID(id string) (*entity.Venta, error) {
	v, err := uc.ventaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	return v, nil
}

// List lista ventas con filtros y paginación.
func (uc *UseCase) List(f repository.VentaFilter, limit, offset int) ([]*entity.Venta, error) {
	return uc.ventaRepo.List(f, limit, offset)
}
