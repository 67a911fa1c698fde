// Package inventario implementa la administración de filas de existencias:
// alta, ajustes manuales con rastro en el libro de movimientos, embolsado
// desde lotes a granel y baja controlada.
package inventario

import (
	"context"
	"fmt"
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

// UseCase administra las filas de inventario.
type UseCase struct {
	txRunner         ports.TxRunner
	inventarioRepo   repository.InventarioRepository
	presentacionRepo repository.PresentacionRepository
	almacenRepo      repository.AlmacenRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner ports.TxRunner,
	inventarioRepo repository.InventarioRepository,
	presentacionRepo repository.PresentacionRepository,
	almacenRepo repository.AlmacenRepository,
) *UseCase {
	return &UseCase{
		txRunner:         txRunner,
		inventarioRepo:   inventarioRepo,
		presentacionRepo: presentacionRepo,
		almacenRepo:      almacenRepo,
	}
}

// Crear registra una fila de inventario nueva. Si nace con cantidad positiva
// deja un movimiento de entrada como saldo inicial.
func (uc *UseCase) Crear(ctx context.Context, usuarioID string, in dto.CrearInventarioRequest) (*entity.Inventario, error) {
	pres, err := uc.presentacionRepo.GetByID(in.PresentacionID)
	if err != nil {
		return nil, err
	}
	if pres == nil {
		return nil, fmt.Errorf("presentación %s: %w", in.PresentacionID, domain.ErrNotFound)
	}
	almacen, err := uc.almacenRepo.GetByID(in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("almacén %s: %w", in.AlmacenID, domain.ErrNotFound)
	}

	now := time.Now()
	inv := &entity.Inventario{
		ID:                  uuid.New().String(),
		PresentacionID:      in.PresentacionID,
		AlmacenID:           in.AlmacenID,
		LoteID:              in.LoteID,
		Cantidad:            in.Cantidad,
		StockMinimo:         in.StockMinimo,
		UltimaActualizacion: now,
	}
	err = uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		if err := r.Inventarios.Create(inv); err != nil {
			return err
		}
		if in.Cantidad > 0 {
			return r.Movimientos.Create(&entity.Movimiento{
				ID:             uuid.New().String(),
				Tipo:           entity.MovimientoTipoEntrada,
				PresentacionID: in.PresentacionID,
				AlmacenID:      in.AlmacenID,
				LoteID:         in.LoteID,
				Cantidad:       decimal.NewFromInt(int64(in.Cantidad)),
				Motivo:         "Saldo inicial de inventario",
				UsuarioID:      usuarioID,
				Fecha:          now,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("inventario_id", inv.ID).
		Str("presentacion_id", in.PresentacionID).
		Str("almacen_id", in.AlmacenID).
		Int("cantidad", in.Cantidad).
		Msg("inventario creado")
	return inv, nil
}

// Ajustar modifica una fila de inventario bajo bloqueo. Todo cambio de
// cantidad deja un movimiento con la diferencia. Con empaque=true el aumento
// proviene de embolsar stock a granel: descuenta delta * capacidad_kg de la
// presentación del lote asociado, también bajo bloqueo.
func (uc *UseCase) Ajustar(ctx context.Context, usuarioID, inventarioID string, in dto.AjustarInventarioRequest) (*entity.Inventario, error) {
	var out *entity.Inventario
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		inv, err := r.Inventarios.GetByIDForUpdate(inventarioID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("inventario %s: %w", inventarioID, domain.ErrNotFound)
		}

		now := time.Now()
		if in.LoteID != nil {
			inv.LoteID = in.LoteID
		}
		if in.StockMinimo != nil {
			inv.StockMinimo = *in.StockMinimo
		}

		if in.Cantidad != nil && *in.Cantidad != inv.Cantidad {
			delta := *in.Cantidad - inv.Cantidad
			if in.Empaque {
				if delta <= 0 {
					return fmt.Errorf("el embolsado requiere un aumento de cantidad: %w", domain.ErrInvalidInput)
				}
				if err := uc.descontarDeLote(r, inv, delta, now); err != nil {
					return err
				}
			}

			tipo := entity.MovimientoTipoEntrada
			motivo := "Ajuste manual de inventario"
			if in.Empaque {
				motivo = "Embolsado desde lote"
			}
			cantidadMov := delta
			if delta < 0 {
				tipo = entity.MovimientoTipoSalida
				cantidadMov = -delta
			}
			if err := r.Movimientos.Create(&entity.Movimiento{
				ID:             uuid.New().String(),
				Tipo:           tipo,
				PresentacionID: inv.PresentacionID,
				AlmacenID:      inv.AlmacenID,
				LoteID:         inv.LoteID,
				Cantidad:       decimal.NewFromInt(int64(cantidadMov)),
				Motivo:         motivo,
				UsuarioID:      usuarioID,
				Fecha:          now,
			}); err != nil {
				return err
			}
			inv.Cantidad = *in.Cantidad
		}

		inv.UltimaActualizacion = now
		if err := r.Inventarios.Update(inv); err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Str("inventario_id", inventarioID).Int("cantidad", out.Cantidad).Msg("inventario ajustado")
	return out, nil
}

// descontarDeLote retira delta * capacidad_kg del lote asociado a la fila.
func (uc *UseCase) descontarDeLote(r *ports.Repos, inv *entity.Inventario, delta int, now time.Time) error {
	if inv.LoteID == nil {
		return fmt.Errorf("la fila de inventario no tiene lote asociado: %w", domain.ErrInvalidInput)
	}
	pres, err := r.Presentaciones.GetByID(inv.PresentacionID)
	if err != nil {
		return err
	}
	if pres == nil {
		return fmt.Errorf("presentación %s: %w", inv.PresentacionID, domain.ErrNotFound)
	}
	lote, err := r.Lotes.GetForUpdate(*inv.LoteID)
	if err != nil {
		return err
	}
	if lote == nil {
		return fmt.Errorf("lote %s: %w", *inv.LoteID, domain.ErrNotFound)
	}

	necesarioKg := pres.CapacidadKg.Mul(decimal.NewFromInt(int64(delta)))
	if lote.CantidadDisponibleKg.LessThan(necesarioKg) {
		return fmt.Errorf("lote %s disponible %s kg < requerido %s kg: %w",
			lote.ID, lote.CantidadDisponibleKg, necesarioKg, domain.ErrLoteInsuficiente)
	}
	lote.CantidadDisponibleKg = lote.CantidadDisponibleKg.Sub(necesarioKg)
	lote.UpdatedAt = now
	return r.Lotes.Update(lote)
}

// EliminarRegistro da de baja una fila de inventario. Se rechaza si tiene
// movimientos registrados (el historial debe sobrevivir); sin historial, el
// remanente positivo se descarga con una salida antes de borrar la fila.
func (uc *UseCase) EliminarRegistro(ctx context.Context, usuarioID, inventarioID string) error {
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		inv, err := r.Inventarios.GetByIDForUpdate(inventarioID)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("inventario %s: %w", inventarioID, domain.ErrNotFound)
		}
		tiene, err := r.Movimientos.ExistePara(inv.PresentacionID, inv.AlmacenID)
		if err != nil {
			return err
		}
		if tiene {
			return fmt.Errorf("inventario %s: %w", inventarioID, domain.ErrInventarioConMovs)
		}
		if inv.Cantidad > 0 {
			if err := r.Movimientos.Create(&entity.Movimiento{
				ID:             uuid.New().String(),
				Tipo:           entity.MovimientoTipoSalida,
				PresentacionID: inv.PresentacionID,
				AlmacenID:      inv.AlmacenID,
				LoteID:         inv.LoteID,
				Cantidad:       decimal.NewFromInt(int64(inv.Cantidad)),
				Motivo:         "Baja de registro de inventario",
				UsuarioID:      usuarioID,
				Fecha:          time.Now(),
			}); err != nil {
				return err
			}
		}
		return r.Inventarios.Delete(inventarioID)
	})
	if err != nil {
		return err
	}
	log.Info().Str("inventario_id", inventarioID).Msg("registro de inventario eliminado")
	return nil
}

// GetByID devuelve una fila de inventario.
func (uc *UseCase) GetByID(id string) (*entity.Inventario, error) {
	inv, err := uc.inventarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("inventario %s: %w", id, domain.ErrNotFound)
	}
	return inv, nil
}

// List lista filas de inventario con filtros.
func (uc *UseCase) List(f repository.InventarioFilter, limit, offset int) ([]*entity.Inventario, error) {
	return uc.inventarioRepo.List(f, limit, offset)
}
