// Package merma implementa el registro de pérdidas de material contra lotes y
// su conversión opcional a briquetas, que acredita inventario derivado.
package merma

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

// UseCase registra y revierte mermas.
type UseCase struct {
	txRunner  ports.TxRunner
	mermaRepo repository.MermaRepository
	loteRepo  repository.LoteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner ports.TxRunner, mermaRepo repository.MermaRepository, loteRepo repository.LoteRepository) *UseCase {
	return &UseCase{txRunner: txRunner, mermaRepo: mermaRepo, loteRepo: loteRepo}
}

// Crear registra una merma: bloquea el lote, descuenta la cantidad perdida de
// su disponible y, si se convierte a briquetas, acredita el inventario de la
// presentación briqueta del producto en el almacén del lote dejando un
// movimiento de entrada.
func (uc *UseCase) Crear(ctx context.Context, usuarioID string, in dto.CrearMermaRequest) (*entity.Merma, error) {
	if in.CantidadKg.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("cantidad_kg debe ser positiva: %w", domain.ErrInvalidInput)
	}

	var merma *entity.Merma
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		lote, err := r.Lotes.GetForUpdate(in.LoteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return fmt.Errorf("lote %s: %w", in.LoteID, domain.ErrNotFound)
		}
		if lote.CantidadDisponibleKg.LessThan(in.CantidadKg) {
			return fmt.Errorf("lote %s disponible %s < merma %s: %w",
				lote.ID, lote.CantidadDisponibleKg, in.CantidadKg, domain.ErrLoteInsuficiente)
		}

		now := time.Now()
		lote.CantidadDisponibleKg = lote.CantidadDisponibleKg.Sub(in.CantidadKg)
		lote.UpdatedAt = now
		if err := r.Lotes.Update(lote); err != nil {
			return err
		}

		merma = &entity.Merma{
			ID:                   uuid.New().String(),
			LoteID:               in.LoteID,
			CantidadKg:           in.CantidadKg,
			ConvertidoABriquetas: in.ConvertidoABriquetas,
			UsuarioID:            usuarioID,
			FechaRegistro:        now,
		}
		if err := r.Mermas.Create(merma); err != nil {
			return err
		}

		if in.ConvertidoABriquetas {
			if err := uc.acreditarBriquetas(r, lote, merma, usuarioID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("merma_id", merma.ID).
		Str("lote_id", in.LoteID).
		Str("cantidad_kg", in.CantidadKg.String()).
		Bool("convertido", in.ConvertidoABriquetas).
		Msg("merma registrada")
	return merma, nil
}

// acreditarBriquetas suma unidades de briqueta al inventario del almacén del
// lote. El inventario es entero: se acreditan floor(kg) unidades (el resto
// queda como pérdida real). Si no existe fila de inventario se crea.
func (uc *UseCase) acreditarBriquetas(r *ports.Repos, lote *entity.Lote, merma *entity.Merma, usuarioID string, now time.Time) error {
	pres, err := r.Presentaciones.GetByProductoYTipo(lote.ProductoID, entity.PresentacionTipoBriqueta)
	if err != nil {
		return err
	}
	if pres == nil {
		return fmt.Errorf("el producto %s no tiene presentación briqueta activa: %w",
			lote.ProductoID, domain.ErrConflict)
	}

	unidades := int(merma.CantidadKg.Floor().IntPart())
	if unidades <= 0 {
		return nil
	}

	inv, err := r.Inventarios.GetForUpdate(pres.ID, lote.AlmacenID)
	if err != nil {
		return err
	}
	if inv == nil {
		loteID := lote.ID
		inv = &entity.Inventario{
			ID:                  uuid.New().String(),
			PresentacionID:      pres.ID,
			AlmacenID:           lote.AlmacenID,
			LoteID:              &loteID,
			Cantidad:            unidades,
			UltimaActualizacion: now,
		}
		if err := r.Inventarios.Create(inv); err != nil {
			return err
		}
	} else {
		inv.Cantidad += unidades
		inv.UltimaActualizacion = now
		if err := r.Inventarios.Update(inv); err != nil {
			return err
		}
	}

	loteID := lote.ID
	return r.Movimientos.Create(&entity.Movimiento{
		ID:             uuid.New().String(),
		Tipo:           entity.MovimientoTipoEntrada,
		PresentacionID: pres.ID,
		AlmacenID:      lote.AlmacenID,
		LoteID:         &loteID,
		Cantidad:       decimal.NewFromInt(int64(unidades)),
		Motivo:         fmt.Sprintf("Conversión de merma %s a briquetas", merma.ID),
		UsuarioID:      usuarioID,
		Fecha:          now,
	})
}

// Eliminar revierte una merma: devuelve los kg al lote y, si fue convertida,
// descuenta las briquetas acreditadas dejando un movimiento de salida.
func (uc *UseCase) Eliminar(ctx context.Context, usuarioID, mermaID string) error {
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		merma, err := r.Mermas.GetByID(mermaID)
		if err != nil {
			return err
		}
		if merma == nil {
			return fmt.Errorf("merma %s: %w", mermaID, domain.ErrNotFound)
		}
		lote, err := r.Lotes.GetForUpdate(merma.LoteID)
		if err != nil {
			return err
		}
		if lote == nil {
			return fmt.Errorf("lote %s: %w", merma.LoteID, domain.ErrNotFound)
		}

		now := time.Now()
		lote.CantidadDisponibleKg = lote.CantidadDisponibleKg.Add(merma.CantidadKg)
		lote.UpdatedAt = now
		if err := r.Lotes.Update(lote); err != nil {
			return err
		}

		if merma.ConvertidoABriquetas {
			if err := uc.retirarBriquetas(r, lote, merma, usuarioID, now); err != nil {
				return err
			}
		}
		return r.Mermas.Delete(mermaID)
	})
	if err != nil {
		return err
	}
	log.Info().Str("merma_id", mermaID).Msg("merma eliminada y revertida")
	return nil
}

func (uc *UseCase) retirarBriquetas(r *ports.Repos, lote *entity.Lote, merma *entity.Merma, usuarioID string, now time.Time) error {
	pres, err := r.Presentaciones.GetByProductoYTipo(lote.ProductoID, entity.PresentacionTipoBriqueta)
	if err != nil {
		return err
	}
	if pres == nil {
		return fmt.Errorf("el producto %s no tiene presentación briqueta: %w",
			lote.ProductoID, domain.ErrConflict)
	}

	unidades := int(merma.CantidadKg.Floor().IntPart())
	if unidades <= 0 {
		return nil
	}

	inv, err := r.Inventarios.GetForUpdate(pres.ID, lote.AlmacenID)
	if err != nil {
		return err
	}
	if inv == nil || inv.Cantidad < unidades {
		disponible := 0
		if inv != nil {
			disponible = inv.Cantidad
		}
		return fmt.Errorf("briquetas insuficientes para revertir (hay %d, se necesitan %d): %w",
			disponible, unidades, domain.ErrInsufficientStock)
	}
	inv.Cantidad -= unidades
	inv.UltimaActualizacion = now
	if err := r.Inventarios.Update(inv); err != nil {
		return err
	}

	loteID := lote.ID
	return r.Movimientos.Create(&entity.Movimiento{
		ID:             uuid.New().String(),
		Tipo:           entity.MovimientoTipoSalida,
		PresentacionID: pres.ID,
		AlmacenID:      lote.AlmacenID,
		LoteID:         &loteID,
		Cantidad:       decimal.NewFromInt(int64(unidades)),
		Motivo:         fmt.Sprintf("Reversión de merma %s", merma.ID),
		UsuarioID:      usuarioID,
		Fecha:          now,
	})
}

// GetByID devuelve una merma.
func (uc *UseCase) GetByID(id string) (*entity.Merma, error) {
	merma, err := uc.mermaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if merma == nil {
		return nil, fmt.Errorf("merma %s: %w", id, domain.ErrNotFound)
	}
	return merma, nil
}

// List lista mermas con filtros.
func (uc *UseCase) List(loteID string, convertido *bool, limit, offset int) ([]*entity.Merma, error) {
	return uc.mermaRepo.List(loteID, convertido, limit, offset)
}
