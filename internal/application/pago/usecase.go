// Package pago implementa el registro y eliminación de abonos contra ventas.
// El estado de pago de la venta se recalcula siempre desde el snapshot
// (total, suma de pagos) dentro de la misma transacción, con la venta
// bloqueada para serializar abonos concurrentes.
package pago

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
	ventadom "github.com/jdvaldes/acopio-api/internal/domain/venta"
)

// UseCase registra y elimina pagos manteniendo el estado de la venta derivado.
type UseCase struct {
	txRunner ports.TxRunner
	pagoRepo repository.PagoRepository
}

// NewUseCase construye el caso de uso. pagoRepo se usa solo para lecturas
// fuera de transacción.
func NewUseCase(txRunner ports.TxRunner, pagoRepo repository.PagoRepository) *UseCase {
	return &UseCase{txRunner: txRunner, pagoRepo: pagoRepo}
}

// Crear registra un abono contra una venta. Bloquea la venta, suma los pagos
// existentes, rechaza montos no positivos o que excedan el saldo pendiente
// (con tolerancia de redondeo) y recalcula el estado de pago.
func (uc *UseCase) Crear(ctx context.Context, usuarioID string, in dto.CrearPagoRequest) (*entity.Pago, string, error) {
	if in.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, "", fmt.Errorf("el monto debe ser positivo: %w", domain.ErrInvalidInput)
	}

	var (
		pago   *entity.Pago
		estado string
	)
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		venta, err := r.Ventas.GetForUpdate(in.VentaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return fmt.Errorf("venta %s: %w", in.VentaID, domain.ErrNotFound)
		}

		existentes, err := r.Pagos.ListByVenta(in.VentaID)
		if err != nil {
			return err
		}
		pagado := ventadom.SumarPagos(existentes)
		saldo := ventadom.SaldoPendiente(venta.Total, pagado)
		// La tolerancia aplica solo al estado derivado; la suma de pagos
		// nunca supera el total de la venta.
		if in.Monto.GreaterThan(saldo) {
			return fmt.Errorf("monto %s > saldo %s: %w", in.Monto, saldo, domain.ErrPagoExcedeSaldo)
		}

		pago = &entity.Pago{
			ID:             uuid.New().String(),
			VentaID:        in.VentaID,
			Monto:          in.Monto,
			MetodoPago:     in.MetodoPago,
			Referencia:     in.Referencia,
			URLComprobante: in.URLComprobante,
			UsuarioID:      usuarioID,
			Fecha:          time.Now(),
		}
		if err := r.Pagos.Create(pago); err != nil {
			return err
		}

		estado = ventadom.CalcularEstadoPago(venta.Total, pagado.Add(in.Monto))
		if estado != venta.EstadoPago {
			if err := r.Ventas.UpdateEstadoPago(venta.ID, estado); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	log.Info().
		Str("pago_id", pago.ID).
		Str("venta_id", in.VentaID).
		Str("monto", in.Monto.String()).
		Str("estado_venta", estado).
		Msg("pago registrado")
	return pago, estado, nil
}

// Eliminar borra un pago y recalcula el estado de la venta desde los pagos
// restantes. Un estado pagado puede volver a parcial o pendiente.
func (uc *UseCase) Eliminar(ctx context.Context, pagoID string) error {
	err := uc.txRunner.Run(ctx, func(r *ports.Repos) error {
		pago, err := r.Pagos.GetByID(pagoID)
		if err != nil {
			return err
		}
		if pago == nil {
			return fmt.Errorf("pago %s: %w", pagoID, domain.ErrNotFound)
		}
		venta, err := r.Ventas.GetForUpdate(pago.VentaID)
		if err != nil {
			return err
		}
		if venta == nil {
			return fmt.Errorf("venta %s: %w", pago.VentaID, domain.ErrNotFound)
		}
		if err := r.Pagos.Delete(pagoID); err != nil {
			return err
		}
		restantes, err := r.Pagos.ListByVenta(pago.VentaID)
		if err != nil {
			return err
		}
		estado := ventadom.CalcularEstadoPago(venta.Total, ventadom.SumarPagos(restantes))
		if estado != venta.EstadoPago {
			return r.Ventas.UpdateEstadoPago(venta.ID, estado)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info().Str("pago_id", pagoID).Msg("pago eliminado")
	return nil
}

// GetByID devuelve un pago.
func (uc *UseCase) GetByID(id string) (*entity.Pago, error) {
	pago, err := uc.pagoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pago == nil {
		return nil, fmt.Errorf("pago %s: %w", id, domain.ErrNotFound)
	}
	return pago, nil
}

// List lista pagos con filtros opcionales.
func (uc *UseCase) List(ventaID, metodoPago string, limit, offset int) ([]*entity.Pago, error) {
	return uc.pagoRepo.List(ventaID, metodoPago, limit, offset)
}
