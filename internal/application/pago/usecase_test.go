package pago

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvaldes/acopio-api/internal/application/apptest"
	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func newUseCase(t *testing.T) (*UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	runner := &apptest.FakeTxRunner{Store: store}
	return NewUseCase(runner, store.Pagos), store
}

func seedVenta(t *testing.T, store *apptest.Store, total string) *entity.Venta {
	t.Helper()
	venta := &entity.Venta{
		ID:         uuid.New().String(),
		ClienteID:  uuid.New().String(),
		AlmacenID:  uuid.New().String(),
		Total:      decimal.RequireFromString(total),
		TipoPago:   entity.TipoPagoCredito,
		EstadoPago: entity.EstadoPagoPendiente,
	}
	require.NoError(t, store.Ventas.Create(venta))
	return venta
}

// ─────────────────────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────────────────────

func TestCrearPago_Parcial(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	pago, estado, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("40"),
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPagoParcial, estado)
	assert.Equal(t, "u1", pago.UsuarioID)

	actualizada, err := store.Ventas.GetByID(venta.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPagoParcial, actualizada.EstadoPago)
}

func TestCrearPago_CompletaLaVenta(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	_, _, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("60"),
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	require.NoError(t, err)

	_, estado, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("40"),
		MetodoPago: entity.MetodoPagoTransferencia,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPagoPagado, estado)
}

func TestCrearPago_ToleranciaDeRedondeo(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	// 99.9995 deja una diferencia de 0.0005 <= 0.001: la venta queda pagada
	_, estado, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("99.9995"),
		MetodoPago: entity.MetodoPagoTransferencia,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPagoPagado, estado)
}

func TestCrearPago_ToleranciaNoAmpliaElSaldo(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	// La tolerancia solo aplica al estado derivado: un abono de 100.0005
	// sobre saldo 100 se rechaza, la suma de pagos nunca supera el total.
	_, _, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("100.0005"),
		MetodoPago: entity.MetodoPagoTransferencia,
	})
	assert.True(t, errors.Is(err, domain.ErrPagoExcedeSaldo))

	pagos, err := store.Pagos.ListByVenta(venta.ID)
	require.NoError(t, err)
	assert.Empty(t, pagos)
}

func TestCrearPago_ExcedeSaldo(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	_, _, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("70"),
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	require.NoError(t, err)

	// Saldo pendiente 30: un abono de 50 se rechaza
	_, _, err = uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("50"),
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	assert.True(t, errors.Is(err, domain.ErrPagoExcedeSaldo))

	pagos, err := store.Pagos.ListByVenta(venta.ID)
	require.NoError(t, err)
	assert.Len(t, pagos, 1)
}

func TestCrearPago_MontoNoPositivo(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	_, _, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.Zero,
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCrearPago_VentaInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	_, _, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    uuid.New().String(),
		Monto:      decimal.RequireFromString("10"),
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ─────────────────────────────────────────────────────────────
// Eliminar
// ─────────────────────────────────────────────────────────────

func TestEliminarPago_RevierteEstado(t *testing.T) {
	uc, store := newUseCase(t)
	venta := seedVenta(t, store, "100")

	pago, estado, err := uc.Crear(context.Background(), "u1", dto.CrearPagoRequest{
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("100"),
		MetodoPago: entity.MetodoPagoEfectivo,
	})
	require.NoError(t, err)
	require.Equal(t, entity.EstadoPagoPagado, estado)

	require.NoError(t, uc.Eliminar(context.Background(), pago.ID))

	actualizada, err := store.Ventas.GetByID(venta.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoPagoPendiente, actualizada.EstadoPago)
}

func TestEliminarPago_Inexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	err := uc.Eliminar(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
