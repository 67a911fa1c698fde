package inventario

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

type fixture struct {
	store   *apptest.Store
	uc      *UseCase
	pres    *entity.Presentacion
	almacen *entity.Almacen
	lote    *entity.Lote
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := apptest.NewStore()
	runner := &apptest.FakeTxRunner{Store: store}
	uc := NewUseCase(runner, store.Inventarios, store.Presentaciones, store.Almacenes)

	producto := &entity.Producto{ID: uuid.New().String(), Nombre: "Carbón vegetal"}
	require.NoError(t, store.Productos.Create(producto))
	almacen := &entity.Almacen{ID: uuid.New().String(), Nombre: "Principal"}
	require.NoError(t, store.Almacenes.Create(almacen))

	pres := &entity.Presentacion{
		ID:          uuid.New().String(),
		ProductoID:  producto.ID,
		Nombre:      "Bolsa 5kg",
		CapacidadKg: decimal.RequireFromString("5"),
		Tipo:        entity.PresentacionTipoProcesado,
		PrecioVenta: decimal.RequireFromString("25.00"),
		Activo:      true,
	}
	require.NoError(t, store.Presentaciones.Create(pres))

	lote := &entity.Lote{
		ID:                   uuid.New().String(),
		ProductoID:           producto.ID,
		AlmacenID:            almacen.ID,
		PesoHumedoKg:         decimal.RequireFromString("500"),
		CantidadDisponibleKg: decimal.RequireFromString("100"),
	}
	require.NoError(t, store.Lotes.Create(lote))

	return &fixture{store: store, uc: uc, pres: pres, almacen: almacen, lote: lote}
}

// ─────────────────────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────────────────────

func TestCrearInventario_ConSaldoInicial(t *testing.T) {
	f := newFixture(t)

	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       30,
		StockMinimo:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, inv.Cantidad)

	// El saldo inicial queda en el libro como entrada
	movs := f.store.Movimientos.Todos()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoTipoEntrada, movs[0].Tipo)
	assert.True(t, movs[0].Cantidad.Equal(decimal.RequireFromString("30")))
}

func TestCrearInventario_SinSaldoNoDejaMovimiento(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       0,
	})
	require.NoError(t, err)
	assert.Empty(t, f.store.Movimientos.Todos())
}

func TestCrearInventario_Duplicado(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       10,
	})
	require.NoError(t, err)

	// Una segunda fila para el mismo par (presentación, almacén) se rechaza
	_, err = f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       5,
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestCrearInventario_PresentacionInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: uuid.New().String(),
		AlmacenID:      f.almacen.ID,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ─────────────────────────────────────────────────────────────
// Ajustar
// ─────────────────────────────────────────────────────────────

func TestAjustarInventario_AumentoManual(t *testing.T) {
	f := newFixture(t)
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       10,
	})
	require.NoError(t, err)

	nueva := 25
	out, err := f.uc.Ajustar(context.Background(), "u1", inv.ID, dto.AjustarInventarioRequest{
		Cantidad: &nueva,
	})
	require.NoError(t, err)
	assert.Equal(t, 25, out.Cantidad)

	// Entrada por la diferencia (15)
	movs := f.store.Movimientos.Todos()
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovimientoTipoEntrada, movs[1].Tipo)
	assert.True(t, movs[1].Cantidad.Equal(decimal.RequireFromString("15")))
}

func TestAjustarInventario_DisminucionManual(t *testing.T) {
	f := newFixture(t)
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       10,
	})
	require.NoError(t, err)

	nueva := 4
	_, err = f.uc.Ajustar(context.Background(), "u1", inv.ID, dto.AjustarInventarioRequest{
		Cantidad: &nueva,
	})
	require.NoError(t, err)

	movs := f.store.Movimientos.Todos()
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovimientoTipoSalida, movs[1].Tipo)
	assert.True(t, movs[1].Cantidad.Equal(decimal.RequireFromString("6")))
}

func TestAjustarInventario_Empaque(t *testing.T) {
	f := newFixture(t)
	loteID := f.lote.ID
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		LoteID:         &loteID,
		Cantidad:       0,
	})
	require.NoError(t, err)

	// Embolsar 10 bolsas de 5kg descuenta 50kg del lote
	nueva := 10
	out, err := f.uc.Ajustar(context.Background(), "u1", inv.ID, dto.AjustarInventarioRequest{
		Cantidad: &nueva,
		Empaque:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, out.Cantidad)

	lote, err := f.store.Lotes.GetByID(f.lote.ID)
	require.NoError(t, err)
	assert.True(t, lote.CantidadDisponibleKg.Equal(decimal.RequireFromString("50")))
}

func TestAjustarInventario_EmpaqueSinStockEnLote(t *testing.T) {
	f := newFixture(t)
	loteID := f.lote.ID
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		LoteID:         &loteID,
	})
	require.NoError(t, err)

	// 30 bolsas de 5kg requieren 150kg; el lote solo tiene 100kg
	nueva := 30
	_, err = f.uc.Ajustar(context.Background(), "u1", inv.ID, dto.AjustarInventarioRequest{
		Cantidad: &nueva,
		Empaque:  true,
	})
	assert.True(t, errors.Is(err, domain.ErrLoteInsuficiente))

	lote, err := f.store.Lotes.GetByID(f.lote.ID)
	require.NoError(t, err)
	assert.True(t, lote.CantidadDisponibleKg.Equal(decimal.RequireFromString("100")))
}

func TestAjustarInventario_EmpaqueSinLoteAsociado(t *testing.T) {
	f := newFixture(t)
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
	})
	require.NoError(t, err)

	nueva := 5
	_, err = f.uc.Ajustar(context.Background(), "u1", inv.ID, dto.AjustarInventarioRequest{
		Cantidad: &nueva,
		Empaque:  true,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestAjustarInventario_SoloStockMinimo(t *testing.T) {
	f := newFixture(t)
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       10,
	})
	require.NoError(t, err)

	minimo := 8
	out, err := f.uc.Ajustar(context.Background(), "u1", inv.ID, dto.AjustarInventarioRequest{
		StockMinimo: &minimo,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, out.StockMinimo)
	assert.Equal(t, 10, out.Cantidad)

	// Sin cambio de cantidad no hay movimiento nuevo
	assert.Len(t, f.store.Movimientos.Todos(), 1)
}

// ─────────────────────────────────────────────────────────────
// EliminarRegistro
// ─────────────────────────────────────────────────────────────

func TestEliminarRegistro_ConHistorial(t *testing.T) {
	f := newFixture(t)
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       10, // deja movimiento de saldo inicial
	})
	require.NoError(t, err)

	err = f.uc.EliminarRegistro(context.Background(), "u1", inv.ID)
	assert.True(t, errors.Is(err, domain.ErrInventarioConMovs))

	sigue, err := f.store.Inventarios.GetByID(inv.ID)
	require.NoError(t, err)
	assert.NotNil(t, sigue)
}

func TestEliminarRegistro_SinHistorial(t *testing.T) {
	f := newFixture(t)
	inv, err := f.uc.Crear(context.Background(), "u1", dto.CrearInventarioRequest{
		PresentacionID: f.pres.ID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       0,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.EliminarRegistro(context.Background(), "u1", inv.ID))

	eliminado, err := f.store.Inventarios.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Nil(t, eliminado)
}
