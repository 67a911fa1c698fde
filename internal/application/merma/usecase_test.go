package merma

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
	store    *apptest.Store
	uc       *UseCase
	lote     *entity.Lote
	briqueta *entity.Presentacion
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := apptest.NewStore()
	runner := &apptest.FakeTxRunner{Store: store}
	uc := NewUseCase(runner, store.Mermas, store.Lotes)

	producto := &entity.Producto{ID: uuid.New().String(), Nombre: "Carbón vegetal"}
	require.NoError(t, store.Productos.Create(producto))
	almacen := &entity.Almacen{ID: uuid.New().String(), Nombre: "Principal"}
	require.NoError(t, store.Almacenes.Create(almacen))

	lote := &entity.Lote{
		ID:                   uuid.New().String(),
		ProductoID:           producto.ID,
		AlmacenID:            almacen.ID,
		PesoHumedoKg:         decimal.RequireFromString("500"),
		CantidadDisponibleKg: decimal.RequireFromString("100"),
	}
	require.NoError(t, store.Lotes.Create(lote))

	briqueta := &entity.Presentacion{
		ID:          uuid.New().String(),
		ProductoID:  producto.ID,
		Nombre:      "Briqueta 1kg",
		CapacidadKg: decimal.RequireFromString("1"),
		Tipo:        entity.PresentacionTipoBriqueta,
		PrecioVenta: decimal.RequireFromString("3.50"),
		Activo:      true,
	}
	require.NoError(t, store.Presentaciones.Create(briqueta))

	return &fixture{store: store, uc: uc, lote: lote, briqueta: briqueta}
}

func (f *fixture) disponibleLote(t *testing.T) decimal.Decimal {
	t.Helper()
	lote, err := f.store.Lotes.GetByID(f.lote.ID)
	require.NoError(t, err)
	require.NotNil(t, lote)
	return lote.CantidadDisponibleKg
}

// ─────────────────────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────────────────────

func TestCrearMerma_SinConversion(t *testing.T) {
	f := newFixture(t)

	merma, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:     f.lote.ID,
		CantidadKg: decimal.RequireFromString("12.5"),
	})
	require.NoError(t, err)
	assert.False(t, merma.ConvertidoABriquetas)

	// El lote pierde los kg; sin conversión no hay inventario ni movimientos
	assert.True(t, f.disponibleLote(t).Equal(decimal.RequireFromString("87.5")))
	assert.Empty(t, f.store.Movimientos.Todos())
}

func TestCrearMerma_ConvertidaABriquetas(t *testing.T) {
	f := newFixture(t)

	merma, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:               f.lote.ID,
		CantidadKg:           decimal.RequireFromString("20.7"),
		ConvertidoABriquetas: true,
	})
	require.NoError(t, err)

	assert.True(t, f.disponibleLote(t).Equal(decimal.RequireFromString("79.3")))

	// Se acreditan floor(20.7) = 20 briquetas en el almacén del lote
	inv, err := f.store.Inventarios.Get(f.briqueta.ID, f.lote.AlmacenID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, 20, inv.Cantidad)

	// Con movimiento de entrada que referencia la merma
	movs := f.store.Movimientos.Todos()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovimientoTipoEntrada, movs[0].Tipo)
	assert.Equal(t, f.briqueta.ID, movs[0].PresentacionID)
	assert.Contains(t, movs[0].Motivo, merma.ID)
	assert.True(t, movs[0].Cantidad.Equal(decimal.RequireFromString("20")))
}

func TestCrearMerma_AcumulaInventarioExistente(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Inventarios.Create(&entity.Inventario{
		ID:             uuid.New().String(),
		PresentacionID: f.briqueta.ID,
		AlmacenID:      f.lote.AlmacenID,
		Cantidad:       5,
	}))

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:               f.lote.ID,
		CantidadKg:           decimal.RequireFromString("10"),
		ConvertidoABriquetas: true,
	})
	require.NoError(t, err)

	inv, err := f.store.Inventarios.Get(f.briqueta.ID, f.lote.AlmacenID)
	require.NoError(t, err)
	assert.Equal(t, 15, inv.Cantidad)
}

func TestCrearMerma_ExcedeDisponibleDelLote(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:     f.lote.ID,
		CantidadKg: decimal.RequireFromString("150"),
	})
	assert.True(t, errors.Is(err, domain.ErrLoteInsuficiente))
	assert.True(t, f.disponibleLote(t).Equal(decimal.RequireFromString("100")))
}

func TestCrearMerma_SinPresentacionBriqueta(t *testing.T) {
	f := newFixture(t)
	f.briqueta.Activo = false
	require.NoError(t, f.store.Presentaciones.Update(f.briqueta))

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:               f.lote.ID,
		CantidadKg:           decimal.RequireFromString("10"),
		ConvertidoABriquetas: true,
	})
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestCrearMerma_CantidadNoPositiva(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:     f.lote.ID,
		CantidadKg: decimal.Zero,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ─────────────────────────────────────────────────────────────
// Eliminar
// ─────────────────────────────────────────────────────────────

func TestEliminarMerma_RestauraLoteYBriquetas(t *testing.T) {
	f := newFixture(t)

	merma, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:               f.lote.ID,
		CantidadKg:           decimal.RequireFromString("20"),
		ConvertidoABriquetas: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Eliminar(context.Background(), "u1", merma.ID))

	// Lote restaurado, briquetas retiradas, salida compensatoria registrada
	assert.True(t, f.disponibleLote(t).Equal(decimal.RequireFromString("100")))
	inv, err := f.store.Inventarios.Get(f.briqueta.ID, f.lote.AlmacenID)
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Cantidad)

	movs := f.store.Movimientos.Todos()
	require.Len(t, movs, 2)
	assert.Equal(t, entity.MovimientoTipoSalida, movs[1].Tipo)

	eliminada, err := f.store.Mermas.GetByID(merma.ID)
	require.NoError(t, err)
	assert.Nil(t, eliminada)
}

func TestEliminarMerma_BriquetasYaVendidas(t *testing.T) {
	f := newFixture(t)

	merma, err := f.uc.Crear(context.Background(), "u1", dto.CrearMermaRequest{
		LoteID:               f.lote.ID,
		CantidadKg:           decimal.RequireFromString("20"),
		ConvertidoABriquetas: true,
	})
	require.NoError(t, err)

	// Alguien vendió parte de las briquetas acreditadas
	inv, err := f.store.Inventarios.Get(f.briqueta.ID, f.lote.AlmacenID)
	require.NoError(t, err)
	inv.Cantidad = 3
	require.NoError(t, f.store.Inventarios.Update(inv))

	err = f.uc.Eliminar(context.Background(), "u1", merma.ID)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}
