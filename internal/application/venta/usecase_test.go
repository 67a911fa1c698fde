package venta

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvaldes/acopio-api/internal/application/apptest"
	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

func ventasDeCliente(clienteID string) repository.VentaFilter {
	return repository.VentaFilter{ClienteID: clienteID}
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

type fixture struct {
	store    *apptest.Store
	uc       *UseCase
	cliente  *entity.Cliente
	almacen  *entity.Almacen
	presA    *entity.Presentacion
	presB    *entity.Presentacion
	vendedor string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := apptest.NewStore()
	runner := &apptest.FakeTxRunner{Store: store}
	uc := NewUseCase(runner, store.Clientes, store.Almacenes, store.Presentaciones, store.Ventas)

	producto := &entity.Producto{ID: uuid.New().String(), Nombre: "Carbón vegetal"}
	require.NoError(t, store.Productos.Create(producto))

	almacen := &entity.Almacen{ID: uuid.New().String(), Nombre: "Principal"}
	require.NoError(t, store.Almacenes.Create(almacen))

	cliente := &entity.Cliente{ID: uuid.New().String(), Nombre: "Restaurante El Fogón"}
	require.NoError(t, store.Clientes.Create(cliente))

	presA := &entity.Presentacion{
		ID:          uuid.New().String(),
		ProductoID:  producto.ID,
		Nombre:      "Bolsa 5kg",
		CapacidadKg: decimal.RequireFromString("5"),
		Tipo:        entity.PresentacionTipoProcesado,
		PrecioVenta: decimal.RequireFromString("25.00"),
		Activo:      true,
	}
	presB := &entity.Presentacion{
		ID:          uuid.New().String(),
		ProductoID:  producto.ID,
		Nombre:      "Saco 20kg",
		CapacidadKg: decimal.RequireFromString("20"),
		Tipo:        entity.PresentacionTipoBruto,
		PrecioVenta: decimal.RequireFromString("80.00"),
		Activo:      true,
	}
	require.NoError(t, store.Presentaciones.Create(presA))
	require.NoError(t, store.Presentaciones.Create(presB))

	return &fixture{
		store:    store,
		uc:       uc,
		cliente:  cliente,
		almacen:  almacen,
		presA:    presA,
		presB:    presB,
		vendedor: uuid.New().String(),
	}
}

func (f *fixture) seedInventario(t *testing.T, presentacionID string, cantidad int) *entity.Inventario {
	t.Helper()
	inv := &entity.Inventario{
		ID:             uuid.New().String(),
		PresentacionID: presentacionID,
		AlmacenID:      f.almacen.ID,
		Cantidad:       cantidad,
		StockMinimo:    5,
	}
	require.NoError(t, f.store.Inventarios.Create(inv))
	return inv
}

func (f *fixture) cantidadEnStock(t *testing.T, presentacionID string) int {
	t.Helper()
	inv, err := f.store.Inventarios.Get(presentacionID, f.almacen.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	return inv.Cantidad
}

// ─────────────────────────────────────────────────────────────
// Crear
// ─────────────────────────────────────────────────────────────

func TestCrearVenta_MultiLinea(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 50)
	f.seedInventario(t, f.presB.ID, 10)

	venta, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 4},
			{PresentacionID: f.presB.ID, Cantidad: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, venta)

	// Total = 4*25 + 2*80 = 260, estado inicial pendiente
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("260")), "total=%s", venta.Total)
	assert.Equal(t, entity.EstadoPagoPendiente, venta.EstadoPago)
	assert.Len(t, venta.Detalles, 2)

	// Inventario decrementado en ambas presentaciones
	assert.Equal(t, 46, f.cantidadEnStock(t, f.presA.ID))
	assert.Equal(t, 8, f.cantidadEnStock(t, f.presB.ID))

	// Un movimiento de salida por línea, correlacionado por venta_id
	salidas, err := f.store.Movimientos.ListSalidasPorVenta(venta.ID)
	require.NoError(t, err)
	require.Len(t, salidas, 2)
	for _, mov := range salidas {
		assert.Equal(t, entity.MovimientoTipoSalida, mov.Tipo)
		assert.Equal(t, f.almacen.ID, mov.AlmacenID)
		assert.Equal(t, f.vendedor, mov.UsuarioID)
		require.NotNil(t, mov.VentaID)
		assert.Equal(t, venta.ID, *mov.VentaID)
	}
}

func TestCrearVenta_PrecioPersonalizado(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 10)

	precio := decimal.RequireFromString("22.50")
	venta, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 2, PrecioUnitario: &precio},
		},
	})
	require.NoError(t, err)

	// El precio acordado congela la línea, no el precio de catálogo
	assert.True(t, venta.Detalles[0].PrecioUnitario.Equal(precio))
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("45")))
}

func TestCrearVenta_PrecioCeroExplicito(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 10)

	// Cero explícito es un precio válido (regalo); solo nil significa
	// "usar el precio de catálogo"
	cero := decimal.Zero
	venta, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 3, PrecioUnitario: &cero},
		},
	})
	require.NoError(t, err)
	assert.True(t, venta.Detalles[0].PrecioUnitario.IsZero())
	assert.True(t, venta.Total.IsZero())
	assert.Equal(t, 7, f.cantidadEnStock(t, f.presA.ID))
}

func TestCrearVenta_VentasSucesivasAgotanStock(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 5)

	pedir := func() (*entity.Venta, error) {
		return f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
			ClienteID: f.cliente.ID,
			AlmacenID: f.almacen.ID,
			TipoPago:  entity.TipoPagoContado,
			Detalles: []dto.VentaDetalleRequest{
				{PresentacionID: f.presA.ID, Cantidad: 3},
			},
		})
	}

	_, err := pedir()
	require.NoError(t, err)

	// La segunda venta ve el stock ya descontado y se rechaza entera
	_, err = pedir()
	var stockErr *StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Solicitado)
	assert.Equal(t, 2, stockErr.Disponible)
	assert.Equal(t, 2, f.cantidadEnStock(t, f.presA.ID))
}

func TestCrearVenta_StockInsuficiente_SinEfectosParciales(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 50)
	f.seedInventario(t, f.presB.ID, 1) // insuficiente para la segunda línea

	_, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 4},
			{PresentacionID: f.presB.ID, Cantidad: 2},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var stockErr *StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, f.presB.ID, stockErr.PresentacionID)
	assert.Equal(t, 2, stockErr.Solicitado)
	assert.Equal(t, 1, stockErr.Disponible)

	// Nada cambió: ni inventarios, ni ventas, ni movimientos
	assert.Equal(t, 50, f.cantidadEnStock(t, f.presA.ID))
	assert.Equal(t, 1, f.cantidadEnStock(t, f.presB.ID))
	ventas, err := f.store.Ventas.List(ventasDeCliente(f.cliente.ID), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, ventas)
	assert.Empty(t, f.store.Movimientos.Todos())
}

func TestCrearVenta_SinInventarioRegistrado(t *testing.T) {
	f := newFixture(t)
	// presA nunca tuvo fila de inventario en este almacén

	_, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 1},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
}

func TestCrearVenta_PresentacionInactiva(t *testing.T) {
	f := newFixture(t)
	f.presA.Activo = false
	require.NoError(t, f.store.Presentaciones.Update(f.presA))
	f.seedInventario(t, f.presA.ID, 10)

	_, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 1},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestCrearVenta_ClienteInexistente(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 10)

	_, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: uuid.New().String(),
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoContado,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 1},
		},
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCrearVenta_ActualizaProyeccionCliente(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 50)

	consumo := decimal.RequireFromString("10") // kg/día
	_, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID:       f.cliente.ID,
		AlmacenID:       f.almacen.ID,
		TipoPago:        entity.TipoPagoContado,
		ConsumoDiarioKg: &consumo,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 4}, // total 100
		},
	})
	require.NoError(t, err)

	cliente, err := f.store.Clientes.GetByID(f.cliente.ID)
	require.NoError(t, err)
	require.NotNil(t, cliente.UltimaFechaCompra)
	require.NotNil(t, cliente.FrecuenciaCompraDias)
	// frecuencia = round(100 / 10) = 10 días
	assert.Equal(t, 10, *cliente.FrecuenciaCompraDias)
	assert.WithinDuration(t, time.Now(), *cliente.UltimaFechaCompra, 5*time.Second)
}

// ─────────────────────────────────────────────────────────────
// Eliminar (reversión)
// ─────────────────────────────────────────────────────────────

func TestEliminarVenta_RestauraStockYCompensa(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 50)
	f.seedInventario(t, f.presB.ID, 10)

	venta, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoCredito,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 4},
			{PresentacionID: f.presB.ID, Cantidad: 2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 46, f.cantidadEnStock(t, f.presA.ID))

	require.NoError(t, f.uc.Eliminar(context.Background(), f.vendedor, venta.ID))

	// Stock restaurado al estado previo
	assert.Equal(t, 50, f.cantidadEnStock(t, f.presA.ID))
	assert.Equal(t, 10, f.cantidadEnStock(t, f.presB.ID))

	// La venta ya no existe
	eliminada, err := f.store.Ventas.GetByID(venta.ID)
	require.NoError(t, err)
	assert.Nil(t, eliminada)

	// Las salidas originales fueron reemplazadas por entradas compensatorias
	salidas, err := f.store.Movimientos.ListSalidasPorVenta(venta.ID)
	require.NoError(t, err)
	assert.Empty(t, salidas)
	todos := f.store.Movimientos.Todos()
	require.Len(t, todos, 2)
	for _, mov := range todos {
		assert.Equal(t, entity.MovimientoTipoEntrada, mov.Tipo)
		assert.Contains(t, mov.Motivo, venta.ID)
	}
}

func TestEliminarVenta_ConPagosRegistrados(t *testing.T) {
	f := newFixture(t)
	f.seedInventario(t, f.presA.ID, 10)

	venta, err := f.uc.Crear(context.Background(), f.vendedor, dto.CrearVentaRequest{
		ClienteID: f.cliente.ID,
		AlmacenID: f.almacen.ID,
		TipoPago:  entity.TipoPagoCredito,
		Detalles: []dto.VentaDetalleRequest{
			{PresentacionID: f.presA.ID, Cantidad: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.store.Pagos.Create(&entity.Pago{
		ID:         uuid.New().String(),
		VentaID:    venta.ID,
		Monto:      decimal.RequireFromString("20"),
		MetodoPago: entity.MetodoPagoEfectivo,
	}))

	err = f.uc.Eliminar(context.Background(), f.vendedor, venta.ID)
	assert.True(t, errors.Is(err, domain.ErrVentaConPagos))

	// La venta sigue intacta y el stock no se tocó
	intacta, err := f.store.Ventas.GetByID(venta.ID)
	require.NoError(t, err)
	assert.NotNil(t, intacta)
	assert.Equal(t, 8, f.cantidadEnStock(t, f.presA.ID))
}

func TestGetVenta_Inexistente(t *testing.T) {
	f := newFixture(t)

	// El id desconocido debe traducirse a NotFound, nunca a (nil, nil):
	// el handler derreferencia la venta devuelta.
	v, err := f.uc.GetByID(uuid.New().String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Nil(t, v)
}

func TestEliminarVenta_Inexistente(t *testing.T) {
	f := newFixture(t)
	err := f.uc.Eliminar(context.Background(), f.vendedor, uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
