package recibo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvaldes/acopio-api/internal/application/apptest"
	"github.com/jdvaldes/acopio-api/internal/application/recibo"
	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// gen de prueba: captura los datos y devuelve bytes fijos.
type capturaGenerator struct {
	datos *recibo.DatosRecibo
	err   error
}

func (g *capturaGenerator) GenerateReciboPDF(_ context.Context, datos *recibo.DatosRecibo) ([]byte, error) {
	g.datos = datos
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func nuevoFixture(t *testing.T) (*apptest.Store, *capturaGenerator, *recibo.UseCase) {
	t.Helper()
	store := apptest.NewStore()
	gen := &capturaGenerator{}
	uc := recibo.NewUseCase(
		store.Ventas, store.Clientes, store.Almacenes,
		store.Presentaciones, store.Pagos, gen,
	)
	return store, gen, uc
}

// ── DownloadReciboPDF ─────────────────────────────────────────────────────────

func TestDownloadReciboPDF_EnriqueceDatos(t *testing.T) {
	store, gen, uc := nuevoFixture(t)

	cliente := &entity.Cliente{ID: uuid.NewString(), Nombre: "Doña Marta", Telefono: "311"}
	require.NoError(t, store.Clientes.Create(cliente))
	almacen := &entity.Almacen{ID: uuid.NewString(), Nombre: "Bodega Norte", Ciudad: "Cúcuta"}
	require.NoError(t, store.Almacenes.Create(almacen))
	pres := &entity.Presentacion{
		ID: uuid.NewString(), Nombre: "Bolsa 5kg",
		CapacidadKg: decimal.RequireFromString("5"), Activo: true,
	}
	require.NoError(t, store.Presentaciones.Create(pres))

	venta := &entity.Venta{
		ID:        uuid.NewString(),
		ClienteID: cliente.ID, AlmacenID: almacen.ID,
		Fecha:      time.Now(),
		Total:      decimal.RequireFromString("100.00"),
		TipoPago:   entity.TipoPagoCredito,
		EstadoPago: entity.EstadoPagoParcial,
		Detalles: []entity.VentaDetalle{
			{ID: uuid.NewString(), PresentacionID: pres.ID, Cantidad: 4, PrecioUnitario: decimal.RequireFromString("25.00")},
		},
	}
	require.NoError(t, store.Ventas.Create(venta))
	require.NoError(t, store.Pagos.Create(&entity.Pago{
		ID: uuid.NewString(), VentaID: venta.ID,
		Monto: decimal.RequireFromString("40.00"), Fecha: time.Now(),
	}))

	pdfBytes, filename, err := uc.DownloadReciboPDF(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "recibo_"+venta.ID+".pdf", filename)

	require.NotNil(t, gen.datos)
	assert.Equal(t, "Doña Marta", gen.datos.Cliente.Nombre)
	assert.Equal(t, "Bodega Norte", gen.datos.Almacen.Nombre)
	require.Len(t, gen.datos.Lineas, 1)
	assert.Equal(t, "Bolsa 5kg", gen.datos.Lineas[0].NombrePresentacion)
	assert.True(t, gen.datos.Pagado.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, gen.datos.Saldo.Equal(decimal.RequireFromString("60.00")))
}

func TestDownloadReciboPDF_VentaInexistente(t *testing.T) {
	_, _, uc := nuevoFixture(t)

	_, _, err := uc.DownloadReciboPDF(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
