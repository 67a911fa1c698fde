package usecase

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

func newProveedorUseCase(t *testing.T) (*ProveedorUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	return NewProveedorUseCase(store.Proveedores), store
}

func TestCrearProveedor(t *testing.T) {
	uc, _ := newProveedorUseCase(t)

	p, err := uc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:   "Carbones del Sinú",
		Telefono: "3001234567",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Carbones del Sinú", p.Nombre)
}

func TestCrearProveedor_NombreDuplicado(t *testing.T) {
	uc, _ := newProveedorUseCase(t)

	_, err := uc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Carbones del Sinú"})
	require.NoError(t, err)

	_, err = uc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Carbones del Sinú"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestActualizarProveedor(t *testing.T) {
	uc, _ := newProveedorUseCase(t)

	p, err := uc.Crear(context.Background(), dto.CrearProveedorRequest{Nombre: "Acopio Norte"})
	require.NoError(t, err)

	tel := "3109876543"
	actualizado, err := uc.Actualizar(context.Background(), p.ID, dto.ActualizarProveedorRequest{Telefono: &tel})
	require.NoError(t, err)
	assert.Equal(t, tel, actualizado.Telefono)
	assert.Equal(t, "Acopio Norte", actualizado.Nombre)
}

func TestProveedor_Inexistente(t *testing.T) {
	uc, _ := newProveedorUseCase(t)

	_, err := uc.GetByID(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = uc.Eliminar(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCrearLote_ConProveedor(t *testing.T) {
	store := apptest.NewStore()
	uc := NewLoteUseCase(store.Lotes, store.Productos, store.Almacenes, store.Proveedores)

	producto := &entity.Producto{ID: uuid.New().String(), Nombre: "Carbón vegetal"}
	require.NoError(t, store.Productos.Create(producto))
	almacen := &entity.Almacen{ID: uuid.New().String(), Nombre: "Principal"}
	require.NoError(t, store.Almacenes.Create(almacen))
	proveedor := &entity.Proveedor{ID: uuid.New().String(), Nombre: "Carbones del Sinú"}
	require.NoError(t, store.Proveedores.Create(proveedor))

	lote, err := uc.Crear(context.Background(), dto.CrearLoteRequest{
		ProductoID:   producto.ID,
		AlmacenID:    almacen.ID,
		ProveedorID:  &proveedor.ID,
		PesoHumedoKg: decimal.RequireFromString("500"),
	})
	require.NoError(t, err)
	require.NotNil(t, lote.ProveedorID)
	assert.Equal(t, proveedor.ID, *lote.ProveedorID)
}

func TestCrearLote_ProveedorInexistente(t *testing.T) {
	store := apptest.NewStore()
	uc := NewLoteUseCase(store.Lotes, store.Productos, store.Almacenes, store.Proveedores)

	producto := &entity.Producto{ID: uuid.New().String(), Nombre: "Carbón vegetal"}
	require.NoError(t, store.Productos.Create(producto))
	almacen := &entity.Almacen{ID: uuid.New().String(), Nombre: "Principal"}
	require.NoError(t, store.Almacenes.Create(almacen))

	fantasma := uuid.New().String()
	_, err := uc.Crear(context.Background(), dto.CrearLoteRequest{
		ProductoID:   producto.ID,
		AlmacenID:    almacen.ID,
		ProveedorID:  &fantasma,
		PesoHumedoKg: decimal.RequireFromString("500"),
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
