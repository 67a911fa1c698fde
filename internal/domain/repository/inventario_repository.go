package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// InventarioFilter filtros opcionales para listados de inventario.
type InventarioFilter struct {
	PresentacionID string
	AlmacenID      string
	LoteID         string
	BajoMinimo     bool // solo filas con cantidad < stock_minimo
}

// InventarioRepository define el puerto para la fila mutable de existencias.
// Todo escritor debe bloquear la fila (variantes ForUpdate) antes de leer la
// cantidad; leer sin bloquear dentro de un caso de uso mutador es un bug.
type InventarioRepository interface {
	Create(inv *entity.Inventario) error
	GetByID(id string) (*entity.Inventario, error)
	// GetByIDForUpdate bloquea la fila por ID (SELECT FOR UPDATE).
	GetByIDForUpdate(id string) (*entity.Inventario, error)
	Get(presentacionID, almacenID string) (*entity.Inventario, error)
	// GetForUpdate bloquea la fila por (presentación, almacén). Devuelve nil
	// sin error si no existe registro.
	GetForUpdate(presentacionID, almacenID string) (*entity.Inventario, error)
	Update(inv *entity.Inventario) error
	List(f InventarioFilter, limit, offset int) ([]*entity.Inventario, error)
	Delete(id string) error
}
