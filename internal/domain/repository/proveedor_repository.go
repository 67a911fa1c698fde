package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor.
type ProveedorRepository interface {
	// Create inserta el proveedor; un nombre repetido devuelve ErrDuplicate.
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	List(nombre string, limit, offset int) ([]*entity.Proveedor, error)
	Delete(id string) error
}
