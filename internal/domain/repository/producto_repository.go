package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	List(limit, offset int) ([]*entity.Producto, error)
	Delete(id string) error
}
