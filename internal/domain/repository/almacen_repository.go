package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// AlmacenRepository define el puerto de persistencia para Almacen.
type AlmacenRepository interface {
	Create(almacen *entity.Almacen) error
	GetByID(id string) (*entity.Almacen, error)
	Update(almacen *entity.Almacen) error
	List(limit, offset int) ([]*entity.Almacen, error)
	Delete(id string) error
}
