package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// PresentacionRepository define el puerto de persistencia para Presentacion.
type PresentacionRepository interface {
	Create(presentacion *entity.Presentacion) error
	GetByID(id string) (*entity.Presentacion, error)
	// GetByProductoYTipo busca la presentación de un tipo dado para un producto
	// (ej. la presentación "briqueta" al convertir mermas).
	GetByProductoYTipo(productoID, tipo string) (*entity.Presentacion, error)
	Update(presentacion *entity.Presentacion) error
	List(productoID string, soloActivas bool, limit, offset int) ([]*entity.Presentacion, error)
	Delete(id string) error
}
