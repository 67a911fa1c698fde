package repository

import (
	"time"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	// ActualizarProyeccion actualiza los campos de proyección de recompra
	// (efecto secundario de la creación de ventas, dentro de la misma tx).
	ActualizarProyeccion(id string, ultimaCompra time.Time, frecuenciaDias int) error
	// Search busca por nombre sin distinguir acentos ni mayúsculas.
	Search(nombre string, limit, offset int) ([]*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Delete(id string) error
}
