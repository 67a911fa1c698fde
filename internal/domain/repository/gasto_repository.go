package repository

import (
	"time"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// GastoRepository define el puerto de persistencia para Gasto.
type GastoRepository interface {
	Create(gasto *entity.Gasto) error
	GetByID(id string) (*entity.Gasto, error)
	Update(gasto *entity.Gasto) error
	List(categoria string, desde, hasta *time.Time, limit, offset int) ([]*entity.Gasto, error)
	Delete(id string) error
}
