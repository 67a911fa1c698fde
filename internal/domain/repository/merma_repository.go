package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// MermaRepository define el puerto de persistencia para Merma.
type MermaRepository interface {
	Create(merma *entity.Merma) error
	GetByID(id string) (*entity.Merma, error)
	List(loteID string, convertido *bool, limit, offset int) ([]*entity.Merma, error)
	Delete(id string) error
}
