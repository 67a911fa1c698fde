package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// LoteRepository define el puerto de persistencia para Lote.
// GetForUpdate se usa dentro de transacciones para serializar el consumo del lote.
type LoteRepository interface {
	Create(lote *entity.Lote) error
	GetByID(id string) (*entity.Lote, error)
	// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Lote, error)
	Update(lote *entity.Lote) error
	List(productoID string, limit, offset int) ([]*entity.Lote, error)
	Delete(id string) error
}
