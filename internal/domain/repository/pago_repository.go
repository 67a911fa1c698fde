package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// PagoRepository define el puerto de persistencia para Pago.
type PagoRepository interface {
	Create(pago *entity.Pago) error
	GetByID(id string) (*entity.Pago, error)
	ListByVenta(ventaID string) ([]*entity.Pago, error)
	List(ventaID, metodoPago string, limit, offset int) ([]*entity.Pago, error)
	Delete(id string) error
}
