package repository

import "github.com/jdvaldes/acopio-api/internal/domain/entity"

// PedidoFilter filtros para listados de pedidos.
type PedidoFilter struct {
	ClienteID  string
	AlmacenID  string
	VendedorID string
	Estado     string
}

// PedidoRepository define el puerto de persistencia para Pedido y sus detalles.
type PedidoRepository interface {
	// Create inserta el pedido y todas sus líneas.
	Create(pedido *entity.Pedido) error
	// GetByID devuelve el pedido con sus detalles cargados.
	GetByID(id string) (*entity.Pedido, error)
	// GetForUpdate carga el pedido bloqueando su fila; dos conversiones
	// concurrentes del mismo pedido quedan serializadas aquí.
	GetForUpdate(id string) (*entity.Pedido, error)
	Update(pedido *entity.Pedido) error
	UpdateEstado(id, estado string) error
	List(f PedidoFilter, limit, offset int) ([]*entity.Pedido, error)
	Delete(id string) error
}
