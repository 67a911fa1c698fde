package repository

import (
	"time"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// VentaFilter filtros para listados de ventas.
type VentaFilter struct {
	ClienteID  string
	AlmacenID  string
	VendedorID string
	EstadoPago string
	Desde      *time.Time
	Hasta      *time.Time
}

// VentaRepository define el puerto de persistencia para Venta y sus detalles.
type VentaRepository interface {
	// Create inserta la venta y todas sus líneas.
	Create(venta *entity.Venta) error
	// GetByID devuelve la venta con sus detalles cargados.
	GetByID(id string) (*entity.Venta, error)
	// GetForUpdate bloquea la fila de la venta (serializa pagos concurrentes
	// contra la misma venta).
	GetForUpdate(id string) (*entity.Venta, error)
	UpdateEstadoPago(id, estado string) error
	List(f VentaFilter, limit, offset int) ([]*entity.Venta, error)
	// Delete elimina la venta; detalles y pagos caen en cascada.
	Delete(id string) error
}
