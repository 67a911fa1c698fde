package repository

import (
	"time"

	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// MovimientoFilter filtros para listados del libro de movimientos.
type MovimientoFilter struct {
	PresentacionID string
	AlmacenID      string
	LoteID         string
	Tipo           string
	Desde          *time.Time
	Hasta          *time.Time
}

// MovimientoRepository define el puerto del libro de auditoría de inventario.
// El libro es append-only: no hay Update. Delete existe únicamente para la
// reversión de ventas, que elimina las salidas originales y las reemplaza por
// entradas compensatorias.
type MovimientoRepository interface {
	Create(mov *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	// ListSalidasPorVenta devuelve los movimientos de salida correlacionados
	// a una venta por su columna venta_id.
	ListSalidasPorVenta(ventaID string) ([]*entity.Movimiento, error)
	// ExistePara indica si hay movimientos para (presentación, almacén);
	// se usa para rechazar la eliminación de inventarios con historial.
	ExistePara(presentacionID, almacenID string) (bool, error)
	List(f MovimientoFilter, limit, offset int) ([]*entity.Movimiento, error)
	Delete(id string) error
}
