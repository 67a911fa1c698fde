package ports

import (
	"context"

	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
// El TxRunner los construye sobre la tx y los pasa al callback del caso de uso.
type Repos struct {
	Inventarios    repository.InventarioRepository
	Movimientos    repository.MovimientoRepository
	Lotes          repository.LoteRepository
	Ventas         repository.VentaRepository
	Pagos          repository.PagoRepository
	Clientes       repository.ClienteRepository
	Pedidos        repository.PedidoRepository
	Presentaciones repository.PresentacionRepository
	Mermas         repository.MermaRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cualquier error del callback hace rollback de
// todo; garantiza la atomicidad del motor de stock y dinero.
type TxRunner interface {
	Run(ctx context.Context, fn func(r *Repos) error) error
}
