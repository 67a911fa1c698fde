package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository sobre PostgreSQL (usable con
// pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

const pedidoCols = `id, cliente_id, almacen_id, vendedor_id, fecha_entrega, estado, notas, fecha_creacion`

// Create inserta el pedido y todas sus líneas.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, cliente_id, almacen_id, vendedor_id, fecha_entrega, estado, notas, fecha_creacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.ClienteID, pedido.AlmacenID, pedido.VendedorID,
		pedido.FechaEntrega, pedido.Estado, pedido.Notas, pedido.FechaCreacion,
	)
	if err != nil {
		return fmt.Errorf("create pedido: %w", err)
	}
	detalleQuery := `
		INSERT INTO pedido_detalles (id, pedido_id, presentacion_id, cantidad, precio_estimado)
		VALUES ($1, $2, $3, $4, $5)`
	for _, d := range pedido.Detalles {
		if _, err := r.q.Exec(context.Background(), detalleQuery,
			d.ID, d.PedidoID, d.PresentacionID, d.Cantidad, d.PrecioEstimado); err != nil {
			return fmt.Errorf("create pedido detalle: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con sus detalles. Devuelve nil sin error si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene el pedido bloqueando su fila (serializa conversiones
// concurrentes del mismo pedido). Los detalles no se bloquean.
func (r *PedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) {
	return r.get(id, true)
}

func (r *PedidoRepo) get(id string, forUpdate bool) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClienteID, &p.AlmacenID, &p.VendedorID,
		&p.FechaEntrega, &p.Estado, &p.Notas, &p.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}

	detalleQuery := `
		SELECT id, pedido_id, presentacion_id, cantidad, precio_estimado
		FROM pedido_detalles WHERE pedido_id = $1 ORDER BY presentacion_id`
	rows, err := r.q.Query(context.Background(), detalleQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list pedido detalles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.PedidoDetalle
		if err := rows.Scan(&d.ID, &d.PedidoID, &d.PresentacionID, &d.Cantidad, &d.PrecioEstimado); err != nil {
			return nil, fmt.Errorf("scan pedido detalle: %w", err)
		}
		p.Detalles = append(p.Detalles, d)
	}
	return &p, rows.Err()
}

// Update persiste cabecera del pedido (las líneas no se editan).
func (r *PedidoRepo) Update(pedido *entity.Pedido) error {
	query := `
		UPDATE pedidos SET fecha_entrega = $2, estado = $3, notas = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.FechaEntrega, pedido.Estado, pedido.Notas)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pedido %s: %w", pedido.ID, domain.ErrNotFound)
	}
	return nil
}

// UpdateEstado cambia solo el estado.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List lista pedidos (sin detalles) con filtros, próximos a entregar primero.
func (r *PedidoRepo) List(f repository.PedidoFilter, limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoCols + ` FROM pedidos WHERE 1=1`
	args := []any{}
	pos := 1
	if f.ClienteID != "" {
		query += fmt.Sprintf(" AND cliente_id = $%d", pos)
		args = append(args, f.ClienteID)
		pos++
	}
	if f.AlmacenID != "" {
		query += fmt.Sprintf(" AND almacen_id = $%d", pos)
		args = append(args, f.AlmacenID)
		pos++
	}
	if f.VendedorID != "" {
		query += fmt.Sprintf(" AND vendedor_id = $%d", pos)
		args = append(args, f.VendedorID)
		pos++
	}
	if f.Estado != "" {
		query += fmt.Sprintf(" AND estado = $%d", pos)
		args = append(args, f.Estado)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha_entrega ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.ClienteID, &p.AlmacenID, &p.VendedorID,
			&p.FechaEntrega, &p.Estado, &p.Notas, &p.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el pedido; sus detalles caen en cascada por FK.
func (r *PedidoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
