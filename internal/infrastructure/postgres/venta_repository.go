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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository sobre PostgreSQL (usable con
// pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaCols = `id, cliente_id, almacen_id, vendedor_id, fecha, total, tipo_pago, estado_pago, fecha_vencimiento`

// Create inserta la venta y todas sus líneas.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, cliente_id, almacen_id, vendedor_id, fecha, total, tipo_pago, estado_pago, fecha_vencimiento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, venta.ClienteID, venta.AlmacenID, venta.VendedorID,
		venta.Fecha, venta.Total, venta.TipoPago, venta.EstadoPago, venta.FechaVencimiento,
	)
	if err != nil {
		return fmt.Errorf("create venta: %w", err)
	}
	detalleQuery := `
		INSERT INTO venta_detalles (id, venta_id, presentacion_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	for _, d := range venta.Detalles {
		if _, err := r.q.Exec(context.Background(), detalleQuery,
			d.ID, d.VentaID, d.PresentacionID, d.Cantidad, d.PrecioUnitario); err != nil {
			return fmt.Errorf("create venta detalle: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus detalles. Devuelve nil sin error si no existe.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la venta bloqueando su fila (serializa pagos
// concurrentes contra la misma venta). Los detalles no se bloquean.
func (r *VentaRepo) GetForUpdate(id string) (*entity.Venta, error) {
	return r.get(id, true)
}

func (r *VentaRepo) get(id string, forUpdate bool) (*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClienteID, &v.AlmacenID, &v.VendedorID, &v.Fecha,
		&v.Total, &v.TipoPago, &v.EstadoPago, &v.FechaVencimiento,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	detalles, err := r.detallesDe(id)
	if err != nil {
		return nil, err
	}
	v.Detalles = detalles
	return &v, nil
}

func (r *VentaRepo) detallesDe(ventaID string) ([]entity.VentaDetalle, error) {
	query := `
		SELECT id, venta_id, presentacion_id, cantidad, precio_unitario
		FROM venta_detalles WHERE venta_id = $1 ORDER BY presentacion_id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list venta detalles: %w", err)
	}
	defer rows.Close()
	var detalles []entity.VentaDetalle
	for rows.Next() {
		var d entity.VentaDetalle
		if err := rows.Scan(&d.ID, &d.VentaID, &d.PresentacionID, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan venta detalle: %w", err)
		}
		detalles = append(detalles, d)
	}
	return detalles, rows.Err()
}

// UpdateEstadoPago actualiza solo el estado de pago derivado.
func (r *VentaRepo) UpdateEstadoPago(id, estado string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET estado_pago = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado pago: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List lista ventas (sin detalles) con filtros, más recientes primero.
func (r *VentaRepo) List(f repository.VentaFilter, limit, offset int) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaCols + ` FROM ventas WHERE 1=1`
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
	if f.EstadoPago != "" {
		query += fmt.Sprintf(" AND estado_pago = $%d", pos)
		args = append(args, f.EstadoPago)
		pos++
	}
	if f.Desde != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *f.Desde)
		pos++
	}
	if f.Hasta != nil {
		query += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *f.Hasta)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.AlmacenID, &v.VendedorID, &v.Fecha,
			&v.Total, &v.TipoPago, &v.EstadoPago, &v.FechaVencimiento); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Delete elimina la venta; detalles y pagos caen en cascada por FK.
func (r *VentaRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
