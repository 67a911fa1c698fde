package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

const movimientoCols = `id, tipo, presentacion_id, almacen_id, lote_id, venta_id, cantidad, motivo, usuario_id, fecha`

// Create persiste un movimiento.
func (r *MovimientoRepo) Create(mov *entity.Movimiento) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos (id, tipo, presentacion_id, almacen_id, lote_id, venta_id, cantidad, motivo, usuario_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	usuarioID := (*string)(nil)
	if mov.UsuarioID != "" {
		usuarioID = &mov.UsuarioID
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Tipo, mov.PresentacionID, mov.AlmacenID, mov.LoteID,
		mov.VentaID, mov.Cantidad, mov.Motivo, usuarioID, mov.Fecha,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Devuelve nil sin error si no existe.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `SELECT ` + movimientoCols + ` FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	var usuarioID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Tipo, &m.PresentacionID, &m.AlmacenID, &m.LoteID,
		&m.VentaID, &m.Cantidad, &m.Motivo, &usuarioID, &m.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	if usuarioID != nil {
		m.UsuarioID = *usuarioID
	}
	return &m, nil
}

// ListSalidasPorVenta devuelve las salidas correlacionadas a una venta.
func (r *MovimientoRepo) ListSalidasPorVenta(ventaID string) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoCols + ` FROM movimientos WHERE venta_id = $1 AND tipo = $2 ORDER BY fecha`
	rows, err := r.q.Query(context.Background(), query, ventaID, entity.MovimientoTipoSalida)
	if err != nil {
		return nil, fmt.Errorf("list salidas por venta: %w", err)
	}
	return r.scanAll(rows)
}

// ExistePara indica si hay movimientos para (presentación, almacén).
func (r *MovimientoRepo) ExistePara(presentacionID, almacenID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM movimientos WHERE presentacion_id = $1 AND almacen_id = $2)`
	var existe bool
	if err := r.q.QueryRow(context.Background(), query, presentacionID, almacenID).Scan(&existe); err != nil {
		return false, fmt.Errorf("existe movimiento: %w", err)
	}
	return existe, nil
}

// List lista movimientos con filtros opcionales, más recientes primero.
func (r *MovimientoRepo) List(f repository.MovimientoFilter, limit, offset int) ([]*entity.Movimiento, error) {
	query := `SELECT ` + movimientoCols + ` FROM movimientos WHERE 1=1`
	args := []any{}
	pos := 1
	if f.PresentacionID != "" {
		query += fmt.Sprintf(" AND presentacion_id = $%d", pos)
		args = append(args, f.PresentacionID)
		pos++
	}
	if f.AlmacenID != "" {
		query += fmt.Sprintf(" AND almacen_id = $%d", pos)
		args = append(args, f.AlmacenID)
		pos++
	}
	if f.LoteID != "" {
		query += fmt.Sprintf(" AND lote_id = $%d", pos)
		args = append(args, f.LoteID)
		pos++
	}
	if f.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, f.Tipo)
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
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	return r.scanAll(rows)
}

// Delete elimina un movimiento. Solo la reversión de ventas lo usa.
func (r *MovimientoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM movimientos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movimiento %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *MovimientoRepo) scanAll(rows pgx.Rows) ([]*entity.Movimiento, error) {
	defer rows.Close()
	var list []*entity.Movimiento
	for rows.Next() {
		var m entity.Movimiento
		var usuarioID *string
		if err := rows.Scan(&m.ID, &m.Tipo, &m.PresentacionID, &m.AlmacenID, &m.LoteID,
			&m.VentaID, &m.Cantidad, &m.Motivo, &usuarioID, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		if usuarioID != nil {
			m.UsuarioID = *usuarioID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
