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

var _ repository.PagoRepository = (*PagoRepo)(nil)

// PagoRepo implementación de PagoRepository sobre PostgreSQL (usable con pool o tx).
type PagoRepo struct {
	q Querier
}

// NewPagoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPagoRepository(q Querier) *PagoRepo {
	return &PagoRepo{q: q}
}

const pagoCols = `id, venta_id, monto, metodo_pago, referencia, url_comprobante, usuario_id, fecha`

// Create persiste un pago.
func (r *PagoRepo) Create(pago *entity.Pago) error {
	if pago.ID == "" {
		pago.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pagos (id, venta_id, monto, metodo_pago, referencia, url_comprobante, usuario_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	usuarioID := (*string)(nil)
	if pago.UsuarioID != "" {
		usuarioID = &pago.UsuarioID
	}
	_, err := r.q.Exec(context.Background(), query,
		pago.ID, pago.VentaID, pago.Monto, pago.MetodoPago,
		pago.Referencia, pago.URLComprobante, usuarioID, pago.Fecha,
	)
	if err != nil {
		return fmt.Errorf("create pago: %w", err)
	}
	return nil
}

// GetByID obtiene un pago. Devuelve nil sin error si no existe.
func (r *PagoRepo) GetByID(id string) (*entity.Pago, error) {
	query := `SELECT ` + pagoCols + ` FROM pagos WHERE id = $1`
	var p entity.Pago
	var usuarioID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.VentaID, &p.Monto, &p.MetodoPago,
		&p.Referencia, &p.URLComprobante, &usuarioID, &p.Fecha,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	if usuarioID != nil {
		p.UsuarioID = *usuarioID
	}
	return &p, nil
}

// ListByVenta lista todos los pagos de una venta en orden cronológico.
func (r *PagoRepo) ListByVenta(ventaID string) ([]*entity.Pago, error) {
	query := `SELECT ` + pagoCols + ` FROM pagos WHERE venta_id = $1 ORDER BY fecha`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("list pagos por venta: %w", err)
	}
	return r.scanAll(rows)
}

// List lista pagos con filtros opcionales.
func (r *PagoRepo) List(ventaID, metodoPago string, limit, offset int) ([]*entity.Pago, error) {
	query := `SELECT ` + pagoCols + ` FROM pagos WHERE 1=1`
	args := []any{}
	pos := 1
	if ventaID != "" {
		query += fmt.Sprintf(" AND venta_id = $%d", pos)
		args = append(args, ventaID)
		pos++
	}
	if metodoPago != "" {
		query += fmt.Sprintf(" AND metodo_pago = $%d", pos)
		args = append(args, metodoPago)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	return r.scanAll(rows)
}

// Delete elimina un pago.
func (r *PagoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pago %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *PagoRepo) scanAll(rows pgx.Rows) ([]*entity.Pago, error) {
	defer rows.Close()
	var list []*entity.Pago
	for rows.Next() {
		var p entity.Pago
		var usuarioID *string
		if err := rows.Scan(&p.ID, &p.VentaID, &p.Monto, &p.MetodoPago,
			&p.Referencia, &p.URLComprobante, &usuarioID, &p.Fecha); err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		if usuarioID != nil {
			p.UsuarioID = *usuarioID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
