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

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación de InventarioRepository sobre PostgreSQL
// (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

const inventarioCols = `id, presentacion_id, almacen_id, lote_id, cantidad, stock_minimo, ultima_actualizacion`

// Create inserta una fila de inventario. El par (presentación, almacén) es
// único: un duplicado devuelve domain.ErrDuplicate.
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventario (id, presentacion_id, almacen_id, lote_id, cantidad, stock_minimo, ultima_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.PresentacionID, inv.AlmacenID, inv.LoteID,
		inv.Cantidad, inv.StockMinimo, inv.UltimaActualizacion,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("inventario para presentación %s en almacén %s: %w",
				inv.PresentacionID, inv.AlmacenID, domain.ErrDuplicate)
		}
		return fmt.Errorf("create inventario: %w", err)
	}
	return nil
}

// GetByID obtiene una fila por ID. Devuelve nil sin error si no existe.
func (r *InventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioCols + ` FROM inventario WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene la fila por ID bloqueándola (SELECT FOR UPDATE).
func (r *InventarioRepo) GetByIDForUpdate(id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioCols + ` FROM inventario WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Get obtiene la fila de (presentación, almacén). Devuelve nil sin error si
// no existe registro.
func (r *InventarioRepo) Get(presentacionID, almacenID string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioCols + ` FROM inventario WHERE presentacion_id = $1 AND almacen_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, presentacionID, almacenID))
}

// GetForUpdate obtiene y bloquea la fila de (presentación, almacén).
func (r *InventarioRepo) GetForUpdate(presentacionID, almacenID string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioCols + ` FROM inventario WHERE presentacion_id = $1 AND almacen_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, presentacionID, almacenID))
}

// Update persiste cantidad, stock mínimo y lote de una fila.
func (r *InventarioRepo) Update(inv *entity.Inventario) error {
	query := `
		UPDATE inventario
		SET cantidad = $2, stock_minimo = $3, lote_id = $4, ultima_actualizacion = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Cantidad, inv.StockMinimo, inv.LoteID, inv.UltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update inventario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventario %s: %w", inv.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista filas de inventario con filtros opcionales.
func (r *InventarioRepo) List(f repository.InventarioFilter, limit, offset int) ([]*entity.Inventario, error) {
	query := `SELECT ` + inventarioCols + ` FROM inventario WHERE 1=1`
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
	if f.BajoMinimo {
		query += " AND cantidad < stock_minimo"
	}
	query += fmt.Sprintf(" ORDER BY ultima_actualizacion DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventario: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		if err := rows.Scan(&inv.ID, &inv.PresentacionID, &inv.AlmacenID, &inv.LoteID,
			&inv.Cantidad, &inv.StockMinimo, &inv.UltimaActualizacion); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Delete elimina una fila de inventario.
func (r *InventarioRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM inventario WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventario %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *InventarioRepo) scanOne(row pgx.Row) (*entity.Inventario, error) {
	var inv entity.Inventario
	err := row.Scan(&inv.ID, &inv.PresentacionID, &inv.AlmacenID, &inv.LoteID,
		&inv.Cantidad, &inv.StockMinimo, &inv.UltimaActualizacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &inv, nil
}
