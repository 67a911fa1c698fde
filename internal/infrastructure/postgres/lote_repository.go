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

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación de LoteRepository sobre PostgreSQL (usable con pool o tx).
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

const loteCols = `id, producto_id, almacen_id, proveedor_id, peso_humedo_kg, peso_seco_kg, cantidad_disponible_kg, fecha_ingreso, updated_at`

// Create persiste un lote.
func (r *LoteRepo) Create(lote *entity.Lote) error {
	if lote.ID == "" {
		lote.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lotes (id, producto_id, almacen_id, proveedor_id, peso_humedo_kg, peso_seco_kg, cantidad_disponible_kg, fecha_ingreso, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.ProductoID, lote.AlmacenID, lote.ProveedorID, lote.PesoHumedoKg,
		lote.PesoSecoKg, lote.CantidadDisponibleKg, lote.FechaIngreso, lote.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("proveedor del lote: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("create lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote. Devuelve nil sin error si no existe.
func (r *LoteRepo) GetByID(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el lote bloqueando su fila (SELECT FOR UPDATE).
func (r *LoteRepo) GetForUpdate(id string) (*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste pesos y disponible de un lote.
func (r *LoteRepo) Update(lote *entity.Lote) error {
	query := `
		UPDATE lotes
		SET proveedor_id = $2, peso_humedo_kg = $3, peso_seco_kg = $4, cantidad_disponible_kg = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.ProveedorID, lote.PesoHumedoKg, lote.PesoSecoKg, lote.CantidadDisponibleKg, lote.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lote %s: %w", lote.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista lotes, más recientes primero.
func (r *LoteRepo) List(productoID string, limit, offset int) ([]*entity.Lote, error) {
	query := `SELECT ` + loteCols + ` FROM lotes WHERE 1=1`
	args := []any{}
	pos := 1
	if productoID != "" {
		query += fmt.Sprintf(" AND producto_id = $%d", pos)
		args = append(args, productoID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha_ingreso DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(&l.ID, &l.ProductoID, &l.AlmacenID, &l.ProveedorID, &l.PesoHumedoKg,
			&l.PesoSecoKg, &l.CantidadDisponibleKg, &l.FechaIngreso, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina un lote. Falla con ErrConflict si inventarios o mermas lo referencian.
func (r *LoteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM lotes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("lote %s referenciado: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete lote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lote %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *LoteRepo) scanOne(row pgx.Row) (*entity.Lote, error) {
	var l entity.Lote
	err := row.Scan(&l.ID, &l.ProductoID, &l.AlmacenID, &l.ProveedorID, &l.PesoHumedoKg,
		&l.PesoSecoKg, &l.CantidadDisponibleKg, &l.FechaIngreso, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}
