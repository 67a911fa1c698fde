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

var _ repository.PresentacionRepository = (*PresentacionRepo)(nil)

// PresentacionRepo implementación de PresentacionRepository sobre PostgreSQL
// (usable con pool o tx).
type PresentacionRepo struct {
	q Querier
}

// NewPresentacionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPresentacionRepository(q Querier) *PresentacionRepo {
	return &PresentacionRepo{q: q}
}

const presentacionCols = `id, producto_id, nombre, capacidad_kg, tipo, precio_venta, activo, url_foto, created_at, updated_at`

// Create persiste una presentación.
func (r *PresentacionRepo) Create(pres *entity.Presentacion) error {
	if pres.ID == "" {
		pres.ID = uuid.New().String()
	}
	query := `
		INSERT INTO presentaciones (id, producto_id, nombre, capacidad_kg, tipo, precio_venta, activo, url_foto, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		pres.ID, pres.ProductoID, pres.Nombre, pres.CapacidadKg, pres.Tipo,
		pres.PrecioVenta, pres.Activo, pres.URLFoto, pres.CreatedAt, pres.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create presentación: %w", err)
	}
	return nil
}

// GetByID obtiene una presentación. Devuelve nil sin error si no existe.
func (r *PresentacionRepo) GetByID(id string) (*entity.Presentacion, error) {
	query := `SELECT ` + presentacionCols + ` FROM presentaciones WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByProductoYTipo busca la presentación activa de un tipo para un producto.
func (r *PresentacionRepo) GetByProductoYTipo(productoID, tipo string) (*entity.Presentacion, error) {
	query := `SELECT ` + presentacionCols + ` FROM presentaciones
		WHERE producto_id = $1 AND tipo = $2 AND activo
		ORDER BY created_at LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productoID, tipo))
}

// Update persiste los campos editables.
func (r *PresentacionRepo) Update(pres *entity.Presentacion) error {
	query := `
		UPDATE presentaciones
		SET nombre = $2, capacidad_kg = $3, tipo = $4, precio_venta = $5,
		    activo = $6, url_foto = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pres.ID, pres.Nombre, pres.CapacidadKg, pres.Tipo, pres.PrecioVenta,
		pres.Activo, pres.URLFoto, pres.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update presentación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("presentación %s: %w", pres.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista presentaciones, opcionalmente filtradas por producto y estado.
func (r *PresentacionRepo) List(productoID string, soloActivas bool, limit, offset int) ([]*entity.Presentacion, error) {
	query := `SELECT ` + presentacionCols + ` FROM presentaciones WHERE 1=1`
	args := []any{}
	pos := 1
	if productoID != "" {
		query += fmt.Sprintf(" AND producto_id = $%d", pos)
		args = append(args, productoID)
		pos++
	}
	if soloActivas {
		query += " AND activo"
	}
	query += fmt.Sprintf(" ORDER BY nombre LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list presentaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Presentacion
	for rows.Next() {
		var p entity.Presentacion
		if err := rows.Scan(&p.ID, &p.ProductoID, &p.Nombre, &p.CapacidadKg, &p.Tipo,
			&p.PrecioVenta, &p.Activo, &p.URLFoto, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan presentación: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina una presentación. Falla con ErrConflict si hay ventas,
// pedidos o inventario que la referencian.
func (r *PresentacionRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM presentaciones WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("presentación %s referenciada: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete presentación: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("presentación %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *PresentacionRepo) scanOne(row pgx.Row) (*entity.Presentacion, error) {
	var p entity.Presentacion
	err := row.Scan(&p.ID, &p.ProductoID, &p.Nombre, &p.CapacidadKg, &p.Tipo,
		&p.PrecioVenta, &p.Activo, &p.URLFoto, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presentación: %w", err)
	}
	return &p, nil
}
