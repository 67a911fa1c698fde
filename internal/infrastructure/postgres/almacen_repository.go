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

var _ repository.AlmacenRepository = (*AlmacenRepo)(nil)

// AlmacenRepo implementación de AlmacenRepository sobre PostgreSQL (usable con
// pool o tx).
type AlmacenRepo struct {
	q Querier
}

// NewAlmacenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlmacenRepository(q Querier) *AlmacenRepo {
	return &AlmacenRepo{q: q}
}

// Create persiste un almacén.
func (r *AlmacenRepo) Create(almacen *entity.Almacen) error {
	if almacen.ID == "" {
		almacen.ID = uuid.New().String()
	}
	query := `
		INSERT INTO almacenes (id, nombre, direccion, ciudad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		almacen.ID, almacen.Nombre, almacen.Direccion, almacen.Ciudad,
		almacen.CreatedAt, almacen.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create almacén: %w", err)
	}
	return nil
}

// GetByID obtiene un almacén. Devuelve nil sin error si no existe.
func (r *AlmacenRepo) GetByID(id string) (*entity.Almacen, error) {
	query := `SELECT id, nombre, direccion, ciudad, created_at, updated_at FROM almacenes WHERE id = $1`
	var a entity.Almacen
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Direccion, &a.Ciudad, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get almacén: %w", err)
	}
	return &a, nil
}

// Update persiste los campos editables.
func (r *AlmacenRepo) Update(almacen *entity.Almacen) error {
	query := `UPDATE almacenes SET nombre = $2, direccion = $3, ciudad = $4, updated_at = $5 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		almacen.ID, almacen.Nombre, almacen.Direccion, almacen.Ciudad, almacen.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update almacén: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("almacén %s: %w", almacen.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista almacenes por nombre.
func (r *AlmacenRepo) List(limit, offset int) ([]*entity.Almacen, error) {
	query := `SELECT id, nombre, direccion, ciudad, created_at, updated_at FROM almacenes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list almacenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Direccion, &a.Ciudad, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan almacén: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un almacén. Falla con ErrConflict si tiene inventario,
// ventas o pedidos.
func (r *AlmacenRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM almacenes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("almacén %s referenciado: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete almacén: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("almacén %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
