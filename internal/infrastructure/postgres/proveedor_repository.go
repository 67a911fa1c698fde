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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación de ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

const proveedorCols = `id, nombre, telefono, direccion, created_at, updated_at`

// Create persiste un proveedor. El nombre es único en la tabla.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	if proveedor.ID == "" {
		proveedor.ID = uuid.New().String()
	}
	query := `
		INSERT INTO proveedores (id, nombre, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.Telefono, proveedor.Direccion,
		proveedor.CreatedAt, proveedor.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("proveedor %q: %w", proveedor.Nombre, domain.ErrDuplicate)
		}
		return fmt.Errorf("create proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor. Devuelve nil sin error si no existe.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Telefono, &p.Direccion, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update persiste los campos editables del proveedor.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores
		SET nombre = $2, telefono = $3, direccion = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.Nombre, proveedor.Telefono, proveedor.Direccion,
		proveedor.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("proveedor %q: %w", proveedor.Nombre, domain.ErrDuplicate)
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proveedor %s: %w", proveedor.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista proveedores, con filtro opcional por nombre (ILIKE).
func (r *ProveedorRepo) List(nombre string, limit, offset int) ([]*entity.Proveedor, error) {
	query := `SELECT ` + proveedorCols + ` FROM proveedores WHERE 1=1`
	args := []any{}
	pos := 1
	if nombre != "" {
		query += fmt.Sprintf(" AND nombre ILIKE $%d", pos)
		args = append(args, "%"+nombre+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY nombre ASC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Direccion,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina el proveedor; lotes asociados quedan con proveedor_id NULL.
func (r *ProveedorRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("proveedor %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
