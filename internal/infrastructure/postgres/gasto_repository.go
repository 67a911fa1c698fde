package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación de GastoRepository sobre PostgreSQL (usable con pool o tx).
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

// Create persiste un gasto.
func (r *GastoRepo) Create(gasto *entity.Gasto) error {
	if gasto.ID == "" {
		gasto.ID = uuid.New().String()
	}
	query := `
		INSERT INTO gastos (id, descripcion, monto, fecha, categoria, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Descripcion, gasto.Monto, gasto.Fecha, gasto.Categoria, gasto.CreatedAt)
	if err != nil {
		return fmt.Errorf("create gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto. Devuelve nil sin error si no existe.
func (r *GastoRepo) GetByID(id string) (*entity.Gasto, error) {
	query := `SELECT id, descripcion, monto, fecha, categoria, created_at FROM gastos WHERE id = $1`
	var g entity.Gasto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Descripcion, &g.Monto, &g.Fecha, &g.Categoria, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &g, nil
}

// Update persiste los campos editables.
func (r *GastoRepo) Update(gasto *entity.Gasto) error {
	query := `UPDATE gastos SET descripcion = $2, monto = $3, fecha = $4, categoria = $5 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		gasto.ID, gasto.Descripcion, gasto.Monto, gasto.Fecha, gasto.Categoria)
	if err != nil {
		return fmt.Errorf("update gasto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("gasto %s: %w", gasto.ID, domain.ErrNotFound)
	}
	return nil
}

// List lista gastos con filtros opcionales, más recientes primero.
func (r *GastoRepo) List(categoria string, desde, hasta *time.Time, limit, offset int) ([]*entity.Gasto, error) {
	query := `SELECT id, descripcion, monto, fecha, categoria, created_at FROM gastos WHERE 1=1`
	args := []any{}
	pos := 1
	if categoria != "" {
		query += fmt.Sprintf(" AND categoria = $%d", pos)
		args = append(args, categoria)
		pos++
	}
	if desde != nil {
		query += fmt.Sprintf(" AND fecha >= $%d", pos)
		args = append(args, *desde)
		pos++
	}
	if hasta != nil {
		query += fmt.Sprintf(" AND fecha <= $%d", pos)
		args = append(args, *hasta)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.Descripcion, &g.Monto, &g.Fecha, &g.Categoria, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Delete elimina un gasto.
func (r *GastoRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("gasto %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
