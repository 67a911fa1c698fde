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

var _ repository.MermaRepository = (*MermaRepo)(nil)

// MermaRepo implementación de MermaRepository sobre PostgreSQL (usable con pool o tx).
type MermaRepo struct {
	q Querier
}

// NewMermaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMermaRepository(q Querier) *MermaRepo {
	return &MermaRepo{q: q}
}

const mermaCols = `id, lote_id, cantidad_kg, convertido_a_briquetas, usuario_id, fecha_registro`

// Create persiste una merma.
func (r *MermaRepo) Create(merma *entity.Merma) error {
	if merma.ID == "" {
		merma.ID = uuid.New().String()
	}
	query := `
		INSERT INTO mermas (id, lote_id, cantidad_kg, convertido_a_briquetas, usuario_id, fecha_registro)
		VALUES ($1, $2, $3, $4, $5, $6)`
	usuarioID := (*string)(nil)
	if merma.UsuarioID != "" {
		usuarioID = &merma.UsuarioID
	}
	_, err := r.q.Exec(context.Background(), query,
		merma.ID, merma.LoteID, merma.CantidadKg, merma.ConvertidoABriquetas,
		usuarioID, merma.FechaRegistro,
	)
	if err != nil {
		return fmt.Errorf("create merma: %w", err)
	}
	return nil
}

// GetByID obtiene una merma. Devuelve nil sin error si no existe.
func (r *MermaRepo) GetByID(id string) (*entity.Merma, error) {
	query := `SELECT ` + mermaCols + ` FROM mermas WHERE id = $1`
	var m entity.Merma
	var usuarioID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.LoteID, &m.CantidadKg, &m.ConvertidoABriquetas, &usuarioID, &m.FechaRegistro,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merma: %w", err)
	}
	if usuarioID != nil {
		m.UsuarioID = *usuarioID
	}
	return &m, nil
}

// List lista mermas con filtros opcionales, más recientes primero.
func (r *MermaRepo) List(loteID string, convertido *bool, limit, offset int) ([]*entity.Merma, error) {
	query := `SELECT ` + mermaCols + ` FROM mermas WHERE 1=1`
	args := []any{}
	pos := 1
	if loteID != "" {
		query += fmt.Sprintf(" AND lote_id = $%d", pos)
		args = append(args, loteID)
		pos++
	}
	if convertido != nil {
		query += fmt.Sprintf(" AND convertido_a_briquetas = $%d", pos)
		args = append(args, *convertido)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY fecha_registro DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list mermas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Merma
	for rows.Next() {
		var m entity.Merma
		var usuarioID *string
		if err := rows.Scan(&m.ID, &m.LoteID, &m.CantidadKg, &m.ConvertidoABriquetas,
			&usuarioID, &m.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan merma: %w", err)
		}
		if usuarioID != nil {
			m.UsuarioID = *usuarioID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina una merma.
func (r *MermaRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM mermas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete merma: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merma %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
