package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL (usable con
// pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const clienteCols = `id, nombre, nombre_normalizado, telefono, direccion, consumo_diario_kg, ultima_fecha_compra, frecuencia_compra_dias, created_at, updated_at`

// normalizarNombre quita acentos y pasa a minúsculas para la columna de
// búsqueda. Misma transformación al escribir y al buscar.
func normalizarNombre(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Create persiste un cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	if cliente.ID == "" {
		cliente.ID = uuid.New().String()
	}
	query := `
		INSERT INTO clientes (id, nombre, nombre_normalizado, telefono, direccion, consumo_diario_kg, ultima_fecha_compra, frecuencia_compra_dias, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, normalizarNombre(cliente.Nombre),
		cliente.Telefono, cliente.Direccion, cliente.ConsumoDiarioKg,
		cliente.UltimaFechaCompra, cliente.FrecuenciaCompraDias,
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente. Devuelve nil sin error si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// Update persiste los campos editables del cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, nombre_normalizado = $3, telefono = $4, direccion = $5,
		    consumo_diario_kg = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, normalizarNombre(cliente.Nombre),
		cliente.Telefono, cliente.Direccion, cliente.ConsumoDiarioKg, cliente.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cliente %s: %w", cliente.ID, domain.ErrNotFound)
	}
	return nil
}

// ActualizarProyeccion actualiza los campos de proyección de recompra.
func (r *ClienteRepo) ActualizarProyeccion(id string, ultimaCompra time.Time, frecuenciaDias int) error {
	query := `
		UPDATE clientes
		SET ultima_fecha_compra = $2, frecuencia_compra_dias = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, ultimaCompra, frecuenciaDias)
	if err != nil {
		return fmt.Errorf("actualizar proyección cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Search busca por nombre sin distinguir acentos ni mayúsculas, contra la
// columna normalizada.
func (r *ClienteRepo) Search(nombre string, limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes
		WHERE nombre_normalizado LIKE '%' || $1 || '%'
		ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, normalizarNombre(nombre), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	return r.scanAll(rows)
}

// List lista clientes por nombre.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteCols + ` FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return r.scanAll(rows)
}

// Delete elimina un cliente. Falla con ErrConflict si tiene ventas o pedidos.
func (r *ClienteRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente %s con ventas o pedidos: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cliente %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *ClienteRepo) scanOne(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	var normalizado string
	err := row.Scan(&c.ID, &c.Nombre, &normalizado, &c.Telefono, &c.Direccion,
		&c.ConsumoDiarioKg, &c.UltimaFechaCompra, &c.FrecuenciaCompraDias,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) scanAll(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		var normalizado string
		if err := rows.Scan(&c.ID, &c.Nombre, &normalizado, &c.Telefono, &c.Direccion,
			&c.ConsumoDiarioKg, &c.UltimaFechaCompra, &c.FrecuenciaCompraDias,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
