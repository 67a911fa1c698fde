package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearMermaRequest body para POST /api/mermas.
type CrearMermaRequest struct {
	LoteID               string          `json:"lote_id" validate:"required,uuid4"`
	CantidadKg           decimal.Decimal `json:"cantidad_kg" validate:"required"`
	ConvertidoABriquetas bool            `json:"convertido_a_briquetas,omitempty"`
}

// MermaResponse merma registrada.
type MermaResponse struct {
	ID                   string          `json:"id"`
	LoteID               string          `json:"lote_id"`
	CantidadKg           decimal.Decimal `json:"cantidad_kg"`
	ConvertidoABriquetas bool            `json:"convertido_a_briquetas"`
	UsuarioID            string          `json:"usuario_id,omitempty"`
	FechaRegistro        time.Time       `json:"fecha_registro"`
}

// MermaListResponse listado paginado de mermas.
type MermaListResponse struct {
	Items []MermaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
