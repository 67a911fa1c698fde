package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearGastoRequest body para POST /api/gastos.
type CrearGastoRequest struct {
	Descripcion string          `json:"descripcion" validate:"required"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Fecha       *time.Time      `json:"fecha,omitempty"`
	Categoria   string          `json:"categoria" validate:"required,max=50"`
}

// ActualizarGastoRequest body para PUT /api/gastos/:id.
type ActualizarGastoRequest struct {
	Descripcion *string          `json:"descripcion,omitempty"`
	Monto       *decimal.Decimal `json:"monto,omitempty"`
	Fecha       *time.Time       `json:"fecha,omitempty"`
	Categoria   *string          `json:"categoria,omitempty" validate:"omitempty,max=50"`
}

// GastoResponse gasto registrado.
type GastoResponse struct {
	ID          string          `json:"id"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	Categoria   string          `json:"categoria"`
}

// GastoListResponse listado paginado de gastos.
type GastoListResponse struct {
	Items []GastoResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
