package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoResponse registro del libro de movimientos (solo lectura).
type MovimientoResponse struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"`
	PresentacionID string          `json:"presentacion_id"`
	AlmacenID      string          `json:"almacen_id"`
	LoteID         *string         `json:"lote_id,omitempty"`
	VentaID        *string         `json:"venta_id,omitempty"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Motivo         string          `json:"motivo"`
	UsuarioID      string          `json:"usuario_id,omitempty"`
	Fecha          time.Time       `json:"fecha"`
}

// MovimientoListResponse listado paginado de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
