package dto

import "time"

// CrearInventarioRequest body para POST /api/inventario.
type CrearInventarioRequest struct {
	PresentacionID string  `json:"presentacion_id" validate:"required,uuid4"`
	AlmacenID      string  `json:"almacen_id" validate:"required,uuid4"`
	LoteID         *string `json:"lote_id,omitempty" validate:"omitempty,uuid4"`
	Cantidad       int     `json:"cantidad" validate:"min=0"`
	StockMinimo    int     `json:"stock_minimo" validate:"min=0"`
}

// AjustarInventarioRequest body para PUT /api/inventario/:id.
// Si cambia la cantidad se registra un movimiento de ajuste. Empaque indica
// que el ajuste positivo proviene de embolsar stock a granel del lote asociado,
// por lo que descuenta delta * capacidad_kg del lote.
type AjustarInventarioRequest struct {
	Cantidad    *int    `json:"cantidad,omitempty" validate:"omitempty,min=0"`
	StockMinimo *int    `json:"stock_minimo,omitempty" validate:"omitempty,min=0"`
	LoteID      *string `json:"lote_id,omitempty" validate:"omitempty,uuid4"`
	Empaque     bool    `json:"empaque,omitempty"`
}

// InventarioResponse fila de inventario.
type InventarioResponse struct {
	ID                  string    `json:"id"`
	PresentacionID      string    `json:"presentacion_id"`
	AlmacenID           string    `json:"almacen_id"`
	LoteID              *string   `json:"lote_id,omitempty"`
	Cantidad            int       `json:"cantidad"`
	StockMinimo         int       `json:"stock_minimo"`
	UltimaActualizacion time.Time `json:"ultima_actualizacion"`
}

// InventarioListResponse listado paginado de inventario.
type InventarioListResponse struct {
	Items []InventarioResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
