package entity

import "time"

// Inventario es la fila mutable de existencias de una presentación en un
// almacén. Único por (presentacion_id, almacen_id); Cantidad nunca es negativa.
type Inventario struct {
	ID             string
	PresentacionID string
	AlmacenID      string
	LoteID         *string // lote de origen, si aplica
	Cantidad       int
	StockMinimo    int
	UltimaActualizacion time.Time
}
