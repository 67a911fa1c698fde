package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/usecase"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
)

// MovimientoHandler expone el libro de movimientos (solo lectura, protegido).
type MovimientoHandler struct {
	uc *usecase.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *usecase.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id} [get]
func (h *MovimientoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	m, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovimientoResponse(m))
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Description  Libro de auditoría append-only, ordenado por fecha descendente.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        presentacion_id  query  string  false  "Filtrar por presentación"
// @Param        almacen_id       query  string  false  "Filtrar por almacén"
// @Param        lote_id          query  string  false  "Filtrar por lote"
// @Param        tipo             query  string  false  "entrada o salida"
// @Param        desde            query  string  false  "Fecha inicial (RFC3339)"
// @Param        hasta            query  string  false  "Fecha final (RFC3339)"
// @Param        limit            query  int     false  "Límite"   default(20)
// @Param        offset           query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovimientoListResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return badRequest(c, "VALIDATION", "desde debe ser RFC3339")
	}
	hasta, err := parseFecha(c.Query("hasta"))
	if err != nil {
		return badRequest(c, "VALIDATION", "hasta debe ser RFC3339")
	}
	f := repository.MovimientoFilter{
		PresentacionID: c.Query("presentacion_id"),
		AlmacenID:      c.Query("almacen_id"),
		LoteID:         c.Query("lote_id"),
		Tipo:           c.Query("tipo"),
		Desde:          desde,
		Hasta:          hasta,
	}
	if alm := GetAlmacenID(c); alm != "" {
		f.AlmacenID = alm
	}
	movs, err := h.uc.List(c.Context(), f, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovimientoResponse(m))
	}
	return c.JSON(dto.MovimientoListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}
