package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/usecase"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// GastoHandler maneja las peticiones HTTP para Gasto (protegido).
type GastoHandler struct {
	uc *usecase.GastoUseCase
}

// NewGastoHandler construye el handler.
func NewGastoHandler(uc *usecase.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearGastoRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	g, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toGastoResponse(g))
}

// GetByID godoc
// @Summary      Obtener gasto por ID
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del gasto"
// @Success      200  {object}  dto.GastoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [get]
func (h *GastoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	g, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toGastoResponse(g))
}

// List godoc
// @Summary      Listar gastos
// @Tags         gastos
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  string  false  "Filtrar por categoría"
// @Param        desde      query  string  false  "Fecha inicial (RFC3339)"
// @Param        hasta      query  string  false  "Fecha final (RFC3339)"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.GastoListResponse
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return badRequest(c, "VALIDATION", "desde debe ser RFC3339")
	}
	hasta, err := parseFecha(c.Query("hasta"))
	if err != nil {
		return badRequest(c, "VALIDATION", "hasta debe ser RFC3339")
	}
	gastos, err := h.uc.List(c.Context(), c.Query("categoria"), desde, hasta, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.GastoResponse, 0, len(gastos))
	for _, g := range gastos {
		items = append(items, toGastoResponse(g))
	}
	return c.JSON(dto.GastoListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Update godoc
// @Summary      Actualizar gasto
// @Tags         gastos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del gasto"
// @Param        body  body  dto.ActualizarGastoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.GastoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [put]
func (h *GastoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.ActualizarGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	g, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toGastoResponse(g))
}

// Delete godoc
// @Summary      Eliminar gasto
// @Tags         gastos
// @Security     Bearer
// @Param        id   path  string  true  "ID del gasto"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [delete]
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseFecha interpreta un parámetro de fecha opcional en RFC3339.
func parseFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
