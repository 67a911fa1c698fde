package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/usecase"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// PresentacionHandler maneja las peticiones HTTP para Presentacion (protegido).
type PresentacionHandler struct {
	uc *usecase.PresentacionUseCase
}

// NewPresentacionHandler construye el handler.
func NewPresentacionHandler(uc *usecase.PresentacionUseCase) *PresentacionHandler {
	return &PresentacionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear presentación
// @Tags         presentaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPresentacionRequest  true  "Datos de la presentación"
// @Success      201   {object}  dto.PresentacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/presentaciones [post]
func (h *PresentacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPresentacionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	p, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPresentacionResponse(p))
}

// GetByID godoc
// @Summary      Obtener presentación por ID
// @Tags         presentaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la presentación"
// @Success      200  {object}  dto.PresentacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [get]
func (h *PresentacionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPresentacionResponse(p))
}

// List godoc
// @Summary      Listar presentaciones
// @Tags         presentaciones
// @Security     Bearer
// @Produce      json
// @Param        producto_id   query  string  false  "Filtrar por producto"
// @Param        solo_activas  query  bool    false  "Solo presentaciones activas"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PresentacionListResponse
// @Router       /api/presentaciones [get]
func (h *PresentacionHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	productoID := c.Query("producto_id")
	soloActivas := c.QueryBool("solo_activas", false)
	presentaciones, err := h.uc.List(c.Context(), productoID, soloActivas, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.PresentacionResponse, 0, len(presentaciones))
	for _, p := range presentaciones {
		items = append(items, toPresentacionResponse(p))
	}
	return c.JSON(dto.PresentacionListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Update godoc
// @Summary      Actualizar presentación
// @Tags         presentaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la presentación"
// @Param        body  body  dto.ActualizarPresentacionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PresentacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [put]
func (h *PresentacionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.ActualizarPresentacionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	p, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPresentacionResponse(p))
}

// Delete godoc
// @Summary      Eliminar presentación
// @Tags         presentaciones
// @Security     Bearer
// @Param        id   path  string  true  "ID de la presentación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [delete]
func (h *PresentacionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
