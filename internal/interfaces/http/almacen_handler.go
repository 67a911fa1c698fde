package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/usecase"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// AlmacenHandler maneja las peticiones HTTP para Almacen (protegido).
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// Create godoc
// @Summary      Crear almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAlmacenRequest  true  "Datos del almacén"
// @Success      201   {object}  dto.AlmacenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/almacenes [post]
func (h *AlmacenHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	a, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAlmacenResponse(a))
}

// GetByID godoc
// @Summary      Obtener almacén por ID
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del almacén"
// @Success      200  {object}  dto.AlmacenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [get]
func (h *AlmacenHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	a, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlmacenResponse(a))
}

// List godoc
// @Summary      Listar almacenes
// @Tags         almacenes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.AlmacenListResponse
// @Router       /api/almacenes [get]
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	almacenes, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AlmacenResponse, 0, len(almacenes))
	for _, a := range almacenes {
		items = append(items, toAlmacenResponse(a))
	}
	return c.JSON(dto.AlmacenListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Update godoc
// @Summary      Actualizar almacén
// @Tags         almacenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del almacén"
// @Param        body  body  dto.ActualizarAlmacenRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AlmacenResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [put]
func (h *AlmacenHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.ActualizarAlmacenRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	a, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toAlmacenResponse(a))
}

// Delete godoc
// @Summary      Eliminar almacén
// @Tags         almacenes
// @Security     Bearer
// @Param        id   path  string  true  "ID del almacén"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/almacenes/{id} [delete]
func (h *AlmacenHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
