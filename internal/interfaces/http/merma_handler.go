package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	mermaapp "github.com/jdvaldes/acopio-api/internal/application/merma"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// MermaHandler maneja las peticiones HTTP para Merma (protegido).
type MermaHandler struct {
	uc *mermaapp.UseCase
}

// NewMermaHandler construye el handler.
func NewMermaHandler(uc *mermaapp.UseCase) *MermaHandler {
	return &MermaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar merma
// @Description  Descuenta kg del lote. Con convertido_a_briquetas=true acredita
// @Description  floor(kg) briquetas al inventario del almacén del lote.
// @Tags         mermas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearMermaRequest  true  "Datos de la merma"
// @Success      201   {object}  dto.MermaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mermas [post]
func (h *MermaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearMermaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	m, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMermaResponse(m))
}

// GetByID godoc
// @Summary      Obtener merma por ID
// @Tags         mermas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la merma"
// @Success      200  {object}  dto.MermaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mermas/{id} [get]
func (h *MermaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	m, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMermaResponse(m))
}

// List godoc
// @Summary      Listar mermas
// @Tags         mermas
// @Security     Bearer
// @Produce      json
// @Param        lote_id     query  string  false  "Filtrar por lote"
// @Param        convertido  query  bool    false  "Solo convertidas (o no) a briquetas"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MermaListResponse
// @Router       /api/mermas [get]
func (h *MermaHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	var convertido *bool
	if c.Query("convertido") != "" {
		b := c.QueryBool("convertido", false)
		convertido = &b
	}
	mermas, err := h.uc.List(c.Query("lote_id"), convertido, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.MermaResponse, 0, len(mermas))
	for _, m := range mermas {
		items = append(items, toMermaResponse(m))
	}
	return c.JSON(dto.MermaListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Delete godoc
// @Summary      Eliminar merma (reversión simétrica)
// @Description  Devuelve los kg al lote; si estaba convertida retira las briquetas
// @Description  acreditadas. Falla si las briquetas ya se vendieron.
// @Tags         mermas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la merma"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/mermas/{id} [delete]
func (h *MermaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
