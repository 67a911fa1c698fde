package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	invapp "github.com/jdvaldes/acopio-api/internal/application/inventario"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// InventarioHandler maneja las peticiones HTTP para Inventario (protegido).
type InventarioHandler struct {
	uc *invapp.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *invapp.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fila de inventario
// @Description  Registra existencias de una presentación en un almacén. Si nace
// @Description  con cantidad positiva queda un movimiento de entrada inicial.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearInventarioRequest  true  "Datos del inventario"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario [post]
func (h *InventarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	inv, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toInventarioResponse(inv))
}

// Ajustar godoc
// @Summary      Ajustar inventario
// @Description  Cambia cantidad o stock mínimo. Un cambio de cantidad registra el
// @Description  movimiento de ajuste; con empaque=true el aumento descuenta kg del lote.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila de inventario"
// @Param        body  body  dto.AjustarInventarioRequest  true  "Ajuste"
// @Success      200   {object}  dto.InventarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [put]
func (h *InventarioHandler) Ajustar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.AjustarInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	inv, err := h.uc.Ajustar(c.Context(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventarioResponse(inv))
}

// GetByID godoc
// @Summary      Obtener fila de inventario por ID
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fila"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [get]
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	inv, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventarioResponse(inv))
}

// List godoc
// @Summary      Listar inventario
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        presentacion_id  query  string  false  "Filtrar por presentación"
// @Param        almacen_id       query  string  false  "Filtrar por almacén"
// @Param        lote_id          query  string  false  "Filtrar por lote"
// @Param        bajo_minimo      query  bool    false  "Solo filas bajo stock mínimo"
// @Param        limit            query  int     false  "Límite"   default(20)
// @Param        offset           query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.InventarioListResponse
// @Router       /api/inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	f := repository.InventarioFilter{
		PresentacionID: c.Query("presentacion_id"),
		AlmacenID:      c.Query("almacen_id"),
		LoteID:         c.Query("lote_id"),
		BajoMinimo:     c.QueryBool("bajo_minimo", false),
	}
	// Usuarios con almacén asignado solo ven el suyo.
	if alm := GetAlmacenID(c); alm != "" {
		f.AlmacenID = alm
	}
	filas, err := h.uc.List(f, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.InventarioResponse, 0, len(filas))
	for _, inv := range filas {
		items = append(items, toInventarioResponse(inv))
	}
	return c.JSON(dto.InventarioListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Delete godoc
// @Summary      Eliminar fila de inventario
// @Description  Solo si no tiene movimientos; un remanente positivo se descarga
// @Description  con un movimiento de salida antes de borrar.
// @Tags         inventario
// @Security     Bearer
// @Param        id   path  string  true  "ID de la fila"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventario/{id} [delete]
func (h *InventarioHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.EliminarRegistro(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
