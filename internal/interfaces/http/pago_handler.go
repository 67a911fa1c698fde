package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	pagoapp "github.com/jdvaldes/acopio-api/internal/application/pago"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// PagoHandler maneja las peticiones HTTP para Pago (protegido).
type PagoHandler struct {
	uc *pagoapp.UseCase
}

// NewPagoHandler construye el handler.
func NewPagoHandler(uc *pagoapp.UseCase) *PagoHandler {
	return &PagoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar pago
// @Description  Abona contra una venta y recalcula su estado de pago en la misma
// @Description  transacción. Rechaza pagos que excedan el saldo pendiente.
// @Tags         pagos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPagoRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PagoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PagoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	p, estado, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPagoResponse(p, estado))
}

// GetByID godoc
// @Summary      Obtener pago por ID
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PagoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [get]
func (h *PagoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	p, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPagoResponse(p, ""))
}

// List godoc
// @Summary      Listar pagos
// @Tags         pagos
// @Security     Bearer
// @Produce      json
// @Param        venta_id     query  string  false  "Filtrar por venta"
// @Param        metodo_pago  query  string  false  "efectivo, transferencia o tarjeta"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PagoListResponse
// @Router       /api/pagos [get]
func (h *PagoHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	pagos, err := h.uc.List(c.Query("venta_id"), c.Query("metodo_pago"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		items = append(items, toPagoResponse(p, ""))
	}
	return c.JSON(dto.PagoListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Delete godoc
// @Summary      Eliminar pago
// @Description  Retira el abono y recalcula el estado de pago de la venta.
// @Tags         pagos
// @Security     Bearer
// @Param        id   path  string  true  "ID del pago"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pagos/{id} [delete]
func (h *PagoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
