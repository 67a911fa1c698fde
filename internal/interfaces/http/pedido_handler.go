package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	pedidoapp "github.com/jdvaldes/acopio-api/internal/application/pedido"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// PedidoHandler maneja las peticiones HTTP para Pedido (protegido).
type PedidoHandler struct {
	uc *pedidoapp.UseCase
}

// NewPedidoHandler construye el handler.
func NewPedidoHandler(uc *pedidoapp.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Un pedido no compromete stock; la disponibilidad se verifica al convertirlo.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPedidoRequest  true  "Datos del pedido"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearPedidoRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	p, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPedidoResponse(p))
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	p, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toPedidoResponse(p))
}

// List godoc
// @Summary      Listar pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        cliente_id   query  string  false  "Filtrar por cliente"
// @Param        almacen_id   query  string  false  "Filtrar por almacén"
// @Param        vendedor_id  query  string  false  "Filtrar por vendedor"
// @Param        estado       query  string  false  "programado, confirmado, entregado o cancelado"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.PedidoListResponse
// @Router       /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	f := repository.PedidoFilter{
		ClienteID:  c.Query("cliente_id"),
		AlmacenID:  c.Query("almacen_id"),
		VendedorID: c.Query("vendedor_id"),
		Estado:     c.Query("estado"),
	}
	if alm := GetAlmacenID(c); alm != "" {
		f.AlmacenID = alm
	}
	pedidos, err := h.uc.List(f, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		items = append(items, toPedidoResponse(p))
	}
	return c.JSON(dto.PedidoListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Update godoc
// @Summary      Actualizar pedido
// @Description  Cambios de estado validados por la máquina de estados:
// @Description  programado → confirmado → entregado, cancelable antes de terminar.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.ActualizarPedidoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PedidoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.ActualizarPedidoRequest
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
	return c.JSON(toPedidoResponse(p))
}

// VerificarStock godoc
// @Summary      Verificar disponibilidad de stock del pedido
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.VerificarStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/verificar-stock [get]
func (h *PedidoHandler) VerificarStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.VerificarStock(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Convertir godoc
// @Summary      Convertir pedido en venta
// @Description  Crea la venta con el motor transaccional y marca el pedido como
// @Description  entregado en la misma transacción. Solo pedidos confirmados.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.ConvertirPedidoRequest  false  "Opciones de conversión"
// @Success      201   {object}  dto.VentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/convertir [post]
func (h *PedidoHandler) Convertir(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	var in dto.ConvertirPedidoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "INVALID_BODY", "cuerpo inválido")
		}
		if err := validate.Struct(in); err != nil {
			return badRequest(c, "VALIDATION", err.Error())
		}
	}
	v, err := h.uc.Convertir(c.Context(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toVentaResponse(v))
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         pedidos
// @Security     Bearer
// @Param        id   path  string  true  "ID del pedido"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
