package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	"github.com/jdvaldes/acopio-api/internal/application/recibo"
	ventaapp "github.com/jdvaldes/acopio-api/internal/application/venta"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
	"github.com/jdvaldes/acopio-api/pkg/validate"
)

// VentaHandler maneja las peticiones HTTP del motor de ventas (protegido).
type VentaHandler struct {
	uc       *ventaapp.UseCase
	reciboUC *recibo.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventaapp.UseCase, reciboUC *recibo.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc, reciboUC: reciboUC}
}

// Create godoc
// @Summary      Crear venta
// @Description  Descuenta inventario, congela precios y escribe los movimientos
// @Description  de salida en una sola transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	v, err := h.uc.Crear(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toVentaResponse(v))
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	v, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toVentaResponse(v))
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        cliente_id   query  string  false  "Filtrar por cliente"
// @Param        almacen_id   query  string  false  "Filtrar por almacén"
// @Param        vendedor_id  query  string  false  "Filtrar por vendedor"
// @Param        estado_pago  query  string  false  "pendiente, parcial o pagado"
// @Param        desde        query  string  false  "Fecha inicial (RFC3339)"
// @Param        hasta        query  string  false  "Fecha final (RFC3339)"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.VentaListResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	desde, err := parseFecha(c.Query("desde"))
	if err != nil {
		return badRequest(c, "VALIDATION", "desde debe ser RFC3339")
	}
	hasta, err := parseFecha(c.Query("hasta"))
	if err != nil {
		return badRequest(c, "VALIDATION", "hasta debe ser RFC3339")
	}
	f := repository.VentaFilter{
		ClienteID:  c.Query("cliente_id"),
		AlmacenID:  c.Query("almacen_id"),
		VendedorID: c.Query("vendedor_id"),
		EstadoPago: c.Query("estado_pago"),
		Desde:      desde,
		Hasta:      hasta,
	}
	if alm := GetAlmacenID(c); alm != "" {
		f.AlmacenID = alm
	}
	ventas, err := h.uc.List(f, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		items = append(items, toVentaResponse(v))
	}
	return c.JSON(dto.VentaListResponse{Items: items, Page: pageFrom(limit, offset, len(items))})
}

// Delete godoc
// @Summary      Eliminar venta (reversión completa)
// @Description  Restituye el inventario con movimientos de entrada compensatorios.
// @Description  Falla si la venta tiene pagos registrados.
// @Tags         ventas
// @Security     Bearer
// @Param        id   path  string  true  "ID de la venta"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	if err := h.uc.Eliminar(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadRecibo godoc
// @Summary      Descargar recibo de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/recibo [get]
func (h *VentaHandler) DownloadRecibo(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	pdfBytes, filename, err := h.reciboUC.DownloadReciboPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
