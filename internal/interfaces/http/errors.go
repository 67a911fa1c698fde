package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/dto"
	ventaapp "github.com/jdvaldes/acopio-api/internal/application/venta"
	"github.com/jdvaldes/acopio-api/internal/domain"
)

// respondError traduce errores de dominio a status HTTP. Los casos de uso
// envuelven los sentinelas con %w, por eso se usa errors.Is y no igualdad.
func respondError(c *fiber.Ctx, err error) error {
	var stockErr *ventaapp.StockInsuficienteError
	if errors.As(err, &stockErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK", Message: stockErr.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrUsernameExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: "el nombre de usuario ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrLoteInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOTE_INSUFICIENTE", Message: "cantidad insuficiente en el lote"})
	case errors.Is(err, domain.ErrPagoExcedeSaldo):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PAGO_EXCEDE_SALDO", Message: "el pago excede el saldo pendiente de la venta"})
	case errors.Is(err, domain.ErrVentaConPagos):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "VENTA_CON_PAGOS", Message: "la venta tiene pagos registrados; elimine los pagos primero"})
	case errors.Is(err, domain.ErrEstadoPedido):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTADO_PEDIDO", Message: "transición de estado de pedido no permitida"})
	case errors.Is(err, domain.ErrInventarioConMovs):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVENTARIO_CON_MOVIMIENTOS", Message: "el inventario tiene movimientos registrados"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual del recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// badRequest respuesta 400 con mensaje explícito (body ilegible o validación).
func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
