package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameExists     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrLoteInsuficiente   = errors.New("cantidad insuficiente en el lote")
	ErrPagoExcedeSaldo    = errors.New("el pago excede el saldo pendiente")
	ErrVentaConPagos      = errors.New("la venta tiene pagos registrados")
	ErrEstadoPedido       = errors.New("transición de estado de pedido no permitida")
	ErrInventarioConMovs  = errors.New("el inventario tiene movimientos registrados")
)
