package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvaldes/acopio-api/internal/application/auth"
	invapp "github.com/jdvaldes/acopio-api/internal/application/inventario"
	mermaapp "github.com/jdvaldes/acopio-api/internal/application/merma"
	pagoapp "github.com/jdvaldes/acopio-api/internal/application/pago"
	pedidoapp "github.com/jdvaldes/acopio-api/internal/application/pedido"
	"github.com/jdvaldes/acopio-api/internal/application/recibo"
	"github.com/jdvaldes/acopio-api/internal/application/usecase"
	ventaapp "github.com/jdvaldes/acopio-api/internal/application/venta"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC     *usecase.ProductoUseCase
	PresentacionUC *usecase.PresentacionUseCase
	AlmacenUC      *usecase.AlmacenUseCase
	ClienteUC      *usecase.ClienteUseCase
	ProveedorUC    *usecase.ProveedorUseCase
	LoteUC         *usecase.LoteUseCase
	GastoUC        *usecase.GastoUseCase
	MovimientoUC   *usecase.MovimientoUseCase
	InventarioUC   *invapp.UseCase
	VentaUC        *ventaapp.UseCase
	ReciboUC       *recibo.UseCase
	PagoUC         *pagoapp.UseCase
	PedidoUC       *pedidoapp.UseCase
	MermaUC        *mermaapp.UseCase
	AuthUC         *auth.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Solo admin y gerente pueden tocar el catálogo y los gastos.
	adminOGerente := RequireRol(entity.RolAdmin, entity.RolGerente)

	// Productos (protegido)
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", adminOGerente, productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", adminOGerente, productoHandler.Update)
	productos.Delete("/:id", RequireRol(entity.RolAdmin), productoHandler.Delete)

	// Presentaciones (protegido)
	presentaciones := protected.Group("/presentaciones")
	presentacionHandler := NewPresentacionHandler(deps.PresentacionUC)
	presentaciones.Post("/", adminOGerente, presentacionHandler.Create)
	presentaciones.Get("/", presentacionHandler.List)
	presentaciones.Get("/:id", presentacionHandler.GetByID)
	presentaciones.Put("/:id", adminOGerente, presentacionHandler.Update)
	presentaciones.Delete("/:id", RequireRol(entity.RolAdmin), presentacionHandler.Delete)

	// Almacenes (protegido)
	almacenes := protected.Group("/almacenes")
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacenes.Post("/", RequireRol(entity.RolAdmin), almacenHandler.Create)
	almacenes.Get("/", almacenHandler.List)
	almacenes.Get("/:id", almacenHandler.GetByID)
	almacenes.Put("/:id", RequireRol(entity.RolAdmin), almacenHandler.Update)
	almacenes.Delete("/:id", RequireRol(entity.RolAdmin), almacenHandler.Delete)

	// Clientes (protegido)
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", adminOGerente, clienteHandler.Delete)

	// Proveedores (protegido)
	proveedores := protected.Group("/proveedores")
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", adminOGerente, proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", adminOGerente, proveedorHandler.Update)
	proveedores.Delete("/:id", RequireRol(entity.RolAdmin), proveedorHandler.Delete)

	// Lotes (protegido)
	lotes := protected.Group("/lotes")
	loteHandler := NewLoteHandler(deps.LoteUC)
	lotes.Post("/", adminOGerente, loteHandler.Create)
	lotes.Get("/", loteHandler.List)
	lotes.Get("/:id", loteHandler.GetByID)
	lotes.Put("/:id", adminOGerente, loteHandler.Update)
	lotes.Delete("/:id", RequireRol(entity.RolAdmin), loteHandler.Delete)

	// Inventario (protegido)
	inventario := protected.Group("/inventario")
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventario.Post("/", adminOGerente, inventarioHandler.Create)
	inventario.Get("/", inventarioHandler.List)
	inventario.Get("/:id", inventarioHandler.GetByID)
	inventario.Put("/:id", adminOGerente, inventarioHandler.Ajustar)
	inventario.Delete("/:id", RequireRol(entity.RolAdmin), inventarioHandler.Delete)

	// Movimientos (protegido, solo lectura)
	movimientos := protected.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Get("/:id", movimientoHandler.GetByID)

	// Ventas (protegido)
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.ReciboUC)
	ventas.Post("/", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/:id", ventaHandler.GetByID)
	ventas.Get("/:id/recibo", ventaHandler.DownloadRecibo)
	ventas.Delete("/:id", adminOGerente, ventaHandler.Delete)

	// Pagos (protegido)
	pagos := protected.Group("/pagos")
	pagoHandler := NewPagoHandler(deps.PagoUC)
	pagos.Post("/", pagoHandler.Create)
	pagos.Get("/", pagoHandler.List)
	pagos.Get("/:id", pagoHandler.GetByID)
	pagos.Delete("/:id", adminOGerente, pagoHandler.Delete)

	// Pedidos (protegido)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Get("/:id", pedidoHandler.GetByID)
	pedidos.Get("/:id/verificar-stock", pedidoHandler.VerificarStock)
	pedidos.Post("/:id/convertir", pedidoHandler.Convertir)
	pedidos.Put("/:id", pedidoHandler.Update)
	pedidos.Delete("/:id", adminOGerente, pedidoHandler.Delete)

	// Mermas (protegido)
	mermas := protected.Group("/mermas")
	mermaHandler := NewMermaHandler(deps.MermaUC)
	mermas.Post("/", mermaHandler.Create)
	mermas.Get("/", mermaHandler.List)
	mermas.Get("/:id", mermaHandler.GetByID)
	mermas.Delete("/:id", adminOGerente, mermaHandler.Delete)

	// Gastos (protegido)
	gastos := protected.Group("/gastos")
	gastoHandler := NewGastoHandler(deps.GastoUC)
	gastos.Post("/", adminOGerente, gastoHandler.Create)
	gastos.Get("/", adminOGerente, gastoHandler.List)
	gastos.Get("/:id", adminOGerente, gastoHandler.GetByID)
	gastos.Put("/:id", adminOGerente, gastoHandler.Update)
	gastos.Delete("/:id", RequireRol(entity.RolAdmin), gastoHandler.Delete)
}
