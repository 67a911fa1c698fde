package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jdvaldes/acopio-api/internal/application/auth"
	invapp "github.com/jdvaldes/acopio-api/internal/application/inventario"
	mermaapp "github.com/jdvaldes/acopio-api/internal/application/merma"
	pagoapp "github.com/jdvaldes/acopio-api/internal/application/pago"
	pedidoapp "github.com/jdvaldes/acopio-api/internal/application/pedido"
	"github.com/jdvaldes/acopio-api/internal/application/recibo"
	"github.com/jdvaldes/acopio-api/internal/application/usecase"
	ventaapp "github.com/jdvaldes/acopio-api/internal/application/venta"
	infrapdf "github.com/jdvaldes/acopio-api/internal/infrastructure/pdf"
	"github.com/jdvaldes/acopio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jdvaldes/acopio-api/internal/interfaces/http"
	"github.com/jdvaldes/acopio-api/pkg/config"
	"github.com/jdvaldes/acopio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	presentacionRepo := postgres.NewPresentacionRepository(pool)
	almacenRepo := postgres.NewAlmacenRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	pagoRepo := postgres.NewPagoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	mermaRepo := postgres.NewMermaRepository(pool)
	gastoRepo := postgres.NewGastoRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productoUC := usecase.NewProductoUseCase(productoRepo)
	presentacionUC := usecase.NewPresentacionUseCase(presentacionRepo, productoRepo)
	almacenUC := usecase.NewAlmacenUseCase(almacenRepo)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	loteUC := usecase.NewLoteUseCase(loteRepo, productoRepo, almacenRepo, proveedorRepo)
	gastoUC := usecase.NewGastoUseCase(gastoRepo)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo)

	inventarioUC := invapp.NewUseCase(txRunner, inventarioRepo, presentacionRepo, almacenRepo)
	ventaUC := ventaapp.NewUseCase(txRunner, clienteRepo, almacenRepo, presentacionRepo, ventaRepo)
	pagoUC := pagoapp.NewUseCase(txRunner, pagoRepo)
	pedidoUC := pedidoapp.NewUseCase(txRunner, pedidoRepo, clienteRepo, almacenRepo, presentacionRepo, inventarioRepo, ventaUC)
	mermaUC := mermaapp.NewUseCase(txRunner, mermaRepo, loteRepo)

	// PDF: recibo de venta
	reciboGenerator := infrapdf.NewMarotoReciboGenerator()
	reciboUC := recibo.NewUseCase(ventaRepo, clienteRepo, almacenRepo, presentacionRepo, pagoRepo, reciboGenerator)

	authUC := auth.NewUseCase(userRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Acopio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:     productoUC,
		PresentacionUC: presentacionUC,
		AlmacenUC:      almacenUC,
		ClienteUC:      clienteUC,
		ProveedorUC:    proveedorUC,
		LoteUC:         loteUC,
		GastoUC:        gastoUC,
		MovimientoUC:   movimientoUC,
		InventarioUC:   inventarioUC,
		VentaUC:        ventaUC,
		ReciboUC:       reciboUC,
		PagoUC:         pagoUC,
		PedidoUC:       pedidoUC,
		MermaUC:        mermaUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
