package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
	"github.com/tu-usuario/cellar-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cellar-pro/internal/interfaces/http"
	"github.com/tu-usuario/cellar-pro/pkg/config"
	"github.com/tu-usuario/cellar-pro/pkg/logger"
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

	tankRepo := postgres.NewTankRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	typeRepo := postgres.NewTransactionTypeRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// El catálogo de tipos se carga una sola vez, antes de aceptar tráfico:
	// el libro de transacciones no consulta la BD por tipos.
	types, err := cellar.LoadTypeCache(typeRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de tipos de transacción")
	}
	log.Info().Int("types", types.Len()).Msg("catálogo de tipos cargado")

	ledgerUC := cellar.NewLedgerUseCase(txRunner, batchRepo, txnRepo, types)
	batchUC := cellar.NewBatchUseCase(txRunner, tankRepo, batchRepo, ledgerUC, types)
	transferUC := cellar.NewTransferUseCase(txRunner, ledgerUC, batchUC, types)
	tankUC := usecase.NewTankUseCase(tankRepo, unitRepo)
	lookupUC := usecase.NewLookupUseCase(unitRepo, types)

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
		Title:    "Cellar Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		TankUC:     tankUC,
		LookupUC:   lookupUC,
		BatchUC:    batchUC,
		LedgerUC:   ledgerUC,
		TransferUC: transferUC,
		JWTSecret:  cfg.JWT.Secret,
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
