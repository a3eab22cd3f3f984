package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/crudonatural/reportes-api/internal/application/reportes"
	"github.com/crudonatural/reportes-api/internal/infrastructure/postgres"
	httpRouter "github.com/crudonatural/reportes-api/internal/interfaces/http"
	"github.com/crudonatural/reportes-api/pkg/config"
	"github.com/crudonatural/reportes-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.App.LogLevel)
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

	pedidoRepo := postgres.NewPedidoRepository(pool)
	precioRepo := postgres.NewPrecioRepository(pool)
	puntoVentaRepo := postgres.NewPuntoVentaRepository(pool)

	cargador := reportes.NuevoCargadorCatalogo(precioRepo, log)
	reportesUC := reportes.NuevoReportesUseCase(pedidoRepo, puntoVentaRepo, cargador, log)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{ReportesUC: reportesUC})

	// Apagado prolijo con SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info().Msg("apagando servidor")
		_ = app.Shutdown()
	}()

	if err := app.Listen(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("servidor HTTP")
	}
}
