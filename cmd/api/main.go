package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/tu-usuario/voltia-api/internal/application/backend"
	"github.com/tu-usuario/voltia-api/internal/application/mockdata"
	"github.com/tu-usuario/voltia-api/internal/infrastructure/snapshot"
	httpRouter "github.com/tu-usuario/voltia-api/internal/interfaces/http"
	"github.com/tu-usuario/voltia-api/pkg/config"
	"github.com/tu-usuario/voltia-api/pkg/logger"
)

func main() {
	_ = godotenv.Load() // opcional; viper lee el resto

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Dataset sintético: se genera una vez al arrancar y vive en memoria
	generator := mockdata.NewGenerator(mockdata.Options{
		Customers: cfg.Mock.Customers,
		Contracts: cfg.Mock.Contracts,
		Seed:      cfg.Mock.Seed,
	})
	data := generator.Generate()
	log.Info().
		Str("run_id", data.RunID).
		Int("customers", len(data.Customers)).
		Int("contracts", len(data.Contracts)).
		Int("bills", len(data.BillingHistory)).
		Int("usage_records", len(data.UsageData)).
		Int("payment_methods", len(data.PaymentMethods)).
		Msg("dataset generado")

	path, err := snapshot.Write(cfg.Snapshot.Dir, data)
	if err != nil {
		log.Fatal().Err(err).Msg("escribir snapshot del dataset")
	}
	log.Info().Str("file", path).Msg("snapshot guardado")

	svc := backend.NewService(data, backend.Delays{
		Database:    cfg.Mock.DatabaseDelay,
		ExternalAPI: cfg.Mock.ExternalAPIDelay,
		Heavy:       cfg.Mock.HeavyDelay,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Backend: svc,
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
