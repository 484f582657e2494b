package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tiendapatitas/ventas-api/internal/application/usecase"
	"github.com/tiendapatitas/ventas-api/internal/domain/repository"
	"github.com/tiendapatitas/ventas-api/internal/infrastructure/jsonstore"
	httpRouter "github.com/tiendapatitas/ventas-api/internal/interfaces/http"
	"github.com/tiendapatitas/ventas-api/pkg/config"
	"github.com/tiendapatitas/ventas-api/pkg/logger"
	"github.com/tiendapatitas/ventas-api/pkg/token"
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
		Str("data_dir", cfg.Data.Dir).
		Msg("iniciando aplicación")

	store := jsonstore.New(cfg.Data.Dir)
	if err := store.Ensure(repository.ColProductos, repository.ColUsuarios, repository.ColVentas); err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de datos")
	}

	// Emisor de tokens de sesión: JWT con secreto configurado; sin secreto se
	// cae al token estático de compatibilidad con el sistema anterior.
	var issuer token.Issuer
	if cfg.JWT.Secret != "" {
		issuer = token.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	} else {
		log.Warn().Msg("JWT_SECRET no configurado; el login emitirá un token estático")
		issuer = token.StaticIssuer{Token: "demo-token"}
	}

	productoUC := usecase.NewProductoUseCase(store)
	usuarioUC := usecase.NewUsuarioUseCase(store, issuer)
	ventaUC := usecase.NewVentaUseCase(store)

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
		ProductoUC: productoUC,
		UsuarioUC:  usuarioUC,
		VentaUC:    ventaUC,
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
