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

	"github.com/clinicavet/veterinaria-api/internal/application/agenda"
	"github.com/clinicavet/veterinaria-api/internal/application/auth"
	"github.com/clinicavet/veterinaria-api/internal/application/facturacion"
	infrapdf "github.com/clinicavet/veterinaria-api/internal/infrastructure/pdf"
	"github.com/clinicavet/veterinaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/clinicavet/veterinaria-api/internal/interfaces/http"
	"github.com/clinicavet/veterinaria-api/pkg/config"
	pkgjwt "github.com/clinicavet/veterinaria-api/pkg/jwt"
	"github.com/clinicavet/veterinaria-api/pkg/logger"
	"github.com/clinicavet/veterinaria-api/pkg/password"
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
	conexiones, err := postgres.NewConexiones(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conexiones.Close()

	invocador := postgres.NewStore(conexiones)
	usuarioRepo := postgres.NewUsuarioRepository(conexiones)
	citaRepo := postgres.NewCitaRepository(conexiones)
	clienteRepo := postgres.NewClienteRepository(conexiones)
	consultaRepo := postgres.NewConsultaRepository(conexiones)

	jwtCfg := pkgjwt.Config{
		Secret:     cfg.JWT.Secret,
		Algoritmo:  cfg.JWT.Algoritmo,
		ExpMinutos: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	hasher := password.NewBcryptHasher()
	authUC := auth.NewAuthUseCase(usuarioRepo, hasher, jwtCfg)
	guardia := agenda.NewGuardia(citaRepo)

	// PDF: recibo imprimible de la factura
	reciboGenerator := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)
	pdfUC := facturacion.NewPDFUseCase(invocador, reciboGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Veterinaria API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		Invocador: invocador,
		Guardia:   guardia,
		Clientes:  clienteRepo,
		Consultas: consultaRepo,
		PDF:       pdfUC,
		Hasher:    hasher,
		JWT:       jwtCfg,
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
