// seed crea el usuario administrador inicial si aún no existe.
//
// Uso: go run ./cmd/seed
// Lee SEED_ADMIN_NOMBRE, SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD del entorno;
// es idempotente: si el email ya está registrado no hace nada.
package main

import (
	"context"
	"time"

	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/infrastructure/postgres"
	"github.com/clinicavet/veterinaria-api/pkg/config"
	"github.com/clinicavet/veterinaria-api/pkg/logger"
	"github.com/clinicavet/veterinaria-api/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminContrasena == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es obligatorio")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conexiones, err := postgres.NewConexiones(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conexiones.Close()

	usuarios := postgres.NewUsuarioRepository(conexiones)
	existente, err := usuarios.BuscarPorEmail(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("verificar administrador existente")
	}
	if existente != nil {
		log.Info().
			Str("email", cfg.Seed.AdminEmail).
			Msg("el administrador ya existe, nada que hacer")
		return
	}

	hash, err := password.NewBcryptHasher().Hash(cfg.Seed.AdminContrasena)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	invocador := postgres.NewStore(conexiones)
	res, err := invocador.Invoke(ctx, rbac.RolAdministrador, "fn_crear_usuario",
		cfg.Seed.AdminNombre, cfg.Seed.AdminEmail, hash, rbac.RolAdministrador)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	if res.EsError() {
		log.Fatal().Str("detalle", res.Mensaje()).Msg("crear administrador")
	}

	log.Info().
		Str("email", cfg.Seed.AdminEmail).
		Msg("administrador creado")
}
