package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/pkg/config"
)

// Conexiones mantiene un pool de PostgreSQL por rol de la aplicación.
// Cada rol se conecta con su propio usuario de base de datos; los GRANT sobre
// las funciones almacenadas son la segunda línea de autorización después del
// chequeo de permisos en la API.
type Conexiones struct {
	pools map[string]*pgxpool.Pool
}

// NewConexiones abre los tres pools (administrador, veterinario, secretaria)
// y verifica cada uno con un ping. Si alguno falla se cierran los ya abiertos.
func NewConexiones(ctx context.Context, cfg config.DBConfig) (*Conexiones, error) {
	credenciales := map[string]config.CredencialesRol{
		rbac.RolAdministrador: cfg.Administrador,
		rbac.RolVeterinario:   cfg.Veterinario,
		rbac.RolSecretaria:    cfg.Secretaria,
	}

	c := &Conexiones{pools: make(map[string]*pgxpool.Pool, len(credenciales))}
	for rol, cred := range credenciales {
		pool, err := nuevoPool(ctx, cfg.DSN(cred))
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("pool %s: %w", rol, err)
		}
		c.pools[rol] = pool
	}
	return c, nil
}

// Pool devuelve el pool del rol indicado.
func (c *Conexiones) Pool(rol string) (*pgxpool.Pool, error) {
	pool, ok := c.pools[rol]
	if !ok {
		return nil, fmt.Errorf("no hay pool para el rol %q", rol)
	}
	return pool, nil
}

// Close cierra todos los pools.
func (c *Conexiones) Close() {
	for _, pool := range c.pools {
		pool.Close()
	}
}

func nuevoPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
