package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo lectura de credenciales para el login. El login ocurre antes de
// conocer el rol del solicitante, así que usa el pool de administrador, único
// con SELECT directo sobre la tabla de usuarios.
type UsuarioRepo struct {
	conexiones *Conexiones
}

// NewUsuarioRepository construye el adaptador de credenciales.
func NewUsuarioRepository(conexiones *Conexiones) *UsuarioRepo {
	return &UsuarioRepo{conexiones: conexiones}
}

// BuscarPorEmail devuelve nil, nil si el email no existe.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	pool, err := r.conexiones.Pool(rbac.RolAdministrador)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, nombre, email, password_hash, rol
		FROM usuarios WHERE email = $1 LIMIT 1`
	var u entity.Usuario
	err = pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario por email: %w", err)
	}
	return &u, nil
}
