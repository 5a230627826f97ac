package postgres

import (
	"context"
	"fmt"

	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo verificación de duplicados de clientes sobre PostgreSQL.
type ClienteRepo struct {
	conexiones *Conexiones
}

// NewClienteRepository construye el adaptador de clientes.
func NewClienteRepository(conexiones *Conexiones) *ClienteRepo {
	return &ClienteRepo{conexiones: conexiones}
}

// ExistePorNombreTelefono responde si ya hay un cliente con ese nombre y teléfono.
func (r *ClienteRepo) ExistePorNombreTelefono(ctx context.Context, rol, nombre, telefono string) (bool, error) {
	pool, err := r.conexiones.Pool(rol)
	if err != nil {
		return false, err
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM clientes WHERE nombre = $1 AND telefono = $2
		)`
	var existe bool
	if err := pool.QueryRow(ctx, query, nombre, telefono).Scan(&existe); err != nil {
		return false, fmt.Errorf("verificar cliente duplicado: %w", err)
	}
	return existe, nil
}
