package postgres

import (
	"context"
	"fmt"

	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
)

var _ repository.CitaRepository = (*CitaRepo)(nil)

// CitaRepo consultas de agenda sobre PostgreSQL para el guardián de conflictos.
type CitaRepo struct {
	conexiones *Conexiones
}

// NewCitaRepository construye el adaptador de agenda.
func NewCitaRepository(conexiones *Conexiones) *CitaRepo {
	return &CitaRepo{conexiones: conexiones}
}

// ExisteChoque responde si alguna cita ocupa (fecha, hora, veterinario).
// Con excluirCitaID la propia cita no cuenta como choque (actualizaciones).
func (r *CitaRepo) ExisteChoque(ctx context.Context, rol string, horario entity.Horario, veterinarioID int, excluirCitaID *int) (bool, error) {
	pool, err := r.conexiones.Pool(rol)
	if err != nil {
		return false, err
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM citas
			WHERE fecha = $1 AND hora = $2 AND veterinario_id = $3
		)`
	args := []any{horario.Fecha, horario.Hora, veterinarioID}
	if excluirCitaID != nil {
		query = `
		SELECT EXISTS (
			SELECT 1 FROM citas
			WHERE fecha = $1 AND hora = $2 AND veterinario_id = $3 AND id <> $4
		)`
		args = append(args, *excluirCitaID)
	}

	var existe bool
	if err := pool.QueryRow(ctx, query, args...).Scan(&existe); err != nil {
		return false, fmt.Errorf("verificar choque de agenda: %w", err)
	}
	return existe, nil
}
