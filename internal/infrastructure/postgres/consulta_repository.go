package postgres

import (
	"context"
	"fmt"

	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
)

var _ repository.ConsultaRepository = (*ConsultaRepo)(nil)

// ConsultaRepo verificación de consultas del día sobre PostgreSQL.
type ConsultaRepo struct {
	conexiones *Conexiones
}

// NewConsultaRepository construye el adaptador de consultas.
func NewConsultaRepository(conexiones *Conexiones) *ConsultaRepo {
	return &ConsultaRepo{conexiones: conexiones}
}

// ExisteConsultaHoy responde si la mascota ya tiene una consulta registrada hoy.
func (r *ConsultaRepo) ExisteConsultaHoy(ctx context.Context, rol string, mascotaID int) (bool, error) {
	pool, err := r.conexiones.Pool(rol)
	if err != nil {
		return false, err
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM consultas WHERE mascota_id = $1 AND fecha = CURRENT_DATE
		)`
	var existe bool
	if err := pool.QueryRow(ctx, query, mascotaID).Scan(&existe); err != nil {
		return false, fmt.Errorf("verificar consulta del día: %w", err)
	}
	return existe, nil
}
