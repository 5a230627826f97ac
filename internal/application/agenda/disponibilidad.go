// Package agenda implementa el guardián de conflictos de agenda: la invariante
// "ninguna pareja de citas no canceladas comparte (fecha, hora, veterinario)".
package agenda

import (
	"context"

	"github.com/clinicavet/veterinaria-api/internal/domain"
	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
)

// Guardia verifica disponibilidad antes de crear o actualizar una cita.
//
// Es una comprobación leer-luego-actuar: por sí sola no es atómica bajo
// creación concurrente. La base debe mantener además una restricción de
// unicidad sobre (fecha, hora, veterinario_id); esta guardia existe para dar
// un error de negocio legible antes de llegar a la mutación.
type Guardia struct {
	citas repository.CitaRepository
}

// NewGuardia construye el guardián sobre el repositorio de citas.
func NewGuardia(citas repository.CitaRepository) *Guardia {
	return &Guardia{citas: citas}
}

// VerificarDisponibilidad comprueba que el horario esté libre para el
// veterinario. En actualizaciones, excluirCitaID evita que la cita choque
// consigo misma. Devuelve ErrConflictoAgenda si el hueco está ocupado.
func (g *Guardia) VerificarDisponibilidad(ctx context.Context, rol string, horario entity.Horario, veterinarioID int, excluirCitaID *int) error {
	ocupado, err := g.citas.ExisteChoque(ctx, rol, horario, veterinarioID, excluirCitaID)
	if err != nil {
		return err
	}
	if ocupado {
		return domain.ErrConflictoAgenda
	}
	return nil
}
