package agenda_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicavet/veterinaria-api/internal/application/agenda"
	"github.com/clinicavet/veterinaria-api/internal/domain"
	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
)

// citaOcupada registro mínimo de agenda para el repositorio falso.
type citaOcupada struct {
	id            int
	fecha, hora   string
	veterinarioID int
}

type agendaFalsa struct {
	citas []citaOcupada
}

func (a *agendaFalsa) ExisteChoque(_ context.Context, _ string, h entity.Horario, vetID int, excluir *int) (bool, error) {
	for _, c := range a.citas {
		if excluir != nil && c.id == *excluir {
			continue
		}
		if c.fecha == h.Fecha && c.hora == h.Hora && c.veterinarioID == vetID {
			return true, nil
		}
	}
	return false, nil
}

func TestVerificarDisponibilidad(t *testing.T) {
	repo := &agendaFalsa{citas: []citaOcupada{
		{id: 1, fecha: "2025-11-20", hora: "10:00:00", veterinarioID: 7},
	}}
	g := agenda.NewGuardia(repo)
	ctx := context.Background()

	// misma tripleta (fecha, hora, veterinario): conflicto
	err := g.VerificarDisponibilidad(ctx, "secretaria", entity.Horario{Fecha: "2025-11-20", Hora: "10:00:00"}, 7, nil)
	assert.ErrorIs(t, err, domain.ErrConflictoAgenda)

	// mismo horario, otro veterinario: libre
	err = g.VerificarDisponibilidad(ctx, "secretaria", entity.Horario{Fecha: "2025-11-20", Hora: "10:00:00"}, 8, nil)
	assert.NoError(t, err)

	// otro horario, mismo veterinario: libre
	err = g.VerificarDisponibilidad(ctx, "secretaria", entity.Horario{Fecha: "2025-11-20", Hora: "11:00:00"}, 7, nil)
	assert.NoError(t, err)
}

// Al actualizar, la cita no debe chocar consigo misma.
func TestVerificarDisponibilidad_ExcluyeLaPropiaCita(t *testing.T) {
	repo := &agendaFalsa{citas: []citaOcupada{
		{id: 5, fecha: "2025-11-20", hora: "10:00:00", veterinarioID: 7},
	}}
	g := agenda.NewGuardia(repo)
	propia := 5

	err := g.VerificarDisponibilidad(context.Background(), "administrador",
		entity.Horario{Fecha: "2025-11-20", Hora: "10:00:00"}, 7, &propia)
	assert.NoError(t, err)

	// pero sí choca contra una cita ajena en el mismo hueco
	repo.citas = append(repo.citas, citaOcupada{id: 9, fecha: "2025-11-20", hora: "10:00:00", veterinarioID: 7})
	err = g.VerificarDisponibilidad(context.Background(), "administrador",
		entity.Horario{Fecha: "2025-11-20", Hora: "10:00:00"}, 7, &propia)
	assert.ErrorIs(t, err, domain.ErrConflictoAgenda)
}

func TestNormalizarFecha(t *testing.T) {
	casos := []struct {
		entrada string
		salida  string
	}{
		{"2025-11-20", "2025-11-20"},
		{"2025-11-20T10:30:00", "2025-11-20"},
		{"2025-11-20T10:30:00Z", "2025-11-20"},
		{"2025-11-20T23:59:00-05:00", "2025-11-20"}, // el offset no mueve la fecha: se toma el componente local
	}
	for _, c := range casos {
		got, err := agenda.NormalizarFecha(c.entrada)
		require.NoError(t, err, c.entrada)
		assert.Equal(t, c.salida, got, c.entrada)
	}

	for _, invalida := range []string{"", "20-11-2025", "2025-13-40", "mañana"} {
		_, err := agenda.NormalizarFecha(invalida)
		assert.Error(t, err, invalida)
	}
}

func TestNormalizarHora(t *testing.T) {
	got, err := agenda.NormalizarHora("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", got)

	got, err = agenda.NormalizarHora("09:30:15")
	require.NoError(t, err)
	assert.Equal(t, "09:30:15", got)

	for _, invalida := range []string{"", "25:00", "diez"} {
		_, err := agenda.NormalizarHora(invalida)
		assert.Error(t, err, invalida)
	}
}
