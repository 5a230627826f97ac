package http_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicavet/veterinaria-api/internal/application/agenda"
	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
	apphttp "github.com/clinicavet/veterinaria-api/internal/interfaces/http"
)

// agendaOcupada fake del repositorio de citas: la clave es la tripleta
// (fecha, hora, veterinario) y el valor el id de la cita que la ocupa.
type agendaOcupada struct {
	ocupadas map[string]int
}

func nuevaAgendaOcupada() *agendaOcupada {
	return &agendaOcupada{ocupadas: make(map[string]int)}
}

func (a *agendaOcupada) ocupar(citaID int, fecha, hora string, vetID int) {
	a.ocupadas[fmt.Sprintf("%s|%s|%d", fecha, hora, vetID)] = citaID
}

func (a *agendaOcupada) ExisteChoque(_ context.Context, _ string, h entity.Horario, vetID int, excluir *int) (bool, error) {
	id, ok := a.ocupadas[fmt.Sprintf("%s|%s|%d", h.Fecha, h.Hora, vetID)]
	if !ok {
		return false, nil
	}
	if excluir != nil && *excluir == id {
		return false, nil
	}
	return true, nil
}

// appCitas app con las rutas completas y los fakes inyectados.
func appCitas(inv *invocadorFalso, ag *agendaOcupada) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Invocador: inv,
		Guardia:   agenda.NewGuardia(ag),
		JWT:       cfgJWTTest,
	})
	return app
}

func TestCrearCita_ChoqueDeAgenda_Retorna400(t *testing.T) {
	inv := nuevoInvocadorFalso()
	ag := nuevaAgendaOcupada()
	ag.ocupar(1, "2025-11-20", "10:00:00", 7)
	app := appCitas(inv, ag)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/citas/crear-cita",
		tokenPara(t, 2, rbac.RolSecretaria),
		dto.CitaCreateRequest{Fecha: "2025-11-20", Hora: "10:00", VeterinarioID: 7})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "El veterinario ya tiene una cita programada en esa fecha y hora.", body.Detail)
	assert.Empty(t, inv.llamadas, "con choque no debe despacharse al almacén")
}

func TestCrearCita_OtroVeterinarioMismoHorario_Crea(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_crear_cita", store.Exito(map[string]any{"id": float64(9)}))
	ag := nuevaAgendaOcupada()
	ag.ocupar(1, "2025-11-20", "10:00:00", 7)
	app := appCitas(inv, ag)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/citas/crear-cita",
		tokenPara(t, 2, rbac.RolSecretaria),
		dto.CitaCreateRequest{Fecha: "2025-11-20", Hora: "10:00", VeterinarioID: 8})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"otro veterinario en el mismo horario no es choque")
}

func TestCrearCita_NormalizaFechaConHora(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_crear_cita", store.Exito(map[string]any{"id": float64(3)}))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodPost, "/api/citas/crear-cita",
		tokenPara(t, 1, rbac.RolAdministrador),
		dto.CitaCreateRequest{Fecha: "2025-11-20T09:30:00", Hora: "10:00", VeterinarioID: 7})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, inv.llamadas, 1)
	assert.Equal(t, "fn_crear_cita", inv.llamadas[0].Fn)
	// La fecha-hora se trunca a la fecha y la hora se normaliza con segundos.
	assert.Equal(t, []any{"2025-11-20", "10:00:00", 7}, inv.llamadas[0].Args)
}

func TestCrearCita_FechaInvalida_Retorna400(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodPost, "/api/citas/crear-cita",
		tokenPara(t, 1, rbac.RolAdministrador),
		dto.CitaCreateRequest{Fecha: "20-11-2025", Hora: "10:00", VeterinarioID: 7})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, inv.llamadas)
}

func TestActualizarCita_MismoHorarioPropio_NoEsChoque(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_actualizar_cita", store.Exito(map[string]any{"id": float64(5)}))
	ag := nuevaAgendaOcupada()
	ag.ocupar(5, "2025-11-20", "10:00:00", 7)
	app := appCitas(inv, ag)

	resp := hacerPeticion(t, app, http.MethodPut, "/api/citas/actualizar-cita/5",
		tokenPara(t, 2, rbac.RolSecretaria),
		dto.CitaUpdateRequest{Fecha: "2025-11-20", Hora: "10:00", VeterinarioID: 7})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"conservar fecha y hora en la actualización no debe contar como choque")
}

func TestActualizarCita_HorarioAjeno_Retorna400(t *testing.T) {
	inv := nuevoInvocadorFalso()
	ag := nuevaAgendaOcupada()
	ag.ocupar(1, "2025-11-20", "10:00:00", 7)
	app := appCitas(inv, ag)

	resp := hacerPeticion(t, app, http.MethodPut, "/api/citas/actualizar-cita/5",
		tokenPara(t, 2, rbac.RolSecretaria),
		dto.CitaUpdateRequest{Fecha: "2025-11-20", Hora: "10:00", VeterinarioID: 7})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "El veterinario ya tiene una cita programada en esa fecha y hora.", body.Detail)
}

func TestObtenerCita_VeterinarioAjeno_Retorna403(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_obtener_cita", store.Exito(map[string]any{
		"id": float64(4), "veterinario_id": float64(9),
	}))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodGet, "/api/citas/obtener-cita/4",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "No autorizado a ver esta cita.", body.Detail)
}

func TestObtenerCita_VeterinarioPropia_Retorna200(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_obtener_cita", store.Exito(map[string]any{
		"id": float64(4), "veterinario_id": float64(7),
	}))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodGet, "/api/citas/obtener-cita/4",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestObtenerCita_NoExiste_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_obtener_cita", store.Exito(nil))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodGet, "/api/citas/obtener-cita/99",
		tokenPara(t, 1, rbac.RolAdministrador), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "La cita con ID 99 no existe.", body.Detail)
}

func TestListarCitas_VeterinarioVeLasSuyas(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_citas_por_veterinario", store.Exito([]any{
		map[string]any{"id": float64(1), "veterinario_id": float64(7)},
	}))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodGet, "/api/citas/listar-citas",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, inv.llamadas, 1)
	assert.Equal(t, "fn_listar_citas_por_veterinario", inv.llamadas[0].Fn)
	assert.Equal(t, []any{7}, inv.llamadas[0].Args,
		"el filtro debe usar el id del token, no uno del cliente")
}

func TestListarCitas_VacioDevuelveFilaDeCortesia(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_citas", store.Exito(nil))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodGet, "/api/citas/listar-citas",
		tokenPara(t, 1, rbac.RolAdministrador), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	filas := decodificar[[]dto.MensajeFila](t, resp)
	require.Len(t, filas, 1)
	assert.Equal(t, "Aún no hay citas registradas", filas[0].Message)
}

func TestListarCitasVeterinario_VacioDevuelveListaVacia(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_citas_por_veterinario", store.Exito(nil))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodGet, "/api/citas/listar-citas-veterinario",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	lista := decodificar[[]any](t, resp)
	assert.Empty(t, lista, "sin citas esta ruta responde lista vacía, no mensaje")
}

func TestActualizarEstado_SinEstado_Retorna400(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodPut, "/api/citas/actualizar-estado/3",
		tokenPara(t, 7, rbac.RolVeterinario),
		dto.CitaEstadoRequest{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "El estado es requerido", body.Detail)
}

func TestActualizarEstado_SoloVeterinario(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodPut, "/api/citas/actualizar-estado/3",
		tokenPara(t, 1, rbac.RolAdministrador),
		dto.CitaEstadoRequest{Estado: entity.CitaAtendida})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEliminarCita_NoExiste_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_eliminar_cita", store.Exito(nil))
	app := appCitas(inv, nuevaAgendaOcupada())

	resp := hacerPeticion(t, app, http.MethodDelete, "/api/citas/eliminar-cita/12",
		tokenPara(t, 2, rbac.RolSecretaria), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "La cita con ID 12 no existe o ya fue eliminada.", body.Detail)
}
