package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
	apphttp "github.com/clinicavet/veterinaria-api/internal/interfaces/http"
	"github.com/clinicavet/veterinaria-api/pkg/password"
)

func appUsuarios(inv *invocadorFalso) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Invocador: inv,
		Hasher:    password.NewBcryptHasher(),
		JWT:       cfgJWTTest,
	})
	return app
}

func TestCrearUsuario_HasheaLaContrasena(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_crear_usuario", store.Exito(map[string]any{"id": float64(2)}))
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/crear-usuario",
		tokenPara(t, 1, rbac.RolAdministrador),
		dto.UsuarioCreateRequest{
			Nombre: "Ana", Email: "ana@clinica.com",
			Password: "clave123", Rol: rbac.RolSecretaria,
		})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, inv.llamadas, 1)
	require.Equal(t, "fn_crear_usuario", inv.llamadas[0].Fn)
	require.Len(t, inv.llamadas[0].Args, 4)

	hash, ok := inv.llamadas[0].Args[2].(string)
	require.True(t, ok)
	assert.NotEqual(t, "clave123", hash, "la contraseña nunca viaja en claro al almacén")
	assert.True(t, strings.HasPrefix(hash, "$2"), "se espera un hash bcrypt")
	assert.NoError(t, password.NewBcryptHasher().Verificar("clave123", hash))
}

func TestCrearUsuario_SoloAdministrador(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/crear-usuario",
		tokenPara(t, 2, rbac.RolSecretaria),
		dto.UsuarioCreateRequest{
			Nombre: "Eva", Email: "eva@clinica.com",
			Password: "clave123", Rol: rbac.RolSecretaria,
		})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Empty(t, inv.llamadas)
}

func TestListarUsuarios_Vacio_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_usuarios", store.Exito(nil))
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/listar-usuarios",
		tokenPara(t, 1, rbac.RolAdministrador), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "No hay usuarios registrados", body.Detail)
}

func TestListarRazas_Vacio_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_razas", store.Exito(nil))
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/razas/listar-razas",
		tokenPara(t, 2, rbac.RolSecretaria), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "No hay razas registradas aún", body.Detail)
}

func TestListarMedicamentos_Vacio_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_medicamentos", store.Exito(nil))
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/medicamentos/listar-medicamentos",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "No hay medicamentos registrados aún", body.Detail)
}

func TestListarMedicamentosConsulta_VacioDevuelveListaVacia(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_medicamentos_consulta", store.Exito(nil))
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/consulta-medicamentos/listar/4",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	lista := decodificar[[]any](t, resp)
	assert.Empty(t, lista, "las recetas vacías responden lista vacía, nunca error")
}

func TestAgregarMedicamentoConsulta_CantidadInvalida_Retorna400(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/consulta-medicamentos/agregar",
		tokenPara(t, 7, rbac.RolVeterinario),
		dto.ConsultaMedicamentoRequest{ConsultaID: 4, MedicamentoID: 2})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, inv.llamadas)
}

func TestEliminarUsuario_NoExiste_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_eliminar_usuario", store.Exito(nil))
	app := appUsuarios(inv)

	resp := hacerPeticion(t, app, http.MethodDelete, "/api/eliminar-usuario/5",
		tokenPara(t, 1, rbac.RolAdministrador), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Usuario no encontrado", body.Detail)
}
