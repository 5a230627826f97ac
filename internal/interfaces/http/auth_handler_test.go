package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicavet/veterinaria-api/internal/application/auth"
	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	apphttp "github.com/clinicavet/veterinaria-api/internal/interfaces/http"
	pkgjwt "github.com/clinicavet/veterinaria-api/pkg/jwt"
	"github.com/clinicavet/veterinaria-api/pkg/password"
)

// usuariosFijos fake del repositorio de credenciales indexado por email.
type usuariosFijos struct {
	porEmail map[string]*entity.Usuario
}

func (r *usuariosFijos) BuscarPorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	return r.porEmail[email], nil
}

func appLogin(t *testing.T, usuarios map[string]*entity.Usuario) *fiber.App {
	t.Helper()
	hasher := password.NewBcryptHasher()
	uc := auth.NewAuthUseCase(&usuariosFijos{porEmail: usuarios}, hasher, cfgJWTTest)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{AuthUC: uc, JWT: cfgJWTTest})
	return app
}

func hashDe(t *testing.T, plano string) string {
	t.Helper()
	h, err := password.NewBcryptHasher().Hash(plano)
	require.NoError(t, err)
	return h
}

func TestLogin_Exitoso(t *testing.T) {
	app := appLogin(t, map[string]*entity.Usuario{
		"ana@clinica.com": {
			ID: 3, Nombre: "Ana", Email: "ana@clinica.com",
			PasswordHash: hashDe(t, "clave123"), Rol: rbac.RolSecretaria,
		},
	})

	resp := hacerPeticion(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "ana@clinica.com", Password: "clave123"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodificar[dto.LoginResponse](t, resp)
	assert.True(t, out.Success)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, 3, out.Usuario.ID)
	assert.Equal(t, rbac.RolSecretaria, out.Usuario.Rol)

	// El token emitido debe ser verificable con la misma configuración.
	datos, err := pkgjwt.Analizar(cfgJWTTest, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 3, datos.ID)
	assert.Equal(t, rbac.RolSecretaria, datos.Rol)
}

func TestLogin_UsuarioInexistente_Retorna401(t *testing.T) {
	app := appLogin(t, nil)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "nadie@clinica.com", Password: "lo-que-sea"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Usuario no encontrado", body.Detail)
}

func TestLogin_ContrasenaIncorrecta_Retorna401(t *testing.T) {
	app := appLogin(t, map[string]*entity.Usuario{
		"ana@clinica.com": {
			ID: 3, Email: "ana@clinica.com",
			PasswordHash: hashDe(t, "clave123"), Rol: rbac.RolSecretaria,
		},
	})

	resp := hacerPeticion(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "ana@clinica.com", Password: "clave124"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Contraseña incorrecta", body.Detail)
}

func TestLogin_SinHashAlmacenado_Retorna500(t *testing.T) {
	app := appLogin(t, map[string]*entity.Usuario{
		"roto@clinica.com": {ID: 4, Email: "roto@clinica.com", Rol: rbac.RolVeterinario},
	})

	resp := hacerPeticion(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "roto@clinica.com", Password: "clave123"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Hash de contraseña no disponible", body.Detail)
}

func TestLogin_CamposVacios_Retorna400(t *testing.T) {
	app := appLogin(t, nil)

	resp := hacerPeticion(t, app, http.MethodPost, "/api/auth/login", "",
		dto.LoginRequest{Email: "ana@clinica.com"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "email y password son requeridos", body.Detail)
}
