package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/auth"
	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return respuestaError(c, fiber.StatusBadRequest, "email y password son requeridos")
	}

	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsuarioNoEncontrado):
			return respuestaError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
		case errors.Is(err, domain.ErrContrasenaIncorrecta):
			return respuestaError(c, fiber.StatusUnauthorized, "Contraseña incorrecta")
		case errors.Is(err, domain.ErrHashNoDisponible):
			return respuestaError(c, fiber.StatusInternalServerError, "Hash de contraseña no disponible")
		default:
			return respuestaError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(out)
}
