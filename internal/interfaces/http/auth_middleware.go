package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	pkgjwt "github.com/clinicavet/veterinaria-api/pkg/jwt"
)

// Locals key de la identidad autenticada en Fiber.
const LocalIdentidad = "identidad"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad (id, email,
// rol) en c.Locals. Los mensajes distinguen token inválido/expirado de un
// token bien firmado con claims incompletos.
func AuthMiddleware(jwtCfg pkgjwt.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "No autenticado"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Formato de credenciales inválido"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "No autenticado"})
		}

		identidad, err := pkgjwt.Analizar(jwtCfg, tokenString)
		if err != nil {
			if errors.Is(err, pkgjwt.ErrClaimsInvalidos) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Token inválido: faltan campos obligatorios"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "Token inválido o expirado"})
		}

		c.Locals(LocalIdentidad, identidad)
		return c.Next()
	}
}

// GetIdentidad devuelve la identidad del contexto (después del middleware de auth).
func GetIdentidad(c *fiber.Ctx) *pkgjwt.TokenData {
	v := c.Locals(LocalIdentidad)
	if v == nil {
		return nil
	}
	identidad, _ := v.(*pkgjwt.TokenData)
	return identidad
}

// GetRol devuelve el rol del usuario autenticado ("" si no hay identidad).
func GetRol(c *fiber.Ctx) string {
	identidad := GetIdentidad(c)
	if identidad == nil {
		return ""
	}
	return identidad.Rol
}

// GetUsuarioID devuelve el id del usuario autenticado (0 si no hay identidad).
func GetUsuarioID(c *fiber.Ctx) int {
	identidad := GetIdentidad(c)
	if identidad == nil {
		return 0
	}
	return identidad.ID
}
