package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
)

// RequirePermiso autoriza la petición consultando la tabla de política.
// Corre después de AuthMiddleware: sin identidad responde 401, rol sin
// permiso responde 403 con el mismo detalle que exponía la API original.
func RequirePermiso(recurso, accion string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identidad := GetIdentidad(c)
		if identidad == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Detail: "No autenticado"})
		}
		if !rbac.Permite(identidad.Rol, recurso, accion) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Detail: "No autorizado"})
		}
		return c.Next()
	}
}
