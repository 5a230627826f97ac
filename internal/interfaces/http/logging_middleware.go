package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/clinicavet/veterinaria-api/pkg/logger"
)

// RequestLogger registra cada petición con un request id propio, que también
// se devuelve en el header X-Request-ID para correlación desde el frontend.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		evento := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evento = log.Error()
		}
		evento.
			Str("request_id", requestID).
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracion", time.Since(inicio)).
			Msg("peticion")

		return err
	}
}
