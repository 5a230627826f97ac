package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// Normalización de los resultados del almacén a HTTP. Cada recurso original
// trataba distinto la ausencia de datos (404, 500 o fila de cortesía); estos
// helpers concentran los tres patrones para que los handlers no repitan la
// inspección del resultado.

func respuestaError(c *fiber.Ctx, status int, detalle string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Detail: detalle})
}

// entregar responde el payload tal cual. Si la función señaló un error de
// dominio responde statusErr con su mensaje (o detalleVacio si no trae);
// si no devolvió datos responde statusVacio con detalleVacio.
func entregar(c *fiber.Ctx, res store.Resultado, statusErr int, statusVacio int, detalleVacio string) error {
	if res.EsError() {
		msg := res.Mensaje()
		if msg == "" {
			msg = detalleVacio
		}
		return respuestaError(c, statusErr, msg)
	}
	if res.EsVacio() {
		return respuestaError(c, statusVacio, detalleVacio)
	}
	return c.JSON(res.Valor())
}

// entregarLista responde el listado, o statusVacio con detalleVacio cuando la
// función no devolvió filas (los listados que responden 404 al estar vacíos).
func entregarLista(c *fiber.Ctx, res store.Resultado, statusErr int, statusVacio int, detalleVacio string) error {
	if res.EsError() {
		msg := res.Mensaje()
		if msg == "" {
			msg = detalleVacio
		}
		return respuestaError(c, statusErr, msg)
	}
	if res.ListaVacia() {
		return respuestaError(c, statusVacio, detalleVacio)
	}
	return c.JSON(res.Valor())
}

// entregarListaOMensaje responde el listado, o una lista con una única fila
// de cortesía {"message": ...} cuando no hay registros (comportamiento que el
// frontend original espera en estos listados).
func entregarListaOMensaje(c *fiber.Ctx, res store.Resultado, mensaje string) error {
	if res.EsError() || res.ListaVacia() {
		return c.JSON([]dto.MensajeFila{{Message: mensaje}})
	}
	return c.JSON(res.Valor())
}
