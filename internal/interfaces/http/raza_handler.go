package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// RazaHandler catálogo de razas: mutación solo admin, lectura para todos.
type RazaHandler struct {
	inv store.Invocador
}

// NewRazaHandler construye el handler de razas.
func NewRazaHandler(inv store.Invocador) *RazaHandler {
	return &RazaHandler{inv: inv}
}

// Crear godoc
// @Summary      Crear raza
// @Tags         razas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RazaCreateRequest  true  "nombre, descripcion"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/razas/crear-raza [post]
func (h *RazaHandler) Crear(c *fiber.Ctx) error {
	var in dto.RazaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Nombre == "" {
		return respuestaError(c, fiber.StatusBadRequest, "nombre es requerido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_crear_raza", in.Nombre, in.Descripcion)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError, "Error al crear la raza")
}

// Obtener godoc
// @Summary      Obtener raza por ID
// @Tags         razas
// @Produce      json
// @Param        raza_id  path  int  true  "ID de la raza"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/razas/obtener-raza/{raza_id} [get]
func (h *RazaHandler) Obtener(c *fiber.Ctx) error {
	razaID, err := c.ParamsInt("raza_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "raza_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_raza", razaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Raza no encontrada")
}

// Listar godoc
// @Summary      Listar razas
// @Tags         razas
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/razas/listar-razas [get]
func (h *RazaHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_razas")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarLista(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "No hay razas registradas aún")
}

// Actualizar godoc
// @Summary      Actualizar raza
// @Tags         razas
// @Accept       json
// @Produce      json
// @Param        raza_id  path  int                    true  "ID de la raza"
// @Param        body     body  dto.RazaUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/razas/actualizar-raza/{raza_id} [put]
func (h *RazaHandler) Actualizar(c *fiber.Ctx) error {
	razaID, err := c.ParamsInt("raza_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "raza_id inválido")
	}
	var in dto.RazaUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_raza", razaID, in.Nombre, in.Descripcion)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Raza no encontrada")
}

// Eliminar godoc
// @Summary      Eliminar raza
// @Tags         razas
// @Produce      json
// @Param        raza_id  path  int  true  "ID de la raza"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/razas/eliminar-raza/{raza_id} [delete]
func (h *RazaHandler) Eliminar(c *fiber.Ctx) error {
	razaID, err := c.ParamsInt("raza_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "raza_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_raza", razaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Raza no encontrada")
}
