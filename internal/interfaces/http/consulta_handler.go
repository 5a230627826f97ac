package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// ConsultaHandler consultas médicas. El alta verifica que la mascota no tenga
// ya una consulta registrada hoy.
type ConsultaHandler struct {
	inv       store.Invocador
	consultas repository.ConsultaRepository
}

// NewConsultaHandler construye el handler de consultas.
func NewConsultaHandler(inv store.Invocador, consultas repository.ConsultaRepository) *ConsultaHandler {
	return &ConsultaHandler{inv: inv, consultas: consultas}
}

// Crear godoc
// @Summary      Registrar consulta
// @Tags         consultas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsultaCreateRequest  true  "cita_id, cliente_id, mascota_id, veterinario_id, diagnostico, total"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consultas/crear-consulta [post]
func (h *ConsultaHandler) Crear(c *fiber.Ctx) error {
	var in dto.ConsultaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.MascotaID == 0 || in.ClienteID == 0 || in.VeterinarioID == 0 {
		return respuestaError(c, fiber.StatusBadRequest, "cliente_id, mascota_id y veterinario_id son requeridos")
	}

	rol := GetRol(c)
	existe, err := h.consultas.ExisteConsultaHoy(c.Context(), rol, in.MascotaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if existe {
		return respuestaError(c, fiber.StatusBadRequest, "Ya existe una consulta registrada hoy para esta mascota.")
	}

	res, err := h.inv.Invoke(c.Context(), rol, "fn_crear_consulta",
		in.CitaID, in.ClienteID, in.MascotaID, in.VeterinarioID, in.Diagnostico, in.Total)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError,
		"No se pudo crear la consulta debido a un error interno.")
}

// Obtener godoc
// @Summary      Obtener consulta por ID
// @Tags         consultas
// @Produce      json
// @Param        consulta_id  path  int  true  "ID de la consulta"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultas/obtener-consulta/{consulta_id} [get]
func (h *ConsultaHandler) Obtener(c *fiber.Ctx) error {
	consultaID, err := c.ParamsInt("consulta_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_consulta", consultaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("La consulta con ID %d no existe.", consultaID))
}

// Listar godoc
// @Summary      Listar consultas
// @Tags         consultas
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/consultas/listar-consultas [get]
func (h *ConsultaHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_consultas")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarListaOMensaje(c, res, "Aún no hay consultas registradas")
}

// Actualizar godoc
// @Summary      Actualizar consulta
// @Tags         consultas
// @Accept       json
// @Produce      json
// @Param        consulta_id  path  int                        true  "ID de la consulta"
// @Param        body         body  dto.ConsultaUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultas/actualizar-consulta/{consulta_id} [put]
func (h *ConsultaHandler) Actualizar(c *fiber.Ctx) error {
	consultaID, err := c.ParamsInt("consulta_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id inválido")
	}
	var in dto.ConsultaUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_consulta",
		consultaID, in.ClienteID, in.MascotaID, in.Diagnostico, in.Total)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusNotFound, "Consulta no encontrada")
}

// Eliminar godoc
// @Summary      Eliminar consulta
// @Tags         consultas
// @Produce      json
// @Param        consulta_id  path  int  true  "ID de la consulta"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consultas/eliminar-consulta/{consulta_id} [delete]
func (h *ConsultaHandler) Eliminar(c *fiber.Ctx) error {
	consultaID, err := c.ParamsInt("consulta_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_consulta", consultaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusNotFound, "Consulta no encontrada")
}
