package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/agenda"
	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain"
	"github.com/clinicavet/veterinaria-api/internal/domain/entity"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// CitaHandler agenda de la clínica. Crear y actualizar pasan por el guardián
// de conflictos; el veterinario solo ve y gestiona sus propias citas.
type CitaHandler struct {
	inv     store.Invocador
	guardia *agenda.Guardia
}

// NewCitaHandler construye el handler de citas.
func NewCitaHandler(inv store.Invocador, guardia *agenda.Guardia) *CitaHandler {
	return &CitaHandler{inv: inv, guardia: guardia}
}

// Crear godoc
// @Summary      Agendar cita
// @Tags         citas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CitaCreateRequest  true  "fecha, hora, veterinario_id"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/citas/crear-cita [post]
func (h *CitaHandler) Crear(c *fiber.Ctx) error {
	var in dto.CitaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	horario, err := normalizarHorario(in.Fecha, in.Hora)
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.VeterinarioID == 0 {
		return respuestaError(c, fiber.StatusBadRequest, "veterinario_id es requerido")
	}

	rol := GetRol(c)
	if err := h.guardia.VerificarDisponibilidad(c.Context(), rol, horario, in.VeterinarioID, nil); err != nil {
		if errors.Is(err, domain.ErrConflictoAgenda) {
			return respuestaError(c, fiber.StatusBadRequest,
				"El veterinario ya tiene una cita programada en esa fecha y hora.")
		}
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}

	res, err := h.inv.Invoke(c.Context(), rol, "fn_crear_cita", horario.Fecha, horario.Hora, in.VeterinarioID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError, "fn_crear_cita no retornó datos")
}

// Obtener godoc
// @Summary      Obtener cita por ID
// @Tags         citas
// @Produce      json
// @Param        cita_id  path  int  true  "ID de la cita"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/obtener-cita/{cita_id} [get]
func (h *CitaHandler) Obtener(c *fiber.Ctx) error {
	citaID, err := c.ParamsInt("cita_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cita_id inválido")
	}

	identidad := GetIdentidad(c)
	res, err := h.inv.Invoke(c.Context(), identidad.Rol, "fn_obtener_cita", citaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if res.EsError() || res.EsVacio() {
		return respuestaError(c, fiber.StatusNotFound, fmt.Sprintf("La cita con ID %d no existe.", citaID))
	}

	// Refinamiento por fila: el veterinario solo puede ver sus propias citas.
	cita, ok := res.Objeto()
	if !ok {
		return respuestaError(c, fiber.StatusInternalServerError, "fn_obtener_cita devolvió un payload inesperado")
	}
	veterinarioID := campoEntero(cita, "veterinario_id")
	if !rbac.EsPropietarioCita(identidad.Rol, identidad.ID, veterinarioID) {
		return respuestaError(c, fiber.StatusForbidden, "No autorizado a ver esta cita.")
	}
	return c.JSON(cita)
}

// Listar godoc
// @Summary      Listar citas (el veterinario solo ve las suyas)
// @Tags         citas
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/citas/listar-citas [get]
func (h *CitaHandler) Listar(c *fiber.Ctx) error {
	identidad := GetIdentidad(c)

	if identidad.Rol == rbac.RolVeterinario {
		res, err := h.inv.Invoke(c.Context(), identidad.Rol, "fn_listar_citas_por_veterinario", identidad.ID)
		if err != nil {
			return respuestaError(c, fiber.StatusInternalServerError, err.Error())
		}
		return entregarListaOMensaje(c, res, "Aún no hay citas registradas para este veterinario")
	}

	res, err := h.inv.Invoke(c.Context(), identidad.Rol, "fn_listar_citas")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarListaOMensaje(c, res, "Aún no hay citas registradas")
}

// ListarPropias godoc
// @Summary      Agenda del veterinario autenticado
// @Tags         citas
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/citas/listar-citas-veterinario [get]
func (h *CitaHandler) ListarPropias(c *fiber.Ctx) error {
	identidad := GetIdentidad(c)
	res, err := h.inv.Invoke(c.Context(), identidad.Rol, "fn_listar_citas_por_veterinario", identidad.ID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if res.EsError() || res.ListaVacia() {
		return c.JSON([]any{})
	}
	return c.JSON(res.Valor())
}

// Actualizar godoc
// @Summary      Reprogramar cita
// @Tags         citas
// @Accept       json
// @Produce      json
// @Param        cita_id  path  int                    true  "ID de la cita"
// @Param        body     body  dto.CitaUpdateRequest  true  "fecha, hora, veterinario_id, estado"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/actualizar-cita/{cita_id} [put]
func (h *CitaHandler) Actualizar(c *fiber.Ctx) error {
	citaID, err := c.ParamsInt("cita_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cita_id inválido")
	}
	var in dto.CitaUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	horario, err := normalizarHorario(in.Fecha, in.Hora)
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, err.Error())
	}
	if in.VeterinarioID == 0 {
		return respuestaError(c, fiber.StatusBadRequest, "veterinario_id es requerido")
	}

	// Reprogramar también pasa por el guardián, excluyendo la propia cita para
	// que conservar fecha y hora no cuente como choque.
	rol := GetRol(c)
	if err := h.guardia.VerificarDisponibilidad(c.Context(), rol, horario, in.VeterinarioID, &citaID); err != nil {
		if errors.Is(err, domain.ErrConflictoAgenda) {
			return respuestaError(c, fiber.StatusBadRequest,
				"El veterinario ya tiene una cita programada en esa fecha y hora.")
		}
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}

	res, err := h.inv.Invoke(c.Context(), rol, "fn_actualizar_cita",
		citaID, horario.Fecha, horario.Hora, in.VeterinarioID, in.Estado)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("La cita con ID %d no existe o no pudo ser actualizada.", citaID))
}

// ActualizarEstado godoc
// @Summary      Cambiar el estado de una cita (pendiente, atendida, cancelada)
// @Tags         citas
// @Accept       json
// @Produce      json
// @Param        cita_id  path  int                    true  "ID de la cita"
// @Param        body     body  dto.CitaEstadoRequest  true  "estado"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/actualizar-estado/{cita_id} [put]
func (h *CitaHandler) ActualizarEstado(c *fiber.Ctx) error {
	citaID, err := c.ParamsInt("cita_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cita_id inválido")
	}
	var in dto.CitaEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Estado == "" {
		return respuestaError(c, fiber.StatusBadRequest, "El estado es requerido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_estado_cita", citaID, in.Estado)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("No se pudo actualizar el estado de la cita %d.", citaID))
}

// Eliminar godoc
// @Summary      Eliminar cita
// @Tags         citas
// @Produce      json
// @Param        cita_id  path  int  true  "ID de la cita"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/eliminar-cita/{cita_id} [delete]
func (h *CitaHandler) Eliminar(c *fiber.Ctx) error {
	citaID, err := c.ParamsInt("cita_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cita_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_cita", citaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("La cita con ID %d no existe o ya fue eliminada.", citaID))
}

// normalizarHorario valida fecha y hora al formato canónico de la agenda.
func normalizarHorario(fecha, hora string) (entity.Horario, error) {
	f, err := agenda.NormalizarFecha(fecha)
	if err != nil {
		return entity.Horario{}, err
	}
	h, err := agenda.NormalizarHora(hora)
	if err != nil {
		return entity.Horario{}, err
	}
	return entity.Horario{Fecha: f, Hora: h}, nil
}

// campoEntero los números del payload JSON decodificado llegan como float64.
func campoEntero(obj map[string]any, clave string) int {
	switch n := obj[clave].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
