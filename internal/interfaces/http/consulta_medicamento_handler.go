package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// ConsultaMedicamentoHandler medicamentos recetados dentro de una consulta.
// El listado nunca responde error por ausencia de filas: sin receta es una
// lista vacía.
type ConsultaMedicamentoHandler struct {
	inv store.Invocador
}

// NewConsultaMedicamentoHandler construye el handler de consulta-medicamentos.
func NewConsultaMedicamentoHandler(inv store.Invocador) *ConsultaMedicamentoHandler {
	return &ConsultaMedicamentoHandler{inv: inv}
}

// Agregar godoc
// @Summary      Recetar medicamento en una consulta
// @Tags         consulta-medicamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsultaMedicamentoRequest  true  "consulta_id, medicamento_id, cantidad"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consulta-medicamentos/agregar [post]
func (h *ConsultaMedicamentoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.ConsultaMedicamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.ConsultaID == 0 || in.MedicamentoID == 0 || in.Cantidad <= 0 {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id, medicamento_id y cantidad son requeridos")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_agregar_medicamento_consulta",
		in.ConsultaID, in.MedicamentoID, in.Cantidad)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError,
		"Error al agregar medicamento")
}

// Listar godoc
// @Summary      Medicamentos recetados en una consulta
// @Tags         consulta-medicamentos
// @Produce      json
// @Param        consulta_id  path  int  true  "ID de la consulta"
// @Success      200  {array}  map[string]interface{}
// @Router       /api/consulta-medicamentos/listar/{consulta_id} [get]
func (h *ConsultaMedicamentoHandler) Listar(c *fiber.Ctx) error {
	consultaID, err := c.ParamsInt("consulta_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_medicamentos_consulta", consultaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	// Sin medicamentos no es un error: lista vacía.
	if res.EsError() || res.ListaVacia() {
		return c.JSON([]any{})
	}
	return c.JSON(res.Valor())
}

// Actualizar godoc
// @Summary      Corregir cantidad de un medicamento recetado
// @Tags         consulta-medicamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConsultaMedicamentoRequest  true  "consulta_id, medicamento_id, cantidad"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consulta-medicamentos/actualizar [put]
func (h *ConsultaMedicamentoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ConsultaMedicamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.ConsultaID == 0 || in.MedicamentoID == 0 {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id y medicamento_id son requeridos")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_medicamento_consulta",
		in.ConsultaID, in.MedicamentoID, in.Cantidad)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError,
		"No se pudo actualizar el medicamento")
}

// Eliminar godoc
// @Summary      Quitar un medicamento de una consulta
// @Tags         consulta-medicamentos
// @Produce      json
// @Param        consulta_id     path  int  true  "ID de la consulta"
// @Param        medicamento_id  path  int  true  "ID del medicamento"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/consulta-medicamentos/eliminar/{consulta_id}/{medicamento_id} [delete]
func (h *ConsultaMedicamentoHandler) Eliminar(c *fiber.Ctx) error {
	consultaID, err := c.ParamsInt("consulta_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id inválido")
	}
	medicamentoID, err := c.ParamsInt("medicamento_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "medicamento_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_medicamento_consulta",
		consultaID, medicamentoID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusNotFound,
		"No se pudo eliminar, no existe registro")
}
