package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// MedicamentoHandler catálogo de medicamentos, misma forma que las razas:
// mutación solo admin, lectura para todos.
type MedicamentoHandler struct {
	inv store.Invocador
}

// NewMedicamentoHandler construye el handler de medicamentos.
func NewMedicamentoHandler(inv store.Invocador) *MedicamentoHandler {
	return &MedicamentoHandler{inv: inv}
}

// Crear godoc
// @Summary      Crear medicamento
// @Tags         medicamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MedicamentoCreateRequest  true  "nombre, precio"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/medicamentos/crear-medicamento [post]
func (h *MedicamentoHandler) Crear(c *fiber.Ctx) error {
	var in dto.MedicamentoCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Nombre == "" {
		return respuestaError(c, fiber.StatusBadRequest, "nombre es requerido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_crear_medicamento", in.Nombre, in.Precio)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError, "Error al crear el medicamento")
}

// Obtener godoc
// @Summary      Obtener medicamento por ID
// @Tags         medicamentos
// @Produce      json
// @Param        medicamento_id  path  int  true  "ID del medicamento"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/obtener-medicamento/{medicamento_id} [get]
func (h *MedicamentoHandler) Obtener(c *fiber.Ctx) error {
	medicamentoID, err := c.ParamsInt("medicamento_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "medicamento_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_medicamento", medicamentoID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Medicamento no encontrado")
}

// Listar godoc
// @Summary      Listar medicamentos
// @Tags         medicamentos
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/listar-medicamentos [get]
func (h *MedicamentoHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_medicamentos")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarLista(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "No hay medicamentos registrados aún")
}

// Actualizar godoc
// @Summary      Actualizar medicamento
// @Tags         medicamentos
// @Accept       json
// @Produce      json
// @Param        medicamento_id  path  int                           true  "ID del medicamento"
// @Param        body            body  dto.MedicamentoUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/actualizar-medicamento/{medicamento_id} [put]
func (h *MedicamentoHandler) Actualizar(c *fiber.Ctx) error {
	medicamentoID, err := c.ParamsInt("medicamento_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "medicamento_id inválido")
	}
	var in dto.MedicamentoUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_medicamento", medicamentoID, in.Nombre, in.Precio)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Medicamento no encontrado")
}

// Eliminar godoc
// @Summary      Eliminar medicamento
// @Tags         medicamentos
// @Produce      json
// @Param        medicamento_id  path  int  true  "ID del medicamento"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medicamentos/eliminar-medicamento/{medicamento_id} [delete]
func (h *MedicamentoHandler) Eliminar(c *fiber.Ctx) error {
	medicamentoID, err := c.ParamsInt("medicamento_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "medicamento_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_medicamento", medicamentoID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Medicamento no encontrado")
}
