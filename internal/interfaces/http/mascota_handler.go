package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// MascotaHandler pacientes de la clínica. El listado general envuelve el
// resultado en {"data": ...} y responde 404 si está vacío; el listado por
// cliente devuelve una fila de cortesía. Ambos comportamientos los espera el
// frontend tal cual.
type MascotaHandler struct {
	inv store.Invocador
}

// NewMascotaHandler construye el handler de mascotas.
func NewMascotaHandler(inv store.Invocador) *MascotaHandler {
	return &MascotaHandler{inv: inv}
}

// Crear godoc
// @Summary      Registrar mascota
// @Tags         mascotas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MascotaCreateRequest  true  "cliente_id, raza_id, nombre, edad, peso"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/mascotas/crear-mascota [post]
func (h *MascotaHandler) Crear(c *fiber.Ctx) error {
	var in dto.MascotaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Nombre == "" || in.ClienteID == 0 || in.RazaID == 0 {
		return respuestaError(c, fiber.StatusBadRequest, "cliente_id, raza_id y nombre son requeridos")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_crear_mascota",
		in.ClienteID, in.RazaID, in.Nombre, in.Edad, in.Peso)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError, "No se pudo crear la mascota")
}

// Obtener godoc
// @Summary      Obtener mascota por ID
// @Tags         mascotas
// @Produce      json
// @Param        mascota_id  path  int  true  "ID de la mascota"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mascotas/obtener-mascota/{mascota_id} [get]
func (h *MascotaHandler) Obtener(c *fiber.Ctx) error {
	mascotaID, err := c.ParamsInt("mascota_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "mascota_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_mascota", mascotaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Mascota no encontrada")
}

// Listar godoc
// @Summary      Listar mascotas
// @Tags         mascotas
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mascotas/listar-mascotas [get]
func (h *MascotaHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_mascotas")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if res.EsError() {
		msg := res.Mensaje()
		if msg == "" {
			msg = "No se encontraron mascotas"
		}
		return respuestaError(c, fiber.StatusNotFound, msg)
	}
	if res.ListaVacia() {
		return respuestaError(c, fiber.StatusNotFound, "No hay mascotas registradas aún")
	}
	return c.JSON(fiber.Map{"data": res.Valor()})
}

// PorCliente godoc
// @Summary      Listar mascotas de un cliente
// @Tags         mascotas
// @Produce      json
// @Param        cliente_id  path  int  true  "ID del cliente"
// @Success      200  {array}  map[string]interface{}
// @Router       /api/mascotas/por-cliente/{cliente_id} [get]
func (h *MascotaHandler) PorCliente(c *fiber.Ctx) error {
	clienteID, err := c.ParamsInt("cliente_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cliente_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_mascotas_por_cliente", clienteID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarListaOMensaje(c, res, "Este cliente no tiene mascotas registradas")
}

// Actualizar godoc
// @Summary      Actualizar mascota
// @Tags         mascotas
// @Accept       json
// @Produce      json
// @Param        mascota_id  path  int                       true  "ID de la mascota"
// @Param        body        body  dto.MascotaUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mascotas/actualizar-mascota/{mascota_id} [put]
func (h *MascotaHandler) Actualizar(c *fiber.Ctx) error {
	mascotaID, err := c.ParamsInt("mascota_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "mascota_id inválido")
	}
	var in dto.MascotaUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_mascota",
		mascotaID, in.RazaID, in.Nombre, in.Edad, in.Peso)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Mascota no encontrada")
}

// Eliminar godoc
// @Summary      Eliminar mascota
// @Tags         mascotas
// @Produce      json
// @Param        mascota_id  path  int  true  "ID de la mascota"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mascotas/eliminar-mascota/{mascota_id} [delete]
func (h *MascotaHandler) Eliminar(c *fiber.Ctx) error {
	mascotaID, err := c.ParamsInt("mascota_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "mascota_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_mascota", mascotaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Mascota no encontrada")
}
