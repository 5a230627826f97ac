package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/repository"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// ClienteHandler dueños de las mascotas. El alta verifica duplicados por
// nombre + teléfono antes de despachar.
type ClienteHandler struct {
	inv      store.Invocador
	clientes repository.ClienteRepository
}

// NewClienteHandler construye el handler de clientes.
func NewClienteHandler(inv store.Invocador, clientes repository.ClienteRepository) *ClienteHandler {
	return &ClienteHandler{inv: inv, clientes: clientes}
}

// Crear godoc
// @Summary      Registrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClienteCreateRequest  true  "nombre, telefono, direccion"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clientes/crear-cliente [post]
func (h *ClienteHandler) Crear(c *fiber.Ctx) error {
	var in dto.ClienteCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Nombre == "" || in.Telefono == "" {
		return respuestaError(c, fiber.StatusBadRequest, "nombre y telefono son requeridos")
	}

	rol := GetRol(c)
	existe, err := h.clientes.ExistePorNombreTelefono(c.Context(), rol, in.Nombre, in.Telefono)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if existe {
		return respuestaError(c, fiber.StatusBadRequest, "El cliente ya existe.")
	}

	res, err := h.inv.Invoke(c.Context(), rol, "fn_crear_cliente", in.Nombre, in.Telefono, in.Direccion)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError,
		"No se pudo crear el cliente. Intenta nuevamente.")
}

// Obtener godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Produce      json
// @Param        cliente_id  path  int  true  "ID del cliente"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/obtener-cliente/{cliente_id} [get]
func (h *ClienteHandler) Obtener(c *fiber.Ctx) error {
	clienteID, err := c.ParamsInt("cliente_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cliente_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_cliente", clienteID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("El cliente con ID %d no existe.", clienteID))
}

// Listar godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  map[string]interface{}
// @Router       /api/clientes/listar-clientes [get]
func (h *ClienteHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_clientes")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarListaOMensaje(c, res, "Aún no hay clientes registrados")
}

// Actualizar godoc
// @Summary      Actualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        cliente_id  path  int                       true  "ID del cliente"
// @Param        body        body  dto.ClienteUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/actualizar-cliente/{cliente_id} [put]
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	clienteID, err := c.ParamsInt("cliente_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cliente_id inválido")
	}
	var in dto.ClienteUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_cliente", clienteID, in.Nombre, in.Telefono, in.Direccion)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("El cliente con ID %d no existe o no pudo actualizarse.", clienteID))
}

// Eliminar godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Produce      json
// @Param        cliente_id  path  int  true  "ID del cliente"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/eliminar-cliente/{cliente_id} [delete]
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	clienteID, err := c.ParamsInt("cliente_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "cliente_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_cliente", clienteID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound,
		fmt.Sprintf("El cliente con ID %d no existe o ya fue eliminado.", clienteID))
}
