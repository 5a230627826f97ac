package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
	"github.com/clinicavet/veterinaria-api/pkg/password"
)

// UsuarioHandler CRUD de usuarios del sistema (exclusivo del administrador).
// La contraseña se hashea aquí, antes de despachar al almacén: las funciones
// almacenadas nunca ven texto plano.
type UsuarioHandler struct {
	inv    store.Invocador
	hasher password.Hasher
}

// NewUsuarioHandler construye el handler de usuarios.
func NewUsuarioHandler(inv store.Invocador, hasher password.Hasher) *UsuarioHandler {
	return &UsuarioHandler{inv: inv, hasher: hasher}
}

// Crear godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioCreateRequest  true  "nombre, email, password, rol"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crear-usuario [post]
func (h *UsuarioHandler) Crear(c *fiber.Ctx) error {
	var in dto.UsuarioCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" || in.Rol == "" {
		return respuestaError(c, fiber.StatusBadRequest, "nombre, email, password y rol son requeridos")
	}

	hash, err := h.hasher.Hash(in.Password)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, "Error creando el usuario")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_crear_usuario", in.Nombre, in.Email, hash, in.Rol)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if res.EsVacio() {
		return respuestaError(c, fiber.StatusInternalServerError, "Error creando el usuario")
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError, "Error creando usuario")
}

// Obtener godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        usuario_id  path  int  true  "ID del usuario"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obtener-usuario/{usuario_id} [get]
func (h *UsuarioHandler) Obtener(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuario_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "usuario_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_usuario", usuarioID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Usuario no encontrado")
}

// Listar godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listar-usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_usuarios")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarLista(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "No hay usuarios registrados")
}

// Actualizar godoc
// @Summary      Actualizar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        usuario_id  path  int                       true  "ID del usuario"
// @Param        body        body  dto.UsuarioUpdateRequest  true  "campos a actualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actualizar-usuario/{usuario_id} [put]
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuario_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "usuario_id inválido")
	}
	var in dto.UsuarioUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	// Contraseña nueva opcional: nil viaja como NULL y la función conserva la actual.
	var hash *string
	if in.Password != nil && *in.Password != "" {
		hashed, err := h.hasher.Hash(*in.Password)
		if err != nil {
			return respuestaError(c, fiber.StatusInternalServerError, "Error actualizando el usuario")
		}
		hash = &hashed
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_usuario", usuarioID, in.Nombre, in.Email, hash, in.Rol)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Usuario no encontrado")
}

// Eliminar godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Produce      json
// @Param        usuario_id  path  int  true  "ID del usuario"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eliminar-usuario/{usuario_id} [delete]
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
	usuarioID, err := c.ParamsInt("usuario_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "usuario_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_usuario", usuarioID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Usuario no encontrado")
}
