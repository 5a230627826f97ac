package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/application/facturacion"
	"github.com/clinicavet/veterinaria-api/internal/domain"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// FacturaHandler facturación de consultas, gestionada desde recepción.
// Incluye la descarga del recibo en PDF.
type FacturaHandler struct {
	inv store.Invocador
	pdf *facturacion.PDFUseCase
}

// NewFacturaHandler construye el handler de facturas.
func NewFacturaHandler(inv store.Invocador, pdf *facturacion.PDFUseCase) *FacturaHandler {
	return &FacturaHandler{inv: inv, pdf: pdf}
}

// Crear godoc
// @Summary      Crear factura
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FacturaCreateRequest  true  "consulta_id, total"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/facturas/crear-factura [post]
func (h *FacturaHandler) Crear(c *fiber.Ctx) error {
	var in dto.FacturaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if in.ConsultaID == 0 {
		return respuestaError(c, fiber.StatusBadRequest, "consulta_id es requerido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_crear_factura", in.ConsultaID, in.Total)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	if res.EsVacio() {
		return respuestaError(c, fiber.StatusInternalServerError, "fn_crear_factura no retornó datos")
	}
	return entregar(c, res, fiber.StatusBadRequest, fiber.StatusInternalServerError, "Error al crear factura")
}

// Obtener godoc
// @Summary      Obtener factura por ID
// @Tags         facturas
// @Produce      json
// @Param        factura_id  path  int  true  "ID de la factura"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/obtener-factura/{factura_id} [get]
func (h *FacturaHandler) Obtener(c *fiber.Ctx) error {
	facturaID, err := c.ParamsInt("factura_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "factura_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_obtener_factura", facturaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Factura no encontrada")
}

// Listar godoc
// @Summary      Listar facturas
// @Tags         facturas
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/listar-facturas [get]
func (h *FacturaHandler) Listar(c *fiber.Ctx) error {
	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_listar_facturas")
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregarLista(c, res, fiber.StatusBadRequest, fiber.StatusNotFound, "Aún no existen facturas registradas")
}

// Actualizar godoc
// @Summary      Actualizar factura
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        factura_id  path  int                       true  "ID de la factura"
// @Param        body        body  dto.FacturaUpdateRequest  true  "total"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/actualizar-factura/{factura_id} [put]
func (h *FacturaHandler) Actualizar(c *fiber.Ctx) error {
	facturaID, err := c.ParamsInt("factura_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "factura_id inválido")
	}
	var in dto.FacturaUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_actualizar_factura", facturaID, in.Total)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Factura no encontrada")
}

// Eliminar godoc
// @Summary      Eliminar factura
// @Tags         facturas
// @Produce      json
// @Param        factura_id  path  int  true  "ID de la factura"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/eliminar-factura/{factura_id} [delete]
func (h *FacturaHandler) Eliminar(c *fiber.Ctx) error {
	facturaID, err := c.ParamsInt("factura_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "factura_id inválido")
	}

	res, err := h.inv.Invoke(c.Context(), GetRol(c), "fn_eliminar_factura", facturaID)
	if err != nil {
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}
	return entregar(c, res, fiber.StatusNotFound, fiber.StatusNotFound, "Factura no encontrada")
}

// DescargarPDF godoc
// @Summary      Descargar el recibo de una factura en PDF
// @Tags         facturas
// @Produce      application/pdf
// @Param        factura_id  path  int  true  "ID de la factura"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/descargar-pdf/{factura_id} [get]
func (h *FacturaHandler) DescargarPDF(c *fiber.Ctx) error {
	facturaID, err := c.ParamsInt("factura_id")
	if err != nil {
		return respuestaError(c, fiber.StatusBadRequest, "factura_id inválido")
	}

	contenido, err := h.pdf.GenerarRecibo(c.Context(), GetRol(c), facturaID)
	if err != nil {
		if errors.Is(err, domain.ErrNoEncontrado) {
			return respuestaError(c, fiber.StatusNotFound, "Factura no encontrada")
		}
		return respuestaError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura_%d.pdf"`, facturaID))
	return c.Send(contenido)
}
