package http_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicavet/veterinaria-api/internal/application/dto"
	"github.com/clinicavet/veterinaria-api/internal/application/facturacion"
	"github.com/clinicavet/veterinaria-api/internal/domain/rbac"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
	apphttp "github.com/clinicavet/veterinaria-api/internal/interfaces/http"
)

// generadorFijo fake del generador de recibos: devuelve bytes fijos y guarda
// los datos recibidos para inspección.
type generadorFijo struct {
	datos *facturacion.DatosRecibo
}

func (g *generadorFijo) GenerarReciboPDF(_ context.Context, datos *facturacion.DatosRecibo) ([]byte, error) {
	g.datos = datos
	return []byte("%PDF-falso"), nil
}

func appFacturas(inv *invocadorFalso, gen *generadorFijo) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Invocador: inv,
		PDF:       facturacion.NewPDFUseCase(inv, gen),
		JWT:       cfgJWTTest,
	})
	return app
}

func TestCrearFactura_SinConsulta_Retorna400(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appFacturas(inv, &generadorFijo{})

	resp := hacerPeticion(t, app, http.MethodPost, "/api/facturas/crear-factura",
		tokenPara(t, 2, rbac.RolSecretaria),
		dto.FacturaCreateRequest{Total: decimal.NewFromInt(120)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "consulta_id es requerido", body.Detail)
}

func TestListarFacturas_Vacio_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_listar_facturas", store.Exito(nil))
	app := appFacturas(inv, &generadorFijo{})

	resp := hacerPeticion(t, app, http.MethodGet, "/api/facturas/listar-facturas",
		tokenPara(t, 1, rbac.RolAdministrador), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Aún no existen facturas registradas", body.Detail)
}

func TestListarFacturas_VeterinarioNoPuede(t *testing.T) {
	inv := nuevoInvocadorFalso()
	app := appFacturas(inv, &generadorFijo{})

	resp := hacerPeticion(t, app, http.MethodGet, "/api/facturas/listar-facturas",
		tokenPara(t, 7, rbac.RolVeterinario), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDescargarPDF_FacturaInexistente_Retorna404(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_obtener_factura", store.Exito(nil))
	app := appFacturas(inv, &generadorFijo{})

	resp := hacerPeticion(t, app, http.MethodGet, "/api/facturas/descargar-pdf/3",
		tokenPara(t, 2, rbac.RolSecretaria), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodificar[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Factura no encontrada", body.Detail)
}

func TestDescargarPDF_EntregaAdjunto(t *testing.T) {
	inv := nuevoInvocadorFalso()
	inv.responder("fn_obtener_factura", store.Exito(map[string]any{
		"id": float64(3), "consulta_id": float64(11), "total": 150.50,
	}))
	inv.responder("fn_obtener_consulta", store.Exito(map[string]any{
		"id": float64(11), "cliente_id": float64(4), "mascota_id": float64(9),
		"diagnostico": "otitis externa",
	}))
	inv.responder("fn_obtener_cliente", store.Exito(map[string]any{"id": float64(4), "nombre": "Juan Pérez"}))
	inv.responder("fn_obtener_mascota", store.Exito(map[string]any{"id": float64(9), "nombre": "Firulais"}))
	inv.responder("fn_listar_medicamentos_consulta", store.Exito([]any{
		map[string]any{"nombre": "Amoxicilina", "cantidad": float64(2), "precio": 25.25},
	}))
	gen := &generadorFijo{}
	app := appFacturas(inv, gen)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/facturas/descargar-pdf/3",
		tokenPara(t, 1, rbac.RolAdministrador), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="factura_3.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))

	cuerpo, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-falso"), cuerpo)

	require.NotNil(t, gen.datos)
	assert.Equal(t, 3, gen.datos.FacturaID)
	assert.Equal(t, 11, gen.datos.ConsultaID)
	assert.Equal(t, "Juan Pérez", gen.datos.Cliente)
	assert.Equal(t, "Firulais", gen.datos.Mascota)
	assert.Equal(t, "otitis externa", gen.datos.Diagnostico)
	require.Len(t, gen.datos.Medicamentos, 1)
	assert.Equal(t, "Amoxicilina", gen.datos.Medicamentos[0].Nombre)
	assert.Equal(t, 2, gen.datos.Medicamentos[0].Cantidad)
	assert.True(t, gen.datos.Medicamentos[0].Precio.Equal(decimal.NewFromFloat(25.25)))
}
