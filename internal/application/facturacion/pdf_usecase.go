// Package facturacion arma el recibo imprimible de una factura a partir de los
// datos que devuelven las funciones del almacén (factura, consulta, cliente,
// mascota y medicamentos recetados) y delega el render a un generador de PDF.
package facturacion

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clinicavet/veterinaria-api/internal/domain"
	"github.com/clinicavet/veterinaria-api/internal/domain/store"
)

// LineaMedicamento renglón de la tabla de medicamentos del recibo.
type LineaMedicamento struct {
	Nombre   string
	Cantidad int
	Precio   decimal.Decimal
}

// DatosRecibo todo lo necesario para renderizar el recibo de una factura.
type DatosRecibo struct {
	FacturaID    int
	ConsultaID   int
	Total        decimal.Decimal
	Cliente      string
	Mascota      string
	Diagnostico  string
	Medicamentos []LineaMedicamento
}

// ReciboPDFGenerator contrato del render (implementado con Maroto en infra).
type ReciboPDFGenerator interface {
	GenerarReciboPDF(ctx context.Context, datos *DatosRecibo) ([]byte, error)
}

// PDFUseCase reúne los datos del recibo invocando las funciones de lectura del
// almacén con el rol del solicitante y genera el PDF.
type PDFUseCase struct {
	invocador store.Invocador
	generador ReciboPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invocador store.Invocador, generador ReciboPDFGenerator) *PDFUseCase {
	return &PDFUseCase{invocador: invocador, generador: generador}
}

// GenerarRecibo devuelve los bytes del PDF del recibo de la factura.
// ErrNoEncontrado si la factura o la consulta asociada no existen.
func (uc *PDFUseCase) GenerarRecibo(ctx context.Context, rol string, facturaID int) ([]byte, error) {
	factura, err := uc.objeto(ctx, rol, "fn_obtener_factura", facturaID)
	if err != nil {
		return nil, err
	}

	consultaID := campoInt(factura, "consulta_id")
	consulta, err := uc.objeto(ctx, rol, "fn_obtener_consulta", consultaID)
	if err != nil {
		return nil, err
	}

	datos := &DatosRecibo{
		FacturaID:   facturaID,
		ConsultaID:  consultaID,
		Total:       campoDecimal(factura, "total"),
		Diagnostico: campoString(consulta, "diagnostico"),
	}

	// Cliente y mascota son informativos en el recibo: si alguno falta se deja
	// el campo vacío en lugar de fallar la descarga.
	if cliente, err := uc.objeto(ctx, rol, "fn_obtener_cliente", campoInt(consulta, "cliente_id")); err == nil {
		datos.Cliente = campoString(cliente, "nombre")
	}
	if mascota, err := uc.objeto(ctx, rol, "fn_obtener_mascota", campoInt(consulta, "mascota_id")); err == nil {
		datos.Mascota = campoString(mascota, "nombre")
	}

	res, err := uc.invocador.Invoke(ctx, rol, "fn_listar_medicamentos_consulta", consultaID)
	if err != nil {
		return nil, err
	}
	if lineas, ok := res.Lista(); ok {
		for _, l := range lineas {
			obj, ok := l.(map[string]any)
			if !ok {
				continue
			}
			datos.Medicamentos = append(datos.Medicamentos, LineaMedicamento{
				Nombre:   campoString(obj, "nombre"),
				Cantidad: campoInt(obj, "cantidad"),
				Precio:   campoDecimal(obj, "precio"),
			})
		}
	}

	return uc.generador.GenerarReciboPDF(ctx, datos)
}

// objeto invoca una función de lectura y exige un objeto no vacío.
func (uc *PDFUseCase) objeto(ctx context.Context, rol, fn string, id int) (map[string]any, error) {
	res, err := uc.invocador.Invoke(ctx, rol, fn, id)
	if err != nil {
		return nil, err
	}
	if res.EsError() || res.EsVacio() {
		return nil, domain.ErrNoEncontrado
	}
	obj, ok := res.Objeto()
	if !ok {
		return nil, fmt.Errorf("facturacion: %s devolvió un payload inesperado", fn)
	}
	return obj, nil
}

// Los payloads JSON decodificados traen números como float64 y a veces montos
// como string; estas coerciones concentran ese detalle aquí.

func campoInt(obj map[string]any, clave string) int {
	switch n := obj[clave].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func campoString(obj map[string]any, clave string) string {
	s, _ := obj[clave].(string)
	return s
}

func campoDecimal(obj map[string]any, clave string) decimal.Decimal {
	switch n := obj[clave].(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
