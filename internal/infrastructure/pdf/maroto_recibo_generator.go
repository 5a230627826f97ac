// Package pdf implementa el recibo imprimible de facturas de la clínica con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Clínica Veterinaria  │  N° Factura + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre   |   MASCOTA: nombre                      │
//	│  DIAGNÓSTICO de la consulta                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Medicamento | Precio Unit. | Subtotal         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/clinicavet/veterinaria-api/internal/application/facturacion"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 110, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReciboGenerator implementa facturacion.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct {
	NombreClinica string
}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator(nombreClinica string) *MarotoReciboGenerator {
	if nombreClinica == "" {
		nombreClinica = "Clínica Veterinaria"
	}
	return &MarotoReciboGenerator{NombreClinica: nombreClinica}
}

// GenerarReciboPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarReciboPDF(_ context.Context, datos *facturacion.DatosRecibo) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Recibo Factura %d", datos.FacturaID), true).
		WithAuthor(g.NombreClinica, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(datos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(datos))
	m.AddRows(diagnosticoRow(datos))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableMedicamentoRows(datos.Medicamentos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(datos.Total))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Gracias por confiar en nosotros el cuidado de su mascota.", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la clínica (izq) y número de factura + fecha (der).
func (g *MarotoReciboGenerator) headerRow(datos *facturacion.DatosRecibo) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.NombreClinica, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de consulta veterinaria", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", datos.FacturaID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: cliente y mascota de la consulta facturada.
func clienteRow(datos *facturacion.DatosRecibo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE Y PACIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Cliente: %s   |   Mascota: %s   |   Consulta N° %d",
				nonEmpty(datos.Cliente, "—"),
				nonEmpty(datos.Mascota, "—"),
				datos.ConsultaID,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// diagnosticoRow: diagnóstico registrado en la consulta.
func diagnosticoRow(datos *facturacion.DatosRecibo) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DIAGNÓSTICO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(datos.Diagnostico, "—"), props.Text{
				Size: 9, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de medicamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Medicamento", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableMedicamentoRows: una fila por medicamento recetado.
func tableMedicamentoRows(lineas []facturacion.LineaMedicamento) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		subtotal := l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.Precio.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la factura alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL A PAGAR:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
