// Package pdf implementa el render del reporte de productos registrados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + subtítulo con la ventana       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cadastrado Por | Data Cadastro | Nome | Validade |   │
//	│         Status                                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
// Las filas llegan ya formateadas y ordenadas; el render no reordena.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, report *dto.ReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(report.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum produto encontrado para os filtros selecionados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableRows(report.Rows) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte + subtítulo con la ventana de fechas.
func headerRow(report *dto.ReportResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Subtitle, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de registros.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cadastrado Por", 2, align.Left),
		h("Data Cadastro", 2, align.Center),
		h("Nome do Produto", 4, align.Left),
		h("Validade", 2, align.Center),
		h("Status", 2, align.Center),
	)
}

// tableRows: una fila por producto registrado.
func tableRows(items []dto.ReportRowResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.CreatorDisplay,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.RegistrationDate,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.ExpiryDate,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				it.StatusLabel,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}
