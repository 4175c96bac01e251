// Package pdf genera el reporte imprimible del balance de activos por base.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Base + período      │  Generado por + fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Apertura | Neto | Cierre                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Movimiento | Cantidad | % del total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fórmula de cierre                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
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
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbalance "github.com/jhoicas/asset-balance-api/internal/application/balance"
	"github.com/jhoicas/asset-balance-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 68, Blue: 34}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBalanceReport implementa balance.ReportGenerator usando Maroto v2.
type MarotoBalanceReport struct {
	printer *message.Printer
}

var _ appbalance.ReportGenerator = (*MarotoBalanceReport)(nil)

// NewMarotoBalanceReport construye el generador. Las cantidades se imprimen
// con separador de miles del idioma indicado (inglés si tag es vacío).
func NewMarotoBalanceReport(tag language.Tag) *MarotoBalanceReport {
	if tag == language.Und {
		tag = language.English
	}
	return &MarotoBalanceReport{printer: message.NewPrinter(tag)}
}

// GenerateBalanceReport genera el PDF y devuelve sus bytes.
func (g *MarotoBalanceReport) GenerateBalanceReport(_ context.Context, in appbalance.ReportInput) ([]byte, error) {
	if in.Summary == nil {
		return nil, errors.New("pdf: resumen de balance requerido")
	}
	s := in.Summary

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Asset Balance Report", true).
		WithAuthor(in.GeneratedBy, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(in))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRow(s.Balance))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, item := range s.Chart {
		m.AddRows(g.tableRow(item))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(s))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoBalanceReport) headerRow(in appbalance.ReportInput) core.Row {
	s := in.Summary
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(s.BaseName, s.BaseID), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Período: %s a %s   |   Categoría: %s",
				s.StartDate, s.EndDate, nonEmpty(s.Category, "all")),
				props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("BALANCE DE ACTIVOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado por: "+nonEmpty(in.GeneratedBy, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New(in.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoBalanceReport) summaryRow(b dto.BalanceResponse) core.Row {
	cell := func(label string, v int64) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Align: align.Center, Top: 1}),
			text.New(g.qty(v), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		cell("Apertura", b.Opening),
		cell("Movimiento neto", b.NetMovement),
		cell("Cierre", b.Closing),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1.5}
	right := style
	right.Align = align.Right
	return row.New(7).
		WithStyle(&props.Cell{BackgroundColor: colorPrimary}).
		Add(
			col.New(6).Add(text.New("Movimiento", style)),
			col.New(3).Add(text.New("Cantidad", right)),
			col.New(3).Add(text.New("% del total", right)),
		)
}

func (g *MarotoBalanceReport) tableRow(item dto.MovementChartItem) core.Row {
	right := props.Text{Size: 8, Align: align.Right, Top: 1}
	return row.New(6).Add(
		col.New(6).Add(text.New(item.Name, props.Text{Size: 8, Top: 1})),
		col.New(3).Add(text.New(g.qty(item.Value), right)),
		col.New(3).Add(text.New(item.Share.StringFixed(2)+" %", right)),
	)
}

func footerRow(s *dto.BalanceSummaryResponse) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cierre = Apertura + (Compras + Transferencias entrantes - Transferencias salientes) - Gastos",
				props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("Las asignaciones se informan pero no afectan el cierre. Movimientos considerados: %d", s.Movements),
				props.Text{Size: 7, Color: colorGray, Top: 5}),
		),
	)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (g *MarotoBalanceReport) qty(v int64) string {
	return g.printer.Sprintf("%d", v)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
