// Package pdf genera el ticket de pesaje en PDF con Maroto v2.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: VR46 + título   │  N° ticket + fecha │
//	│  ───────────────────────────────────────────  │
//	│  DATOS: material / vehículo / operador        │
//	│  ───────────────────────────────────────────  │
//	│  PESOS: bruto | tara | NETO                   │
//	│  ───────────────────────────────────────────  │
//	│  FOOTER: QR del ID + leyenda                  │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/ninjasaskeh/vr46/internal/application/report"
	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.TicketGenerator = (*TicketGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// TicketGenerator implementa report.TicketGenerator usando Maroto v2.
type TicketGenerator struct {
	company string
}

// NewTicketGenerator construye el generador; company aparece en la cabecera.
func NewTicketGenerator(company string) *TicketGenerator {
	return &TicketGenerator{company: nonEmpty(company, "VR46")}
}

// GenerateTicket genera el PDF y devuelve sus bytes.
func (g *TicketGenerator) GenerateTicket(_ context.Context, rec *entity.WeightRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Weighing Ticket "+rec.ID, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailRows(rec)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(weightsRow(rec))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + título (izq) y N° ticket + fecha (der).
func (g *TicketGenerator) headerRow(rec *entity.WeightRecord) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.company, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("WEIGHING TICKET", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("No. "+shortID(rec.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(rec.Timestamp().UTC().Format("02/01/2006 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// detailRows: material, vehículo y operador.
func detailRows(rec *entity.WeightRecord) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			})),
			col.New(8).Add(text.New(nonEmpty(value, "—"), props.Text{Size: 9, Top: 1})),
		)
	}
	return []core.Row{
		field("Material", rec.MaterialName),
		field("Vehicle", rec.VehicleNumber),
		field("Operator", rec.OperatorName),
		field("Status", string(rec.Status)),
	}
}

// weightsRow: bruto, tara y neto destacado.
func weightsRow(rec *entity.WeightRecord) core.Row {
	unit := nonEmpty(rec.MaterialUnit, "kg")
	cell := func(label string, v decimal.Decimal, strong bool) core.Col {
		valueProps := props.Text{Size: 11, Align: align.Center, Top: 8}
		if strong {
			valueProps.Style = fontstyle.Bold
			valueProps.Size = 13
			valueProps.Color = colorPrimary
		}
		return col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(formatWeight(v)+" "+unit, valueProps),
		)
	}
	return row.New(20).Add(
		cell("GROSS", rec.GrossWeight, false),
		cell("TARE", rec.TareWeight, false),
		cell("NET", rec.NetWeight, true),
	)
}

// footerRow: QR con el ID del registro + leyenda.
func footerRow(rec *entity.WeightRecord) core.Row {
	return row.New(35).Add(
		col.New(4).Add(code.NewQr(rec.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Scan the QR code to look up this\nrecord in the VR46 dashboard.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New(rec.ID, props.Text{
				Size: 6.5, Top: 20, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID primeros 8 caracteres en mayúscula, ej: "3F2A9C1B".
func shortID(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// formatWeight dos decimales con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatWeight(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
