package cli

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/copiousfreetime/nickel/internal/calendar"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// buildAgendaPDF lays out one section per day with a line per slot.
func buildAgendaPDF(a agenda) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	title := a.message
	if title == "" {
		title = "Agenda"
	}
	m.AddRow(14,
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%s to %s", pdfDate(a.from), pdfDate(a.to)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	for _, desc := range occurrenceList(a.occs) {
		m.AddRow(6, text.NewCol(12, desc, props.Text{Size: 9, Color: &pdfMutedColor}))
	}
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	if len(a.days) == 0 {
		m.AddRow(8, text.NewCol(12, "Nothing scheduled in this window.", props.Text{Size: 10}))
	}

	for _, day := range a.days {
		m.AddRow(8,
			text.NewCol(9, pdfDate(day.Date), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, fmt.Sprintf("%d", len(day.Slots)), props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: &pdfHeaderColor,
			}),
		)
		for _, s := range day.Slots {
			m.AddRow(5,
				text.NewCol(3, "  "+slotLabel(s), props.Text{Size: 9}),
				text.NewCol(9, a.describeSlot(s), props.Text{
					Size:  8,
					Color: &pdfMutedColor,
				}),
			)
		}
		m.AddRow(3)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Days", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d", len(a.days)), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)
	return m
}

// renderAgendaPDF generates the agenda PDF and saves it to outputPath.
func renderAgendaPDF(a agenda, outputPath string) error {
	doc, err := buildAgendaPDF(a).Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("saving PDF: %w", err)
	}
	return nil
}

func pdfDate(d calendar.Date) string {
	return d.Time(time.UTC).Format("Monday, January 2 2006")
}
