package report_generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/voicebot/internal/domain"
)

const (
	titleHeight = 14
	fieldHeight = 7
	labelSize   = 4
	valueSize   = 8
)

var (
	titleProps = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	labelProps = props.Text{Size: 10, Style: fontstyle.Bold}
	valueProps = props.Text{Size: 10}
	bodyProps  = props.Text{Size: 11, Top: 2}
)

// ReportGenerator renders a transcription as a one-document PDF.
type ReportGenerator struct{}

func New() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) Render(t *domain.Transcription) ([]byte, error) {
	doc, err := g.build(t).Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func (g *ReportGenerator) GenerateReport(outputPath string, t *domain.Transcription) error {
	data, err := g.Render(t)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report %q: %w", outputPath, err)
	}

	return nil
}

func (g *ReportGenerator) build(t *domain.Transcription) core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRows(text.NewRow(titleHeight, "Voicebot Transkription", titleProps))

	keywords := strings.Join(t.Keywords, ", ")
	if keywords == "" {
		keywords = "-"
	}

	for _, f := range []struct{ label, value string }{
		{"ID", t.ID.String()},
		{"Datei", t.Filename},
		{"Quelle", string(t.Source)},
		{"Größe", humanize.IBytes(uint64(t.SizeBytes))},
		{"Erstellt", t.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{"Schlüsselwörter", keywords},
		{"Konvertierung", seconds(t.Timings.ConversionSec)},
		{"Erkennung", seconds(t.Timings.ASRSec)},
		{"Schlüsselwortsuche", seconds(t.Timings.KeywordSec)},
		{"Gesamt", seconds(t.Timings.TotalSec)},
	} {
		m.AddRow(fieldHeight,
			text.NewCol(labelSize, f.label+":", labelProps),
			text.NewCol(valueSize, f.value, valueProps),
		)
	}

	m.AddRows(text.NewRow(fieldHeight*2, "Text", props.Text{Size: 12, Style: fontstyle.Bold, Top: 6}))
	m.AddRows(row.New().Add(text.NewCol(12, t.Text, bodyProps)))

	return m
}

func seconds(v float64) string {
	return fmt.Sprintf("%.3f s", v)
}
