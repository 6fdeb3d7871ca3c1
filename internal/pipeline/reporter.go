package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/voicebot/internal/domain"
)

// Reporter writes a PDF report for every stored transcription.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.Transcription
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.Transcription,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case t, ok := <-r.reports:
			if !ok {
				return nil
			}

			if t == nil {
				continue
			}

			log := r.log.With(
				slog.String("filename", t.Filename),
				slog.String("id", t.ID.String()),
			)

			log.InfoContext(ctx, "generating report")

			if err := r.reportGenerator.GenerateReport(r.ReportPath(t), t); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ReportPath is <reports dir>/<audio name>-<first id block>.pdf.
func (r *Reporter) ReportPath(t *domain.Transcription) string {
	base := strings.TrimSuffix(filepath.Base(t.Filename), filepath.Ext(t.Filename))
	id, _, _ := strings.Cut(t.ID.String(), "-")

	return filepath.Join(r.outputDir, fmt.Sprintf("%s-%s.pdf", base, id))
}
