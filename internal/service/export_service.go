package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/alimaksum8/jadwal-darul-huda-api/internal/models"
	appErrors "github.com/alimaksum8/jadwal-darul-huda-api/pkg/errors"
	"github.com/alimaksum8/jadwal-darul-huda-api/pkg/export"
)

// ExportService renders a tier's timetable as CSV or PDF.
type ExportService struct {
	timetables timetableReader
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	logger     *zap.Logger
}

// NewExportService instantiates ExportService.
func NewExportService(timetables timetableReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		timetables: timetables,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		logger:     logger,
	}
}

// ExportResult carries rendered bytes plus response metadata.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// Timetable renders the tier's schedule in the requested format
// ("csv" or "pdf").
func (s *ExportService) Timetable(ctx context.Context, tier models.Tier, format string) (*ExportResult, error) {
	if !tier.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownTier, "")
	}

	timetable, err := s.timetables.Get(ctx, tier)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	data := buildDataset(tier, timetable)
	title := fmt.Sprintf("Jadwal Pelajaran %s", tier)

	switch strings.ToLower(format) {
	case "csv", "":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv",
			Filename:    fmt.Sprintf("jadwal-%s.csv", strings.ToLower(string(tier))),
		}, nil
	case "pdf":
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("jadwal-%s.pdf", strings.ToLower(string(tier))),
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format: "+format)
	}
}

func buildDataset(tier models.Tier, timetable models.Timetable) export.Dataset {
	headers := []string{"Hari", "Jam"}
	for _, level := range models.ClassLevels {
		headers = append(headers, level.Label(tier))
	}

	data := export.Dataset{Headers: headers}
	for _, day := range timetable.SortedDays() {
		for i := range timetable[day] {
			row := timetable[day][i]
			record := map[string]string{"Hari": day, "Jam": row.Time}
			for _, level := range models.ClassLevels {
				slot := row.Slot(level)
				cell := slot.Subject
				if slot.Teacher != "" && slot.Teacher != models.NoTeacher {
					cell = fmt.Sprintf("%s (%s)", slot.Subject, slot.Teacher)
				}
				record[level.Label(tier)] = cell
			}
			data.Rows = append(data.Rows, record)
		}
	}
	return data
}
