package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/export"
)

type studentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

type gradeLister interface {
	GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
}

// ReportService assembles student report cards and renders them through the
// export package.
type ReportService struct {
	students studentReader
	grades   gradeLister
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(students studentReader, grades gradeLister, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		students: students,
		grades:   grades,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// ReportCard carries the assembled dataset plus its title for rendering.
type ReportCard struct {
	Title   string
	Dataset export.Dataset
	Average float64
}

// StudentReportCard builds a per-subject mark listing for a student with
// the overall average appended.
func (s *ReportService) StudentReportCard(ctx context.Context, studentID int64) (*ReportCard, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to load student")
	}

	grades, err := s.grades.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to load grades")
	}

	headers := []string{"Subject", "Mark", "Date", "Comment"}
	rows := make([]map[string]string, 0, len(grades)+1)
	for _, g := range grades {
		rows = append(rows, map[string]string{
			"Subject": g.Subject,
			"Mark":    g.Mark,
			"Date":    g.Date.Format("2006-01-02"),
			"Comment": g.Comment,
		})
	}

	average := averageOf(grades)
	rows = append(rows, map[string]string{
		"Subject": "Average",
		"Mark":    fmt.Sprintf("%.2f", average),
		"Date":    "",
		"Comment": "",
	})

	return &ReportCard{
		Title:   fmt.Sprintf("Report card - %s %s", student.FirstName, student.LastName),
		Dataset: export.Dataset{Headers: headers, Rows: rows},
		Average: average,
	}, nil
}

// RenderCSV encodes a report card as CSV bytes.
func (s *ReportService) RenderCSV(card *ReportCard) ([]byte, error) {
	data, err := s.csv.Render(card.Dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
	}
	return data, nil
}

// RenderPDF encodes a report card as PDF bytes.
func (s *ReportService) RenderPDF(card *ReportCard) ([]byte, error) {
	data, err := s.pdf.Render(card.Dataset, card.Title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
	}
	return data, nil
}
