package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
)

type gradeRepository interface {
	Create(ctx context.Context, grade *models.Grade) (int64, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error)
	GetByStudentAndSubject(ctx context.Context, studentID int64, subject string) ([]models.Grade, error)
}

type studentProber interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// markScale maps the letter marks to their numeric weight. E is deliberately
// absent: it is not a valid mark in this scale.
var markScale = map[string]float64{
	"A": 5,
	"B": 4,
	"C": 3,
	"D": 2,
	"F": 1,
}

// IsValidMark reports whether the mark belongs to the grading scale.
func IsValidMark(mark string) bool {
	_, ok := markScale[mark]
	return ok
}

// GradeService records marks and aggregates them per student.
type GradeService struct {
	grades   gradeRepository
	students studentProber
	logger   *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(grades gradeRepository, students studentProber, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{grades: grades, students: students, logger: logger}
}

// RecordGrade validates the mark and the referenced student, then inserts
// the grade and returns the generated id.
func (s *GradeService) RecordGrade(ctx context.Context, grade *models.Grade) (int64, error) {
	if !IsValidMark(grade.Mark) {
		return 0, appErrors.Clone(appErrors.ErrValidation, "mark must be one of A, B, C, D, F")
	}

	ok, err := s.students.Exists(ctx, grade.StudentID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to check student")
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Student ID does not exist")
	}

	id, err := s.grades.Create(ctx, grade)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to record grade")
	}
	return id, nil
}

// AverageForStudent computes the numeric average of a student's valid marks.
// Invalid marks are excluded from both the sum and the count. A student with
// no valid marks averages 0; "no data" and "zero average" are deliberately
// not distinguished.
func (s *GradeService) AverageForStudent(ctx context.Context, studentID int64) (float64, error) {
	grades, err := s.grades.GetByStudent(ctx, studentID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to load grades")
	}
	return averageOf(grades), nil
}

// AverageForSubject computes the average for one subject only.
func (s *GradeService) AverageForSubject(ctx context.Context, studentID int64, subject string) (float64, error) {
	grades, err := s.grades.GetByStudentAndSubject(ctx, studentID, subject)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to load grades")
	}
	return averageOf(grades), nil
}

func averageOf(grades []models.Grade) float64 {
	var sum float64
	var count int
	for _, g := range grades {
		value, ok := markScale[g.Mark]
		if !ok {
			continue
		}
		sum += value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
