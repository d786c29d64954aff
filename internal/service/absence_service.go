package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
)

type absenceRepository interface {
	Create(ctx context.Context, absence *models.Absence) (int64, error)
	GetByStudent(ctx context.Context, studentID int64) ([]models.Absence, error)
	GetByStatus(ctx context.Context, studentID int64, excused bool) ([]models.Absence, error)
	SetStatus(ctx context.Context, id int64, excused bool) (bool, error)
}

// AbsenceService validates and persists absence records.
type AbsenceService struct {
	absences absenceRepository
	students studentProber
	logger   *zap.Logger
}

// NewAbsenceService constructs an AbsenceService.
func NewAbsenceService(absences absenceRepository, students studentProber, logger *zap.Logger) *AbsenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AbsenceService{absences: absences, students: students, logger: logger}
}

// RecordAbsence checks the student reference, then inserts the absence.
func (s *AbsenceService) RecordAbsence(ctx context.Context, absence *models.Absence) (int64, error) {
	ok, err := s.students.Exists(ctx, absence.StudentID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to check student")
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Student ID does not exist")
	}

	id, err := s.absences.Create(ctx, absence)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to record absence")
	}

	s.logger.Info("absence recorded", zap.Int64("absence_id", id), zap.Int64("student_id", absence.StudentID))
	return id, nil
}

// ExcuseAbsence marks an absence as excused.
func (s *AbsenceService) ExcuseAbsence(ctx context.Context, id int64) error {
	updated, err := s.absences.SetStatus(ctx, id, true)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to excuse absence")
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "absence not found")
	}
	return nil
}

// ListByStudent returns all absences for a student.
func (s *AbsenceService) ListByStudent(ctx context.Context, studentID int64) ([]models.Absence, error) {
	absences, err := s.absences.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to list absences")
	}
	return absences, nil
}

// ListUnexcused returns a student's unexcused absences.
func (s *AbsenceService) ListUnexcused(ctx context.Context, studentID int64) ([]models.Absence, error) {
	absences, err := s.absences.GetByStatus(ctx, studentID, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to list unexcused absences")
	}
	return absences, nil
}
