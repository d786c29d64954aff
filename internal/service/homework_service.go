package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
)

type homeworkRepository interface {
	Create(ctx context.Context, hw *models.Homework) (int64, error)
	GetByClass(ctx context.Context, classID int64) ([]models.Homework, error)
	GetByStatus(ctx context.Context, classID int64, completed bool) ([]models.Homework, error)
	SetStatus(ctx context.Context, id int64, completed bool) (bool, error)
}

type classChecker interface {
	ClassExists(ctx context.Context, classID int64) (bool, error)
}

// HomeworkService validates and persists homework assignments.
type HomeworkService struct {
	homework homeworkRepository
	refs     classChecker
	logger   *zap.Logger
}

// NewHomeworkService constructs a HomeworkService.
func NewHomeworkService(homework homeworkRepository, refs classChecker, logger *zap.Logger) *HomeworkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HomeworkService{homework: homework, refs: refs, logger: logger}
}

// AssignHomework rejects assignments whose due date precedes the assignment
// date before any write, checks the class reference, then inserts.
func (s *HomeworkService) AssignHomework(ctx context.Context, hw *models.Homework) (int64, error) {
	if hw.DueDate.Before(hw.AssignmentDate) {
		return 0, appErrors.Clone(appErrors.ErrValidation, "due date must not precede assignment date")
	}

	ok, err := s.refs.ClassExists(ctx, hw.ClassID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Class ID does not exist")
	}

	id, err := s.homework.Create(ctx, hw)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to assign homework")
	}

	s.logger.Info("homework assigned", zap.Int64("homework_id", id), zap.Int64("class_id", hw.ClassID))
	return id, nil
}

// CompleteHomework marks an assignment as done.
func (s *HomeworkService) CompleteHomework(ctx context.Context, id int64) error {
	updated, err := s.homework.SetStatus(ctx, id, true)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to complete homework")
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "homework not found")
	}
	return nil
}

// ListByClass returns a class's homework assignments.
func (s *HomeworkService) ListByClass(ctx context.Context, classID int64) ([]models.Homework, error) {
	hws, err := s.homework.GetByClass(ctx, classID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to list homework")
	}
	return hws, nil
}

// ListPending returns a class's unfinished homework.
func (s *HomeworkService) ListPending(ctx context.Context, classID int64) ([]models.Homework, error) {
	hws, err := s.homework.GetByStatus(ctx, classID, false)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to list pending homework")
	}
	return hws, nil
}
