package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/metrics"
)

type parentUserCreator interface {
	CreateParentWithUser(ctx context.Context, user *models.User, parent *models.Parent) error
}

type teacherCreator interface {
	Create(ctx context.Context, teacher *models.Teacher) (int64, error)
}

type studentCreator interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
}

type referenceChecker interface {
	ParentExists(ctx context.Context, parentID int64) (bool, error)
	ClassExists(ctx context.Context, classID int64) (bool, error)
	IsValidTeacherUser(ctx context.Context, userID int64) (bool, error)
}

// RegistrationService orchestrates the creation flows that span more than
// one entity or require a referential guard before the insert.
type RegistrationService struct {
	registrations parentUserCreator
	teachers      teacherCreator
	students      studentCreator
	refs          referenceChecker
	logger        *zap.Logger
	recorder      *metrics.Recorder
	bcryptCost    int
}

// NewRegistrationService constructs a RegistrationService. recorder may be nil.
func NewRegistrationService(registrations parentUserCreator, teachers teacherCreator, students studentCreator, refs referenceChecker, logger *zap.Logger, recorder *metrics.Recorder, bcryptCost int) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &RegistrationService{
		registrations: registrations,
		teachers:      teachers,
		students:      students,
		refs:          refs,
		logger:        logger,
		recorder:      recorder,
		bcryptCost:    bcryptCost,
	}
}

// RegisterParent creates a user account and its parent profile as one atomic
// unit. The account must carry the PARENT type; the password is hashed before
// the flow begins so no plaintext reaches the store.
func (s *RegistrationService) RegisterParent(ctx context.Context, user *models.User, parent *models.Parent) error {
	if user.AccountType != models.AccountTypeParent {
		return appErrors.Clone(appErrors.ErrValidation, "account type must be PARENT")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}
	user.Password = string(hash)

	start := time.Now()
	if err := s.registrations.CreateParentWithUser(ctx, user, parent); err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "parent registration failed")
	}
	s.recorder.ObserveStoreOp("create_parent_with_user", start)

	s.recorder.ObserveRegistration("parent")
	s.logger.Info("parent registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("parent_id", parent.ID),
	)
	return nil
}

// RegisterTeacher validates the referenced user and class, then creates the
// teacher profile. The guard and the insert are not one transaction; a
// concurrent delete between them is tolerated, matching the advisory
// validation model.
func (s *RegistrationService) RegisterTeacher(ctx context.Context, teacher *models.Teacher) (int64, error) {
	ok, err := s.refs.IsValidTeacherUser(ctx, teacher.UserID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "User ID does not reference a TEACHER account")
	}

	ok, err = s.refs.ClassExists(ctx, teacher.ClassID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Class ID does not exist")
	}

	id, err := s.teachers.Create(ctx, teacher)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "teacher registration failed")
	}

	s.recorder.ObserveRegistration("teacher")
	s.logger.Info("teacher registered", zap.Int64("teacher_id", id))
	return id, nil
}

// RegisterStudent validates the referenced parent and class, then creates the
// student. Same advisory guard model as RegisterTeacher.
func (s *RegistrationService) RegisterStudent(ctx context.Context, student *models.Student) (int64, error) {
	ok, err := s.refs.ParentExists(ctx, student.ParentID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Parent ID does not exist")
	}

	ok, err = s.refs.ClassExists(ctx, student.ClassID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, appErrors.Clone(appErrors.ErrValidation, "Class ID does not exist")
	}

	id, err := s.students.Create(ctx, student)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "student registration failed")
	}

	s.recorder.ObserveRegistration("student")
	s.logger.Info("student registered", zap.Int64("student_id", id))
	return id, nil
}
