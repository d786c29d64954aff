package service

import (
	"context"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
)

type parentProber interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type classProber interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type userTypeProber interface {
	ExistsWithType(ctx context.Context, id int64, accountType models.AccountType) (bool, error)
}

// ReferenceValidator performs single-row existence probes used to guard
// writes that establish a relationship. The checks are advisory: they run
// outside the subsequent insert's transaction, so a concurrent delete
// between check and insert can still let a dangling reference through.
type ReferenceValidator struct {
	parents parentProber
	classes classProber
	users   userTypeProber
}

// NewReferenceValidator constructs a ReferenceValidator.
func NewReferenceValidator(parents parentProber, classes classProber, users userTypeProber) *ReferenceValidator {
	return &ReferenceValidator{parents: parents, classes: classes, users: users}
}

// ParentExists reports whether a parent row exists.
func (v *ReferenceValidator) ParentExists(ctx context.Context, parentID int64) (bool, error) {
	ok, err := v.parents.Exists(ctx, parentID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to check parent")
	}
	return ok, nil
}

// ClassExists reports whether a class group row exists.
func (v *ReferenceValidator) ClassExists(ctx context.Context, classID int64) (bool, error) {
	ok, err := v.classes.Exists(ctx, classID)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to check class")
	}
	return ok, nil
}

// IsValidTeacherUser reports whether the user exists and holds the TEACHER
// account type.
func (v *ReferenceValidator) IsValidTeacherUser(ctx context.Context, userID int64) (bool, error) {
	ok, err := v.users.ExistsWithType(ctx, userID, models.AccountTypeTeacher)
	if err != nil {
		return false, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to check teacher user")
	}
	return ok, nil
}
