package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
)

type mockRegistrations struct {
	calls int
	err   error
}

func (m *mockRegistrations) CreateParentWithUser(ctx context.Context, user *models.User, parent *models.Parent) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	user.ID = 42
	parent.UserID = user.ID
	parent.ID = 7
	return nil
}

type mockTeacherCreator struct {
	calls int
	id    int64
	err   error
}

func (m *mockTeacherCreator) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	m.calls++
	return m.id, m.err
}

type mockStudentCreator struct {
	calls int
	id    int64
	err   error
}

func (m *mockStudentCreator) Create(ctx context.Context, student *models.Student) (int64, error) {
	m.calls++
	return m.id, m.err
}

type mockRefs struct {
	parentExists bool
	classExists  bool
	teacherUser  bool
	err          error
}

func (m *mockRefs) ParentExists(ctx context.Context, parentID int64) (bool, error) {
	return m.parentExists, m.err
}

func (m *mockRefs) ClassExists(ctx context.Context, classID int64) (bool, error) {
	return m.classExists, m.err
}

func (m *mockRefs) IsValidTeacherUser(ctx context.Context, userID int64) (bool, error) {
	return m.teacherUser, m.err
}

func TestRegisterParentRejectsWrongAccountType(t *testing.T) {
	regs := &mockRegistrations{}
	svc := NewRegistrationService(regs, nil, nil, &mockRefs{}, nil, nil, bcrypt.MinCost)

	user := &models.User{Email: "t@example.com", Password: "secret123", AccountType: models.AccountTypeTeacher}
	err := svc.RegisterParent(context.Background(), user, &models.Parent{})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Zero(t, regs.calls)
}

func TestRegisterParentHashesPassword(t *testing.T) {
	regs := &mockRegistrations{}
	svc := NewRegistrationService(regs, nil, nil, &mockRefs{}, nil, nil, bcrypt.MinCost)

	user := &models.User{Email: "p@example.com", Password: "secret123", AccountType: models.AccountTypeParent}
	parent := &models.Parent{NumChildren: 2}
	err := svc.RegisterParent(context.Background(), user, parent)
	require.NoError(t, err)
	assert.Equal(t, 1, regs.calls)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, int64(42), parent.UserID)
	assert.Equal(t, int64(7), parent.ID)
	assert.True(t, strings.HasPrefix(user.Password, "$2"), "plaintext must not reach the store")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterParentWrapsRepositoryFailure(t *testing.T) {
	boom := errors.New("insert failed")
	regs := &mockRegistrations{err: boom}
	svc := NewRegistrationService(regs, nil, nil, &mockRefs{}, nil, nil, bcrypt.MinCost)

	user := &models.User{Email: "p@example.com", Password: "secret123", AccountType: models.AccountTypeParent}
	err := svc.RegisterParent(context.Background(), user, &models.Parent{})
	assert.ErrorIs(t, err, appErrors.ErrPersistence)
	assert.ErrorIs(t, err, boom)
}

func TestRegisterTeacherRejectsNonTeacherUser(t *testing.T) {
	teachers := &mockTeacherCreator{id: 5}
	svc := NewRegistrationService(nil, teachers, nil, &mockRefs{teacherUser: false, classExists: true}, nil, nil, 0)

	_, err := svc.RegisterTeacher(context.Background(), &models.Teacher{UserID: 9, ClassID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, err.Error(), "TEACHER")
	assert.Zero(t, teachers.calls)
}

func TestRegisterTeacherRejectsUnknownClass(t *testing.T) {
	teachers := &mockTeacherCreator{id: 5}
	svc := NewRegistrationService(nil, teachers, nil, &mockRefs{teacherUser: true, classExists: false}, nil, nil, 0)

	_, err := svc.RegisterTeacher(context.Background(), &models.Teacher{UserID: 9, ClassID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Class ID")
	assert.Zero(t, teachers.calls)
}

func TestRegisterTeacherSuccess(t *testing.T) {
	teachers := &mockTeacherCreator{id: 5}
	svc := NewRegistrationService(nil, teachers, nil, &mockRefs{teacherUser: true, classExists: true}, nil, nil, 0)

	id, err := svc.RegisterTeacher(context.Background(), &models.Teacher{UserID: 9, ClassID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.Equal(t, 1, teachers.calls)
}

func TestRegisterStudentRejectsUnknownParent(t *testing.T) {
	students := &mockStudentCreator{id: 3}
	svc := NewRegistrationService(nil, nil, students, &mockRefs{parentExists: false, classExists: true}, nil, nil, 0)

	_, err := svc.RegisterStudent(context.Background(), &models.Student{ParentID: 11, ClassID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Contains(t, err.Error(), "Parent ID")
	assert.Zero(t, students.calls)
}

func TestRegisterStudentSuccess(t *testing.T) {
	students := &mockStudentCreator{id: 3}
	svc := NewRegistrationService(nil, nil, students, &mockRefs{parentExists: true, classExists: true}, nil, nil, 0)

	id, err := svc.RegisterStudent(context.Background(), &models.Student{ParentID: 11, ClassID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, 1, students.calls)
}
