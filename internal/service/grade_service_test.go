package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
)

type mockGradeRepo struct {
	grades  []models.Grade
	created int
	id      int64
	err     error
}

func (m *mockGradeRepo) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	m.created++
	return m.id, m.err
}

func (m *mockGradeRepo) GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	return m.grades, m.err
}

func (m *mockGradeRepo) GetByStudentAndSubject(ctx context.Context, studentID int64, subject string) ([]models.Grade, error) {
	var out []models.Grade
	for _, g := range m.grades {
		if g.Subject == subject {
			out = append(out, g)
		}
	}
	return out, m.err
}

type mockStudentProber struct {
	exists bool
	err    error
}

func (m *mockStudentProber) Exists(ctx context.Context, id int64) (bool, error) {
	return m.exists, m.err
}

func TestIsValidMark(t *testing.T) {
	cases := []struct {
		mark  string
		valid bool
	}{
		{"A", true},
		{"B", true},
		{"C", true},
		{"D", true},
		{"F", true},
		{"E", false},
		{"G", false},
		{"a", false},
		{"", false},
		{"A+", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsValidMark(tc.mark), "mark %q", tc.mark)
	}
}

func TestRecordGradeRejectsInvalidMark(t *testing.T) {
	repo := &mockGradeRepo{id: 1}
	svc := NewGradeService(repo, &mockStudentProber{exists: true}, nil)

	_, err := svc.RecordGrade(context.Background(), &models.Grade{Mark: "E", StudentID: 1})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Zero(t, repo.created)
}

func TestRecordGradeRejectsUnknownStudent(t *testing.T) {
	repo := &mockGradeRepo{id: 1}
	svc := NewGradeService(repo, &mockStudentProber{exists: false}, nil)

	_, err := svc.RecordGrade(context.Background(), &models.Grade{Mark: "A", StudentID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Student ID")
	assert.Zero(t, repo.created)
}

func TestRecordGradeSuccess(t *testing.T) {
	repo := &mockGradeRepo{id: 9}
	svc := NewGradeService(repo, &mockStudentProber{exists: true}, nil)

	id, err := svc.RecordGrade(context.Background(), &models.Grade{Mark: "B", StudentID: 1, Subject: "Math"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.Equal(t, 1, repo.created)
}

func TestAverageForStudentSkipsInvalidMarks(t *testing.T) {
	repo := &mockGradeRepo{grades: []models.Grade{
		{Mark: "A"},
		{Mark: "B"},
		{Mark: "F"},
		{Mark: "E"},
	}}
	svc := NewGradeService(repo, &mockStudentProber{exists: true}, nil)

	avg, err := svc.AverageForStudent(context.Background(), 1)
	require.NoError(t, err)
	// (5 + 4 + 1) / 3; the E row contributes nothing.
	assert.InDelta(t, 3.33, avg, 0.01)
}

func TestAverageForStudentNoGrades(t *testing.T) {
	svc := NewGradeService(&mockGradeRepo{}, &mockStudentProber{exists: true}, nil)

	avg, err := svc.AverageForStudent(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestAverageForSubject(t *testing.T) {
	repo := &mockGradeRepo{grades: []models.Grade{
		{Mark: "A", Subject: "Math"},
		{Mark: "C", Subject: "Math"},
		{Mark: "F", Subject: "History"},
	}}
	svc := NewGradeService(repo, &mockStudentProber{exists: true}, nil)

	avg, err := svc.AverageForSubject(context.Background(), 1, "Math")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, avg, 0.001)
}
