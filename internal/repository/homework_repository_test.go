package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

func TestHomeworkCreateReturnsGeneratedID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	assigned := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO homework`)).
		WithArgs(assigned, due, int64(2), "chapter 4 exercises", false).
		WillReturnRows(sqlmock.NewRows([]string{"homework_id"}).AddRow(9))

	hw := &models.Homework{
		AssignmentDate: assigned,
		DueDate:        due,
		ClassID:        2,
		Description:    "chapter 4 exercises",
	}
	id, err := repo.Create(context.Background(), hw)
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkGetByStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	assigned := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"homework_id", "assignment_date", "due_date", "class_id", "description", "status"}).
		AddRow(9, assigned, due, 2, "chapter 4 exercises", false)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM homework WHERE class_id = $1 AND status = $2`)).
		WithArgs(int64(2), false).
		WillReturnRows(rows)

	hws, err := repo.GetByStatus(context.Background(), 2, false)
	require.NoError(t, err)
	require.Len(t, hws, 1)
	assert.False(t, hws[0].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHomeworkSetStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewHomeworkRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE homework SET status = $2 WHERE homework_id = $1`)).
		WithArgs(int64(9), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.SetStatus(context.Background(), 9, true)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
