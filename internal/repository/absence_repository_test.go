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

func TestAbsenceCreateReturnsGeneratedID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAbsenceRepository(db)

	date := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO absence`)).
		WithArgs(int64(11), date, "doctor appointment", true).
		WillReturnRows(sqlmock.NewRows([]string{"absence_id"}).AddRow(5))

	absence := &models.Absence{
		StudentID:   11,
		Date:        date,
		Description: "doctor appointment",
		Excused:     true,
	}
	id, err := repo.Create(context.Background(), absence)
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceGetByStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAbsenceRepository(db)

	date := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"absence_id", "student_id", "absence_date", "description", "status"}).
		AddRow(5, 11, date, "unexplained", false)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM absence WHERE student_id = $1 AND status = $2`)).
		WithArgs(int64(11), false).
		WillReturnRows(rows)

	absences, err := repo.GetByStatus(context.Background(), 11, false)
	require.NoError(t, err)
	require.Len(t, absences, 1)
	assert.False(t, absences[0].Excused)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAbsenceSetStatus(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAbsenceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE absence SET status = $2 WHERE absence_id = $1`)).
		WithArgs(int64(5), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.SetStatus(context.Background(), 5, true)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
