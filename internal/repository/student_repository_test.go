package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

func TestStudentCreateGetRoundTrip(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	student := &models.Student{
		ClassID:   2,
		FirstName: "Mila",
		LastName:  "Ivanova",
		Address:   "Oak Ave 5",
		ParentID:  3,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Student"`)).
		WithArgs(int64(2), "Mila", "Ivanova", "Oak Ave 5", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(11))

	rows := sqlmock.NewRows([]string{"student_id", "class_id", "f_name", "l_name", "address", "parent_id"}).
		AddRow(11, 2, "Mila", "Ivanova", "Oak Ave 5", 3)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT student_id, class_id, f_name, l_name, address, parent_id FROM "Student" WHERE student_id = $1 LIMIT 1`)).
		WithArgs(int64(11)).
		WillReturnRows(rows)

	id, err := repo.Create(context.Background(), student)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	// Every field matches the created entity except the generated id.
	assert.Equal(t, id, got.ID)
	assert.Equal(t, student.ClassID, got.ClassID)
	assert.Equal(t, student.FirstName, got.FirstName)
	assert.Equal(t, student.LastName, got.LastName)
	assert.Equal(t, student.Address, got.Address)
	assert.Equal(t, student.ParentID, got.ParentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentGetByClass(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "class_id", "f_name", "l_name", "address", "parent_id"}).
		AddRow(1, 2, "Mila", "Ivanova", "Oak Ave 5", 3).
		AddRow(2, 2, "Petar", "Georgiev", "Elm St 9", 4)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Student" WHERE class_id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(rows)

	students, err := repo.GetByClass(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Mila", students[0].FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentDeleteMissingRow(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "Student" WHERE student_id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM "Student" WHERE student_id = $1 LIMIT 1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	ok, err := repo.Exists(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
