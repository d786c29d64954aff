package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

func TestParentCreateReturnsGeneratedID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewParentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "Parent"`)).
		WithArgs(int64(42), 2).
		WillReturnRows(sqlmock.NewRows([]string{"parent_id"}).AddRow(7))

	parent := &models.Parent{UserID: 42, NumChildren: 2}
	id, err := repo.Create(context.Background(), parent)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParentExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewParentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM "Parent" WHERE parent_id = $1 LIMIT 1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT 1 FROM "Parent"`)).
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	ok, err := repo.Exists(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(context.Background(), 8)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParentGetByUser(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewParentRepository(db)

	rows := sqlmock.NewRows([]string{"parent_id", "user_id", "no_children"}).
		AddRow(7, 42, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Parent" WHERE user_id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	parent, err := repo.GetByUser(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parent.ID)
	assert.Equal(t, 2, parent.NumChildren)
	assert.NoError(t, mock.ExpectationsWereMet())
}
