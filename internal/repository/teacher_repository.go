package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// TeacherRepository manages persistence for teacher profiles.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher profile and returns the generated id.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	const query = `INSERT INTO "Teacher" (user_id, class_id) VALUES ($1, $2) RETURNING teacher_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, teacher.UserID, teacher.ClassID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create teacher: %w", err)
	}
	teacher.ID = id
	return id, nil
}

// GetByID fetches a teacher by identifier.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	const query = `SELECT teacher_id, user_id, class_id FROM "Teacher" WHERE teacher_id = $1 LIMIT 1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get teacher by id: %w", err)
	}
	return &teacher, nil
}

// GetByUser fetches the teacher profile attached to a user account.
func (r *TeacherRepository) GetByUser(ctx context.Context, userID int64) (*models.Teacher, error) {
	const query = `SELECT teacher_id, user_id, class_id FROM "Teacher" WHERE user_id = $1 LIMIT 1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get teacher by user: %w", err)
	}
	return &teacher, nil
}

// GetAll returns every teacher profile.
func (r *TeacherRepository) GetAll(ctx context.Context) ([]models.Teacher, error) {
	const query = `SELECT teacher_id, user_id, class_id FROM "Teacher" ORDER BY teacher_id ASC`
	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// Update rewrites a teacher row. The boolean reports whether a row matched.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) (bool, error) {
	const query = `UPDATE "Teacher" SET user_id = $2, class_id = $3 WHERE teacher_id = $1`
	res, err := r.db.ExecContext(ctx, query, teacher.ID, teacher.UserID, teacher.ClassID)
	if err != nil {
		return false, fmt.Errorf("update teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update teacher rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a teacher row.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM "Teacher" WHERE teacher_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete teacher rows affected: %w", err)
	}
	return affected > 0, nil
}
