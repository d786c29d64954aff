package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// ClassRepository manages persistence for class groups.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a ClassRepository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = `class_id, size, year, room_number, teacher_id`

// Create inserts a new class group and returns the generated id.
func (r *ClassRepository) Create(ctx context.Context, class *models.ClassGroup) (int64, error) {
	const query = `INSERT INTO class_group (size, year, room_number, teacher_id)
        VALUES ($1, $2, $3, $4) RETURNING class_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, class.Size, class.Year, class.RoomNumber, class.TeacherID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create class: %w", err)
	}
	class.ID = id
	return id, nil
}

// GetByID fetches a class group by identifier.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*models.ClassGroup, error) {
	query := fmt.Sprintf(`SELECT %s FROM class_group WHERE class_id = $1 LIMIT 1`, classColumns)
	var class models.ClassGroup
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get class by id: %w", err)
	}
	return &class, nil
}

// GetAll returns every class group.
func (r *ClassRepository) GetAll(ctx context.Context) ([]models.ClassGroup, error) {
	query := fmt.Sprintf(`SELECT %s FROM class_group ORDER BY class_id ASC`, classColumns)
	var classes []models.ClassGroup
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// GetByYear returns class groups for a school year.
func (r *ClassRepository) GetByYear(ctx context.Context, year int) ([]models.ClassGroup, error) {
	query := fmt.Sprintf(`SELECT %s FROM class_group WHERE year = $1 ORDER BY room_number ASC`, classColumns)
	var classes []models.ClassGroup
	if err := r.db.SelectContext(ctx, &classes, query, year); err != nil {
		return nil, fmt.Errorf("list classes by year: %w", err)
	}
	return classes, nil
}

// Update rewrites a class row. The boolean reports whether a row matched.
func (r *ClassRepository) Update(ctx context.Context, class *models.ClassGroup) (bool, error) {
	const query = `UPDATE class_group SET size = $2, year = $3, room_number = $4, teacher_id = $5 WHERE class_id = $1`
	res, err := r.db.ExecContext(ctx, query, class.ID, class.Size, class.Year, class.RoomNumber, class.TeacherID)
	if err != nil {
		return false, fmt.Errorf("update class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update class rows affected: %w", err)
	}
	return affected > 0, nil
}

// AssignTeacher sets or clears the homeroom teacher of a class.
func (r *ClassRepository) AssignTeacher(ctx context.Context, classID int64, teacherID *int64) (bool, error) {
	const query = `UPDATE class_group SET teacher_id = $2 WHERE class_id = $1`
	res, err := r.db.ExecContext(ctx, query, classID, teacherID)
	if err != nil {
		return false, fmt.Errorf("assign class teacher: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("assign class teacher rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a class row.
func (r *ClassRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM class_group WHERE class_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete class: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete class rows affected: %w", err)
	}
	return affected > 0, nil
}

// Exists probes whether a class row exists.
func (r *ClassRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM class_group WHERE class_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check class: %w", err)
	}
	return true, nil
}
