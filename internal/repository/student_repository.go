package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentColumns = `student_id, class_id, f_name, l_name, address, parent_id`

// Create inserts a new student and returns the generated id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	const query = `INSERT INTO "Student" (class_id, f_name, l_name, address, parent_id)
        VALUES ($1, $2, $3, $4, $5) RETURNING student_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, student.ClassID, student.FirstName, student.LastName, student.Address, student.ParentID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create student: %w", err)
	}
	student.ID = id
	return id, nil
}

// GetByID fetches a student by identifier.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Student" WHERE student_id = $1 LIMIT 1`, studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}
	return &student, nil
}

// GetAll returns every student.
func (r *StudentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Student" ORDER BY student_id ASC`, studentColumns)
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// GetByClass returns all students enrolled in a class.
func (r *StudentRepository) GetByClass(ctx context.Context, classID int64) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Student" WHERE class_id = $1 ORDER BY l_name ASC, f_name ASC`, studentColumns)
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list students by class: %w", err)
	}
	return students, nil
}

// GetByParent returns all students belonging to a parent.
func (r *StudentRepository) GetByParent(ctx context.Context, parentID int64) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Student" WHERE parent_id = $1 ORDER BY student_id ASC`, studentColumns)
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, parentID); err != nil {
		return nil, fmt.Errorf("list students by parent: %w", err)
	}
	return students, nil
}

// Update rewrites a student row. The boolean reports whether a row matched.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) (bool, error) {
	const query = `UPDATE "Student" SET class_id = $2, f_name = $3, l_name = $4, address = $5, parent_id = $6 WHERE student_id = $1`
	res, err := r.db.ExecContext(ctx, query, student.ID, student.ClassID, student.FirstName, student.LastName, student.Address, student.ParentID)
	if err != nil {
		return false, fmt.Errorf("update student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update student rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a student row.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM "Student" WHERE student_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete student rows affected: %w", err)
	}
	return affected > 0, nil
}

// Exists probes whether a student row exists.
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM "Student" WHERE student_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check student: %w", err)
	}
	return true, nil
}
