package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// GradeRepository manages persistence for awarded marks.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

const gradeColumns = `grade_id, mark, subject, student_id, grade_date, comment, teacher_id`

// Create inserts a new grade and returns the generated id.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) (int64, error) {
	const query = `INSERT INTO "Grade" (mark, subject, student_id, grade_date, comment, teacher_id)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING grade_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, grade.Mark, grade.Subject, grade.StudentID, grade.Date, grade.Comment, grade.TeacherID).Scan(&id); err != nil {
		return 0, fmt.Errorf("create grade: %w", err)
	}
	grade.ID = id
	return id, nil
}

// GetByID fetches a grade by identifier.
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Grade" WHERE grade_id = $1 LIMIT 1`, gradeColumns)
	var grade models.Grade
	if err := r.db.GetContext(ctx, &grade, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get grade by id: %w", err)
	}
	return &grade, nil
}

// GetByStudent returns every grade awarded to a student.
func (r *GradeRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Grade, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Grade" WHERE student_id = $1 ORDER BY grade_date ASC`, gradeColumns)
	var grades []models.Grade
	if err := r.db.SelectContext(ctx, &grades, query, studentID); err != nil {
		return nil, fmt.Errorf("list grades by student: %w", err)
	}
	return grades, nil
}

// GetByStudentAndSubject narrows a student's grades to one subject.
func (r *GradeRepository) GetByStudentAndSubject(ctx context.Context, studentID int64, subject string) ([]models.Grade, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Grade" WHERE student_id = $1 AND subject = $2 ORDER BY grade_date ASC`, gradeColumns)
	var grades []models.Grade
	if err := r.db.SelectContext(ctx, &grades, query, studentID, subject); err != nil {
		return nil, fmt.Errorf("list grades by student and subject: %w", err)
	}
	return grades, nil
}

// GetByTeacher returns every grade recorded by a teacher.
func (r *GradeRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]models.Grade, error) {
	query := fmt.Sprintf(`SELECT %s FROM "Grade" WHERE teacher_id = $1 ORDER BY grade_date ASC`, gradeColumns)
	var grades []models.Grade
	if err := r.db.SelectContext(ctx, &grades, query, teacherID); err != nil {
		return nil, fmt.Errorf("list grades by teacher: %w", err)
	}
	return grades, nil
}

// Update rewrites a grade row. The boolean reports whether a row matched.
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) (bool, error) {
	const query = `UPDATE "Grade" SET mark = $2, subject = $3, student_id = $4, grade_date = $5, comment = $6, teacher_id = $7 WHERE grade_id = $1`
	res, err := r.db.ExecContext(ctx, query, grade.ID, grade.Mark, grade.Subject, grade.StudentID, grade.Date, grade.Comment, grade.TeacherID)
	if err != nil {
		return false, fmt.Errorf("update grade: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update grade rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a grade row.
func (r *GradeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM "Grade" WHERE grade_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete grade: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete grade rows affected: %w", err)
	}
	return affected > 0, nil
}
