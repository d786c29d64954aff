package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// AbsenceRepository manages persistence for absence records.
type AbsenceRepository struct {
	db *sqlx.DB
}

// NewAbsenceRepository constructs an AbsenceRepository.
func NewAbsenceRepository(db *sqlx.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

const absenceColumns = `absence_id, student_id, absence_date, description, status`

// Create inserts a new absence and returns the generated id.
func (r *AbsenceRepository) Create(ctx context.Context, absence *models.Absence) (int64, error) {
	const query = `INSERT INTO absence (student_id, absence_date, description, status)
        VALUES ($1, $2, $3, $4) RETURNING absence_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, absence.StudentID, absence.Date, absence.Description, absence.Excused).Scan(&id); err != nil {
		return 0, fmt.Errorf("create absence: %w", err)
	}
	absence.ID = id
	return id, nil
}

// GetByID fetches an absence by identifier.
func (r *AbsenceRepository) GetByID(ctx context.Context, id int64) (*models.Absence, error) {
	query := fmt.Sprintf(`SELECT %s FROM absence WHERE absence_id = $1 LIMIT 1`, absenceColumns)
	var absence models.Absence
	if err := r.db.GetContext(ctx, &absence, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get absence by id: %w", err)
	}
	return &absence, nil
}

// GetByStudent returns every absence recorded for a student.
func (r *AbsenceRepository) GetByStudent(ctx context.Context, studentID int64) ([]models.Absence, error) {
	query := fmt.Sprintf(`SELECT %s FROM absence WHERE student_id = $1 ORDER BY absence_date ASC`, absenceColumns)
	var absences []models.Absence
	if err := r.db.SelectContext(ctx, &absences, query, studentID); err != nil {
		return nil, fmt.Errorf("list absences by student: %w", err)
	}
	return absences, nil
}

// GetByStatus returns a student's absences filtered by excused state.
func (r *AbsenceRepository) GetByStatus(ctx context.Context, studentID int64, excused bool) ([]models.Absence, error) {
	query := fmt.Sprintf(`SELECT %s FROM absence WHERE student_id = $1 AND status = $2 ORDER BY absence_date ASC`, absenceColumns)
	var absences []models.Absence
	if err := r.db.SelectContext(ctx, &absences, query, studentID, excused); err != nil {
		return nil, fmt.Errorf("list absences by status: %w", err)
	}
	return absences, nil
}

// Update rewrites an absence row. The boolean reports whether a row matched.
func (r *AbsenceRepository) Update(ctx context.Context, absence *models.Absence) (bool, error) {
	const query = `UPDATE absence SET student_id = $2, absence_date = $3, description = $4, status = $5 WHERE absence_id = $1`
	res, err := r.db.ExecContext(ctx, query, absence.ID, absence.StudentID, absence.Date, absence.Description, absence.Excused)
	if err != nil {
		return false, fmt.Errorf("update absence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update absence rows affected: %w", err)
	}
	return affected > 0, nil
}

// SetStatus flips the excused flag of an absence.
func (r *AbsenceRepository) SetStatus(ctx context.Context, id int64, excused bool) (bool, error) {
	const query = `UPDATE absence SET status = $2 WHERE absence_id = $1`
	res, err := r.db.ExecContext(ctx, query, id, excused)
	if err != nil {
		return false, fmt.Errorf("set absence status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set absence status rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes an absence row.
func (r *AbsenceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM absence WHERE absence_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete absence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete absence rows affected: %w", err)
	}
	return affected > 0, nil
}
