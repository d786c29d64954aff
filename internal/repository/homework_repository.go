package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// HomeworkRepository manages persistence for homework assignments.
type HomeworkRepository struct {
	db *sqlx.DB
}

// NewHomeworkRepository constructs a HomeworkRepository.
func NewHomeworkRepository(db *sqlx.DB) *HomeworkRepository {
	return &HomeworkRepository{db: db}
}

const homeworkColumns = `homework_id, assignment_date, due_date, class_id, description, status`

// Create inserts a new homework assignment and returns the generated id.
func (r *HomeworkRepository) Create(ctx context.Context, hw *models.Homework) (int64, error) {
	const query = `INSERT INTO homework (assignment_date, due_date, class_id, description, status)
        VALUES ($1, $2, $3, $4, $5) RETURNING homework_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, hw.AssignmentDate, hw.DueDate, hw.ClassID, hw.Description, hw.Completed).Scan(&id); err != nil {
		return 0, fmt.Errorf("create homework: %w", err)
	}
	hw.ID = id
	return id, nil
}

// GetByID fetches a homework assignment by identifier.
func (r *HomeworkRepository) GetByID(ctx context.Context, id int64) (*models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homework WHERE homework_id = $1 LIMIT 1`, homeworkColumns)
	var hw models.Homework
	if err := r.db.GetContext(ctx, &hw, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get homework by id: %w", err)
	}
	return &hw, nil
}

// GetAll returns every homework assignment.
func (r *HomeworkRepository) GetAll(ctx context.Context) ([]models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homework ORDER BY due_date ASC`, homeworkColumns)
	var hws []models.Homework
	if err := r.db.SelectContext(ctx, &hws, query); err != nil {
		return nil, fmt.Errorf("list homework: %w", err)
	}
	return hws, nil
}

// GetByClass returns homework assigned to a class.
func (r *HomeworkRepository) GetByClass(ctx context.Context, classID int64) ([]models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homework WHERE class_id = $1 ORDER BY due_date ASC`, homeworkColumns)
	var hws []models.Homework
	if err := r.db.SelectContext(ctx, &hws, query, classID); err != nil {
		return nil, fmt.Errorf("list homework by class: %w", err)
	}
	return hws, nil
}

// GetByStatus returns a class's homework filtered by completion state.
func (r *HomeworkRepository) GetByStatus(ctx context.Context, classID int64, completed bool) ([]models.Homework, error) {
	query := fmt.Sprintf(`SELECT %s FROM homework WHERE class_id = $1 AND status = $2 ORDER BY due_date ASC`, homeworkColumns)
	var hws []models.Homework
	if err := r.db.SelectContext(ctx, &hws, query, classID, completed); err != nil {
		return nil, fmt.Errorf("list homework by status: %w", err)
	}
	return hws, nil
}

// Update rewrites a homework row. The boolean reports whether a row matched.
func (r *HomeworkRepository) Update(ctx context.Context, hw *models.Homework) (bool, error) {
	const query = `UPDATE homework SET assignment_date = $2, due_date = $3, class_id = $4, description = $5, status = $6 WHERE homework_id = $1`
	res, err := r.db.ExecContext(ctx, query, hw.ID, hw.AssignmentDate, hw.DueDate, hw.ClassID, hw.Description, hw.Completed)
	if err != nil {
		return false, fmt.Errorf("update homework: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update homework rows affected: %w", err)
	}
	return affected > 0, nil
}

// SetStatus flips the completion flag of a homework assignment.
func (r *HomeworkRepository) SetStatus(ctx context.Context, id int64, completed bool) (bool, error) {
	const query = `UPDATE homework SET status = $2 WHERE homework_id = $1`
	res, err := r.db.ExecContext(ctx, query, id, completed)
	if err != nil {
		return false, fmt.Errorf("set homework status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set homework status rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a homework row.
func (r *HomeworkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM homework WHERE homework_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete homework: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete homework rows affected: %w", err)
	}
	return affected > 0, nil
}
