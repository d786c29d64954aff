package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// ParentRepository manages persistence for parent profiles.
type ParentRepository struct {
	db *sqlx.DB
}

// NewParentRepository constructs a ParentRepository.
func NewParentRepository(db *sqlx.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

// Create inserts a new parent profile and returns the generated id.
func (r *ParentRepository) Create(ctx context.Context, parent *models.Parent) (int64, error) {
	const query = `INSERT INTO "Parent" (user_id, no_children) VALUES ($1, $2) RETURNING parent_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, parent.UserID, parent.NumChildren).Scan(&id); err != nil {
		return 0, fmt.Errorf("create parent: %w", err)
	}
	parent.ID = id
	return id, nil
}

// GetByID fetches a parent by identifier.
func (r *ParentRepository) GetByID(ctx context.Context, id int64) (*models.Parent, error) {
	const query = `SELECT parent_id, user_id, no_children FROM "Parent" WHERE parent_id = $1 LIMIT 1`
	var parent models.Parent
	if err := r.db.GetContext(ctx, &parent, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get parent by id: %w", err)
	}
	return &parent, nil
}

// GetByUser fetches the parent profile attached to a user account.
func (r *ParentRepository) GetByUser(ctx context.Context, userID int64) (*models.Parent, error) {
	const query = `SELECT parent_id, user_id, no_children FROM "Parent" WHERE user_id = $1 LIMIT 1`
	var parent models.Parent
	if err := r.db.GetContext(ctx, &parent, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get parent by user: %w", err)
	}
	return &parent, nil
}

// GetAll returns every parent profile.
func (r *ParentRepository) GetAll(ctx context.Context) ([]models.Parent, error) {
	const query = `SELECT parent_id, user_id, no_children FROM "Parent" ORDER BY parent_id ASC`
	var parents []models.Parent
	if err := r.db.SelectContext(ctx, &parents, query); err != nil {
		return nil, fmt.Errorf("list parents: %w", err)
	}
	return parents, nil
}

// Update rewrites a parent row. The boolean reports whether a row matched.
func (r *ParentRepository) Update(ctx context.Context, parent *models.Parent) (bool, error) {
	const query = `UPDATE "Parent" SET user_id = $2, no_children = $3 WHERE parent_id = $1`
	res, err := r.db.ExecContext(ctx, query, parent.ID, parent.UserID, parent.NumChildren)
	if err != nil {
		return false, fmt.Errorf("update parent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update parent rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a parent row.
func (r *ParentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM "Parent" WHERE parent_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete parent: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete parent rows affected: %w", err)
	}
	return affected > 0, nil
}

// Exists probes whether a parent row exists.
func (r *ParentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM "Parent" WHERE parent_id = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check parent: %w", err)
	}
	return true, nil
}
