package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// RegistrationRepository executes multi-statement creation flows that must
// commit or roll back as one unit.
type RegistrationRepository struct {
	db *sqlx.DB
}

// NewRegistrationRepository constructs a RegistrationRepository.
func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// CreateParentWithUser inserts a user and its parent profile in a single
// transaction. The user insert must not survive a parent insert failure, so
// any error after Begin rolls the whole flow back and the originating error
// is returned unchanged to the caller.
func (r *RegistrationRepository) CreateParentWithUser(ctx context.Context, user *models.User, parent *models.Parent) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registration transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertUser = `INSERT INTO "User" ("fullName", email, password, "accountType", address, phone_number)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING user_id`
	var userID int64
	if err = tx.QueryRowContext(ctx, insertUser, user.FullName, user.Email, user.Password, user.AccountType, user.Address, user.Phone).Scan(&userID); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = userID
	parent.UserID = userID

	const insertParent = `INSERT INTO "Parent" (user_id, no_children) VALUES ($1, $2) RETURNING parent_id`
	var parentID int64
	if err = tx.QueryRowContext(ctx, insertParent, parent.UserID, parent.NumChildren).Scan(&parentID); err != nil {
		return fmt.Errorf("create parent: %w", err)
	}
	parent.ID = parentID

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit registration: %w", err)
	}
	return nil
}
