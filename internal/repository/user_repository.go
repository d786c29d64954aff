package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
)

// UserRepository provides database access for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, "fullName", email, password, "accountType", address, phone_number`

// Create inserts a new user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	const query = `INSERT INTO "User" ("fullName", email, password, "accountType", address, phone_number)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING user_id`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, user.FullName, user.Email, user.Password, user.AccountType, user.Address, user.Phone).Scan(&id); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return id, nil
}

// GetByID returns a user by identifier.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM "User" WHERE user_id = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail returns a user by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM "User" WHERE email = $1 LIMIT 1`, userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

// GetAll returns every user account.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM "User" ORDER BY user_id ASC`, userColumns)
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetByAccountType returns users holding the given role.
func (r *UserRepository) GetByAccountType(ctx context.Context, accountType models.AccountType) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM "User" WHERE "accountType" = $1 ORDER BY user_id ASC`, userColumns)
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, accountType); err != nil {
		return nil, fmt.Errorf("list users by account type: %w", err)
	}
	return users, nil
}

// Update rewrites the mutable fields of a user. The boolean reports whether
// a row was affected.
func (r *UserRepository) Update(ctx context.Context, user *models.User) (bool, error) {
	const query = `UPDATE "User" SET "fullName" = $2, email = $3, password = $4, "accountType" = $5, address = $6, phone_number = $7 WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, query, user.ID, user.FullName, user.Email, user.Password, user.AccountType, user.Address, user.Phone)
	if err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update user rows affected: %w", err)
	}
	return affected > 0, nil
}

// UpdatePassword replaces the stored password secret.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, password string) (bool, error) {
	const query = `UPDATE "User" SET password = $2 WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, query, id, password)
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update password rows affected: %w", err)
	}
	return affected > 0, nil
}

// Delete removes a user row. The boolean reports whether a row was deleted;
// deleting an absent id is false, never an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM "User" WHERE user_id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user rows affected: %w", err)
	}
	return affected > 0, nil
}

// ExistsWithType probes whether a user exists with the given account type.
func (r *UserRepository) ExistsWithType(ctx context.Context, id int64, accountType models.AccountType) (bool, error) {
	const query = `SELECT 1 FROM "User" WHERE user_id = $1 AND "accountType" = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, id, accountType); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check user account type: %w", err)
	}
	return true, nil
}
