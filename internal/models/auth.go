package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries end-user credentials into the auth service.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        UserInfo  `json:"user"`
}

// UserInfo is the caller-facing projection of an authenticated user.
type UserInfo struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	FullName    string      `json:"full_name"`
	AccountType AccountType `json:"account_type"`
}

// ChangePasswordRequest carries a password change payload. Confirmation must
// repeat the new password exactly.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// JWTClaims are the registered plus custom claims embedded in access tokens.
type JWTClaims struct {
	UserID      int64       `json:"uid"`
	Email       string      `json:"email"`
	AccountType AccountType `json:"account_type"`
	jwt.RegisteredClaims
}
