package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/filipR1624/sms-s2-project-sub000/internal/models"
	appErrors "github.com/filipR1624/sms-s2-project-sub000/pkg/errors"
	"github.com/filipR1624/sms-s2-project-sub000/pkg/metrics"
)

type authUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, password string) (bool, error)
}

// AuthConfig defines configuration for authentication flows.
type AuthConfig struct {
	BcryptCost        int
	MinPasswordLength int
	JWTSecret         string
	JWTExpiration     time.Duration
	JWTIssuer         string
}

// AuthService verifies credentials against stored secrets and migrates
// legacy plaintext passwords to bcrypt on first successful login.
type AuthService struct {
	repo      authUserRepository
	validator *validator.Validate
	logger    *zap.Logger
	recorder  *metrics.Recorder
	config    AuthConfig
}

// NewAuthService constructs an AuthService instance. recorder may be nil.
func NewAuthService(repo authUserRepository, validate *validator.Validate, logger *zap.Logger, recorder *metrics.Recorder, config AuthConfig) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	if config.MinPasswordLength == 0 {
		config.MinPasswordLength = 8
	}
	return &AuthService{repo: repo, validator: validate, logger: logger, recorder: recorder, config: config}
}

// Authenticate verifies an email/password pair and returns the matching
// user. Unknown email and wrong password are indistinguishable to the
// caller; internally they are logged apart. A legacy plaintext credential
// that matches is rehashed and persisted best-effort: a failed upgrade is
// logged and the login still succeeds.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("login rejected: unknown email", zap.String("email", email))
			s.recorder.ObserveLogin("unknown_email")
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
		s.recorder.ObserveLogin("error")
		return nil, appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to fetch user")
	}

	credential := models.ParseCredential(user.Password)
	switch credential.Kind {
	case models.CredentialBcrypt:
		if err := bcrypt.CompareHashAndPassword([]byte(credential.Secret), []byte(password)); err != nil {
			s.logger.Debug("login rejected: wrong password", zap.Int64("user_id", user.ID))
			s.recorder.ObserveLogin("wrong_password")
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
	case models.CredentialLegacy:
		if subtle.ConstantTimeCompare([]byte(credential.Secret), []byte(password)) != 1 {
			s.logger.Debug("login rejected: wrong password", zap.Int64("user_id", user.ID))
			s.recorder.ObserveLogin("wrong_password")
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid email or password")
		}
		s.upgradeLegacyPassword(ctx, user, password)
	}

	s.recorder.ObserveLogin("success")
	return user, nil
}

// upgradeLegacyPassword rehashes a matched plaintext credential. Failure
// leaves the plaintext in place for the next login to retry.
func (s *AuthService) upgradeLegacyPassword(ctx context.Context, user *models.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		s.logger.Warn("failed to hash legacy password", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}
	if _, err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		s.logger.Warn("failed to persist migrated password", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}
	user.Password = string(hash)
	s.recorder.ObservePasswordUpgrade()
	s.logger.Info("legacy password migrated", zap.Int64("user_id", user.ID))
}

// Login authenticates and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.JWTExpiration)
	claims := &models.JWTClaims{
		UserID:      user.ID,
		Email:       user.Email,
		AccountType: user.AccountType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.config.JWTIssuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign access token")
	}

	return &models.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.config.JWTExpiration.Seconds()),
		IssuedAt:    issuedAt,
		User: models.UserInfo{
			ID:          user.ID,
			Email:       user.Email,
			FullName:    user.FullName,
			AccountType: user.AccountType,
		},
	}, nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unexpected signing method")
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidCredentials.Code, appErrors.ErrInvalidCredentials.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid token claims")
	}

	return claims, nil
}

// ChangePassword replaces a user's password after checking the current one
// against the stored secret, hash or legacy. The new password must meet the
// minimum length and match its confirmation.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid change password payload")
	}
	if len(req.NewPassword) < s.config.MinPasswordLength {
		return appErrors.Clone(appErrors.ErrValidation, "new password is too short")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to load user")
	}

	credential := models.ParseCredential(user.Password)
	switch credential.Kind {
	case models.CredentialBcrypt:
		if err := bcrypt.CompareHashAndPassword([]byte(credential.Secret), []byte(req.CurrentPassword)); err != nil {
			return appErrors.Clone(appErrors.ErrValidation, "current password does not match")
		}
	case models.CredentialLegacy:
		if subtle.ConstantTimeCompare([]byte(credential.Secret), []byte(req.CurrentPassword)) != 1 {
			return appErrors.Clone(appErrors.ErrValidation, "current password does not match")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.config.BcryptCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	updated, err := s.repo.UpdatePassword(ctx, userID, string(hash))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, "failed to update password")
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	return nil
}
