package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/models"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, name *string, passwordHash string, isAdmin bool) (*models.UserDB, error)
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, identity models.Identity) (string, error)
}

// TokenRevoker defines an interface for revoking access tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	tokens      TokenGenerator
	revoker     TokenRevoker
	adminEmails map[string]struct{}
}

// NewAuthService creates a new AuthService instance.
// Users registering with one of adminEmails get the admin capability.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, revoker TokenRevoker, adminEmails []string) *AuthService {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[normalizeEmail(email)] = struct{}{}
	}

	return &AuthService{
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		revoker:     revoker,
		adminEmails: admins,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user.
func (svc *AuthService) Register(ctx context.Context, email, password string, name *string) (*models.UserDB, error) {
	email = normalizeEmail(email)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	_, isAdmin := svc.adminEmails[email]

	user, err := svc.writer.Save(ctx, email, name, string(hashedPassword), isAdmin)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			logger.Log.Errorw("user already exists", "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns a signed access token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("user does not exist", "email", email)
			return "", ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, models.Identity{
		UserID:  user.UserID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token the caller authenticated with until it expires.
func (svc *AuthService) Logout(ctx context.Context, caller *models.Identity) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	if err := svc.revoker.Revoke(ctx, caller.TokenID, time.Until(caller.TokenExpiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke token", "userID", caller.UserID, "err", err)
		return err
	}

	return nil
}
