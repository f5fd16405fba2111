package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"fightcard/internal/microservices/http-api/middleware/auth"
	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/microservices/http-api/repository"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password; callers cannot tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 8
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, v viewer.Viewer) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	sessions SessionService
}

func NewAuthService(userRepo repository.UserRepository, sessions SessionService) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates an account and opens a session for it. A taken username
// surfaces as shared.ErrConflict from the unique index. The account is kept
// when the session cannot be opened; the token is then empty and the caller
// logs in later.
func (s *authService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, "", fmt.Errorf("username must be %d to %d characters: %w", minUsernameLen, maxUsernameLen, shared.ErrInvalidArgument)
	}
	if len(password) < minPasswordLen {
		return nil, "", fmt.Errorf("password must be at least %d characters: %w", minPasswordLen, shared.ErrInvalidArgument)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}
	slog.InfoContext(ctx, "user_registered", "user_id", user.ID, "username", user.Username)

	token, err := s.sessions.Issue(ctx, user)
	if err != nil {
		slog.WarnContext(ctx, "register_session_not_issued", "user_id", user.ID, "error", err)
		return user, "", nil
	}
	return user, token, nil
}

// Login authenticates a user and opens a new session.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			auth.BurnPassword(password)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// Me loads the account behind an authenticated viewer.
func (s *authService) Me(ctx context.Context, v viewer.Viewer) (*models.User, error) {
	if err := viewer.Require(v); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, v.ID)
}
