package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fightcard/internal/microservices/http-api/models"
	"fightcard/internal/microservices/http-api/repository"
	"fightcard/internal/shared"
	"fightcard/internal/viewer"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionService is the authentication gate: it issues session tokens and
// maps a presented token back to a viewer.
type SessionService interface {
	Issue(ctx context.Context, user *models.User) (string, error)
	Resolve(ctx context.Context, token string) (viewer.Viewer, error)
	Revoke(ctx context.Context, token string) error
}

type sessionService struct {
	store  repository.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(store repository.SessionStore, secret string, ttl time.Duration) SessionService {
	return &sessionService{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue opens a session for user and returns the signed token naming it.
func (s *sessionService) Issue(ctx context.Context, user *models.User) (string, error) {
	sid := uuid.NewString()
	now := s.now()

	claims := shared.SessionClaims{
		Username:  user.Username,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}

	if err := s.store.Save(ctx, sid, user.ID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve never fails for a bad token: missing, malformed, expired or
// revoked tokens all yield the anonymous viewer. Only a session store
// outage is an error.
func (s *sessionService) Resolve(ctx context.Context, token string) (viewer.Viewer, error) {
	if token == "" {
		return viewer.Anonymous, nil
	}

	claims, err := s.parse(token, jwt.WithTimeFunc(s.now))
	if err != nil {
		slog.DebugContext(ctx, "session_token_rejected", "error", err)
		return viewer.Anonymous, nil
	}

	userID, err := s.store.Lookup(ctx, claims.SessionID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return viewer.Anonymous, nil
	case err != nil:
		return viewer.Anonymous, err
	}

	// a session id is only honoured for the user it was issued to
	if userID != claims.Subject {
		return viewer.Anonymous, nil
	}

	return viewer.Viewer{ID: claims.Subject, Username: claims.Username}, nil
}

// Revoke ends the session named by token. Unparseable tokens have nothing
// to revoke.
func (s *sessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	return s.store.Delete(ctx, claims.SessionID)
}

func (s *sessionService) parse(token string, opts ...jwt.ParserOption) (*shared.SessionClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &shared.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.SessionID == "" || claims.Subject == "" {
		return nil, errors.New("incomplete session claims")
	}
	return claims, nil
}
