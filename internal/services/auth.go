package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hackverse/internal/domain"
)

// DefaultRedirect is where a login lands when no protected operation was attempted.
const DefaultRedirect = "/"

// AuthService owns the client session: login completion, logout and the
// guard in front of protected operations.
type AuthService struct {
	store     domain.SessionStore
	inspector domain.TokenInspector
	loginURL  string
	logger    *slog.Logger
	now       func() time.Time
}

// NewAuthService returns an AuthService backed by store.
func NewAuthService(store domain.SessionStore, inspector domain.TokenInspector, loginURL string, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:     store,
		inspector: inspector,
		loginURL:  loginURL,
		logger:    logger,
		now:       time.Now,
	}
}

// LoginURL is the address that starts the browser sign-in.
func (s *AuthService) LoginURL() string {
	return s.loginURL
}

// Session loads the current session, which may be anonymous.
func (s *AuthService) Session(ctx context.Context) (*domain.Session, error) {
	return s.store.Load(ctx)
}

// Require returns the session when it holds a live token. Otherwise attempted is
// stored as the redirect hint and ErrUnauthorized is returned.
func (s *AuthService) Require(ctx context.Context, attempted string) (*domain.Session, error) {
	sess, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Authenticated() && !sess.Claims.Expired(s.now()) {
		return sess, nil
	}
	if err := s.remember(ctx, sess, attempted); err != nil {
		return nil, err
	}
	s.logger.Info("login required", "attempted", attempted)
	return nil, fmt.Errorf("%s: %w", attempted, domain.ErrUnauthorized)
}

// Expire drops the token after the server rejected it and keeps attempted as
// the redirect hint.
func (s *AuthService) Expire(ctx context.Context, attempted string) error {
	sess, err := s.store.Load(ctx)
	if err != nil {
		sess = &domain.Session{}
	}
	s.logger.Info("session expired", "attempted", attempted)
	return s.remember(ctx, sess, attempted)
}

// ExpireOnRejection calls Expire when err is the server refusing the token.
func (s *AuthService) ExpireOnRejection(ctx context.Context, err error, attempted string) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || !errors.Is(apiErr, domain.ErrUnauthorized) {
		return
	}
	if err := s.Expire(ctx, attempted); err != nil {
		s.logger.Warn("failed to clear expired session", "error", err)
	}
}

func (s *AuthService) remember(ctx context.Context, sess *domain.Session, attempted string) error {
	sess.Token = ""
	sess.Claims = domain.Claims{}
	sess.RedirectPath = attempted
	if err := s.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to store redirect hint: %w", err)
	}
	return nil
}

// CompleteLogin stores the token delivered to the login callback and returns
// the redirect hint, which is consumed.
func (s *AuthService) CompleteLogin(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("no token in login callback: %w", domain.ErrUnauthorized)
	}
	sess, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("discarding unreadable session", "error", err)
		sess = &domain.Session{}
	}
	redirect := sess.TakeRedirect()
	if redirect == "" {
		redirect = DefaultRedirect
	}

	sess.Token = token
	sess.Claims = domain.Claims{}
	if s.inspector != nil {
		claims, err := s.inspector.Inspect(token)
		if err != nil {
			s.logger.Warn("token claims unreadable", "error", err)
		} else {
			sess.Claims = claims
		}
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	s.logger.Info("login completed", "subject", sess.Claims.Subject, "role", sess.Claims.Role)
	return redirect, nil
}

// Logout forgets the session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("logged out")
	return nil
}
