package domain

import (
	"context"
	"time"
)

// Session is the authenticated state of the client, passed explicitly to the
// operations that need it.
type Session struct {
	Token        string `json:"token"`
	RedirectPath string `json:"redirectPath,omitempty"`
	Claims       Claims `json:"-"`
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// TakeRedirect returns the redirect hint and clears it; a hint is used once.
func (s *Session) TakeRedirect() string {
	path := s.RedirectPath
	s.RedirectPath = ""
	return path
}

// Claims is what the client can read from the session token without verifying it.
type Claims struct {
	Subject   string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the claims carry an expiry that lies before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// SessionStore persists the session between command invocations.
type SessionStore interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context) error
}

// TokenInspector extracts claims from a session token.
type TokenInspector interface {
	Inspect(token string) (Claims, error)
}
