package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"hackverse/internal/domain"
)

// jwtClaims mirrors the claims the platform puts in its session tokens. Role may
// come as a single "role" or a "roles" list.
type jwtClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email"`
	Role  string   `json:"role"`
	Roles []string `json:"roles"`
}

type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector returns a TokenInspector that reads JWT claims without
// verifying the signature. The client has no signing key; the server remains the
// authority and rejects bad tokens with 401.
func NewJWTInspector() domain.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

func (i *jwtInspector) Inspect(token string) (domain.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Claims{}, fmt.Errorf("empty token: %w", domain.ErrUnauthorized)
	}
	var claims jwtClaims
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return domain.Claims{}, fmt.Errorf("failed to parse token: %w", err)
	}
	out := domain.Claims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}
	if out.Role == "" && len(claims.Roles) > 0 {
		out.Role = claims.Roles[0]
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
