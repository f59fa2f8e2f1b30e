package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

func TestAuthService_RequireWithoutTokenStoresRedirect(t *testing.T) {
	auth, store := newAuth("")

	_, err := auth.Require(context.Background(), "register 7")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "register 7", store.sess.RedirectPath)
}

func TestAuthService_RequireExpiredClaims(t *testing.T) {
	auth, store := newAuth("tok")
	store.sess.Claims = domain.Claims{ExpiresAt: time.Date(2024, 4, 19, 0, 0, 0, 0, time.UTC)}

	_, err := auth.Require(context.Background(), "host")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, store.sess.Token)
}

func TestAuthService_CompleteLoginConsumesRedirect(t *testing.T) {
	ctx := context.Background()
	auth, store := newAuth("")
	_, _ = auth.Require(ctx, "judge 3")

	redirect, err := auth.CompleteLogin(ctx, " jwt-token ")
	require.NoError(t, err)
	assert.Equal(t, "judge 3", redirect)
	assert.Equal(t, "jwt-token", store.sess.Token)
	assert.Empty(t, store.sess.RedirectPath)
	assert.Equal(t, "organizer", store.sess.Claims.Role)

	sess, err := auth.Require(ctx, "host")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", sess.Token)

	redirect, err = auth.CompleteLogin(ctx, "jwt-2")
	require.NoError(t, err)
	assert.Equal(t, DefaultRedirect, redirect, "hint is used once")
}

func TestAuthService_CompleteLoginWithoutToken(t *testing.T) {
	auth, _ := newAuth("")
	_, err := auth.CompleteLogin(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Logout(t *testing.T) {
	auth, store := newAuth("tok")
	require.NoError(t, auth.Logout(context.Background()))
	assert.Equal(t, domain.Session{}, store.sess)
}

func TestAuthService_ExpireOnRejection(t *testing.T) {
	ctx := context.Background()
	auth, store := newAuth("tok")

	auth.ExpireOnRejection(ctx, &domain.APIError{Status: 500}, "host")
	assert.Equal(t, "tok", store.sess.Token)

	auth.ExpireOnRejection(ctx, &domain.APIError{Status: 401}, "host")
	assert.Empty(t, store.sess.Token)
	assert.Equal(t, "host", store.sess.RedirectPath)
}
