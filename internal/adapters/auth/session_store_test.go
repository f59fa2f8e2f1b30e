package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hackverse/internal/domain"
)

func TestFileSessionStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileSessionStore(path, NewJWTInspector())

	sess, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())

	token := sign(t, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Role: "judge"})
	require.NoError(t, store.Save(ctx, &domain.Session{Token: token, RedirectPath: "/judge"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	sess, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, sess.Token)
	assert.Equal(t, "/judge", sess.RedirectPath)
	assert.Equal(t, "judge", sess.Claims.Role)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
	sess, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
}

func TestFileSessionStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err := NewFileSessionStore(path, nil).Load(context.Background())
	assert.Error(t, err)
}
