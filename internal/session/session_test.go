package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LazyLoadsOnce(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage("stored-token")
	s := New(storage)

	assert.Equal(t, 0, storage.Loads(), "nothing is read before first use")
	assert.Equal(t, "stored-token", s.Token(ctx))
	assert.Equal(t, "stored-token", s.Token(ctx))
	assert.Equal(t, 1, storage.Loads())
}

func TestSession_EmptyStorageReadOnce(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage("")
	s := New(storage)

	assert.Empty(t, s.Token(ctx))
	assert.Empty(t, s.Token(ctx))
	assert.Equal(t, 1, storage.Loads())
	assert.False(t, s.LoggedIn(ctx))
}

func TestSession_SetPersistsAndClears(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage("")
	s := New(storage)

	require.NoError(t, s.Set(ctx, "abc"))
	assert.Equal(t, "abc", s.Token(ctx))

	persisted, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", persisted)

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.Token(ctx))
	persisted, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestSession_SetWinsOverLazyLoad(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage("old")
	s := New(storage)

	require.NoError(t, s.Set(ctx, "new"))
	assert.Equal(t, "new", s.Token(ctx))
	assert.Equal(t, 0, storage.Loads())
}

func TestSession_Claims(t *testing.T) {
	ctx := context.Background()
	issued := time.Now().Add(-time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "42",
		IssuedAt: jwt.NewNumericDate(issued),
	}).SignedString([]byte("unknown-to-client"))
	require.NoError(t, err)

	s := New(NewMemoryStorage(token))
	claims, err := s.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.IssuedAt.Time.Equal(issued))
}

func TestSession_ClaimsErrors(t *testing.T) {
	ctx := context.Background()

	_, err := New(NewMemoryStorage("")).Claims(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = New(NewMemoryStorage("not-a-jwt")).Claims(ctx)
	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestSQLiteStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	storage, err := OpenSQLite(ctx, path)
	require.NoError(t, err)

	token, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, storage.Save(ctx, "first"))
	require.NoError(t, storage.Save(ctx, "second"))
	require.NoError(t, storage.Close())

	// Reopen to prove durability
	reopened, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	s := New(reopened)
	require.NoError(t, s.Init(ctx))
	assert.Equal(t, "second", s.Token(ctx))

	require.NoError(t, s.Clear(ctx))
	token, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}
