package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/foodhub/internal/client/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(metadata.NewSQLiteRepository(db))
}

type failingRepo struct{ err error }

func (f failingRepo) Lookup(context.Context, string) (metadata.Entry, error) {
	return metadata.Entry{}, f.err
}

func (f failingRepo) Put(context.Context, string, string) error    { return f.err }
func (f failingRepo) Remove(context.Context, string) (bool, error) { return false, f.err }

func TestStore_EmptyHasNoSession(t *testing.T) {
	s := newStore(t)

	_, err := s.Token(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
	assert.False(t, s.LoggedIn(context.Background()))
}

func TestStore_StoreOverwritesToken(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, "first"))
	require.NoError(t, s.StoreToken(ctx, "second"))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
	assert.True(t, s.LoggedIn(ctx))
}

func TestStore_Clear(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, "tok"))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Clear(ctx), "clearing twice is fine")
}

func TestStore_SavedAt(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	_, err := s.SavedAt(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	before := time.Now().Add(-time.Second)
	require.NoError(t, s.StoreToken(ctx, "tok"))

	at, err := s.SavedAt(ctx)
	require.NoError(t, err)
	assert.False(t, at.Before(before.Truncate(time.Second)))
	assert.False(t, at.After(time.Now().Add(time.Second)))
}

func TestStore_EmptyTokenIsNoSession(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.StoreToken(ctx, ""))
	assert.False(t, s.LoggedIn(ctx))
}

func TestStore_RepoErrorsWrapped(t *testing.T) {
	boom := errors.New("disk gone")
	s := NewStore(failingRepo{err: boom})
	ctx := context.Background()

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrNoSession)

	_, err = s.SavedAt(ctx)
	require.ErrorIs(t, err, boom)

	require.ErrorIs(t, s.StoreToken(ctx, "x"), boom)
	require.ErrorIs(t, s.Clear(ctx), boom)
	assert.False(t, s.LoggedIn(ctx))
}

func TestDescribe_JWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "foodhub",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("whatever"))
	require.NoError(t, err)

	info := Describe(tok)
	assert.False(t, info.Opaque)
	assert.Equal(t, "user-1", info.Subject)
	assert.Equal(t, "foodhub", info.Issuer)
	assert.True(t, exp.Equal(info.ExpiresAt))
	assert.False(t, info.Expired(time.Now()))
	assert.True(t, info.Expired(exp.Add(time.Minute)))
}

func TestDescribe_Opaque(t *testing.T) {
	info := Describe("not-a-jwt")
	assert.True(t, info.Opaque)
	assert.False(t, info.Expired(time.Now()))
}
