// Package session keeps the bearer token issued by the FoodHub backend.
//
// At most one token exists per device. It is overwritten after every
// successful authentication and read at start-up to decide whether the user
// is already signed in. Nothing else about the user is persisted.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/foodhub/internal/common"
)

const tokenKey = "token"

// ErrNoSession is returned by Token when no token has been stored.
var ErrNoSession = errors.New("no session")

type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// StoreToken replaces the saved token.
func (s *Store) StoreToken(ctx context.Context, token string) error {
	if err := s.repo.Put(ctx, tokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *Store) entry(ctx context.Context) (metadata.Entry, error) {
	e, err := s.repo.Lookup(ctx, tokenKey)
	if errors.Is(err, common.ErrNotFound) {
		return metadata.Entry{}, ErrNoSession
	}
	if err != nil {
		return metadata.Entry{}, fmt.Errorf("read token: %w", err)
	}
	if e.Value == "" {
		return metadata.Entry{}, ErrNoSession
	}
	return e, nil
}

// Token returns the saved token or ErrNoSession.
func (s *Store) Token(ctx context.Context) (string, error) {
	e, err := s.entry(ctx)
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

// SavedAt returns when the current token was stored.
func (s *Store) SavedAt(ctx context.Context) (time.Time, error) {
	e, err := s.entry(ctx)
	if err != nil {
		return time.Time{}, err
	}
	return e.UpdatedAt, nil
}

// LoggedIn reports whether a token is present. Read errors count as signed out.
func (s *Store) LoggedIn(ctx context.Context) bool {
	_, err := s.Token(ctx)
	return err == nil
}

// Clear forgets the saved token. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.repo.Remove(ctx, tokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
