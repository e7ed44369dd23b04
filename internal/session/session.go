// Package session holds the current bearer credential for the API client.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// StorageKey is the fixed key the credential is persisted under
const StorageKey = "access_token"

// Storage persists the credential across runs
type Storage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Session is the process-wide source of truth for the current credential.
// It caches the token in memory and mirrors every change to durable storage.
type Session struct {
	mu      sync.Mutex
	storage Storage
	token   string
	loaded  bool
}

// New creates a session backed by the given storage. Nothing is read until
// Init or the first call to Token.
func New(storage Storage) *Session {
	return &Session{storage: storage}
}

// Init eagerly loads the credential from storage
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	s.token = token
	s.loaded = true
	return nil
}

// Token returns the in-memory credential, reading durable storage at most once
// when the cache is empty. Storage errors are logged and treated as no token.
func (s *Session) Token(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" || s.loaded {
		return s.token
	}

	s.loaded = true
	token, err := s.storage.Load(ctx)
	if err != nil {
		slog.Error("failed to read stored token", "error", err)
		return ""
	}
	s.token = token
	return s.token
}

// Set replaces the credential. An empty token clears it.
func (s *Session) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.loaded = true

	if token == "" {
		if err := s.storage.Delete(ctx); err != nil {
			return fmt.Errorf("failed to clear stored token: %w", err)
		}
		return nil
	}
	if err := s.storage.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	return nil
}

// Clear forgets the credential in memory and in storage
func (s *Session) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

// LoggedIn reports whether a credential is available
func (s *Session) LoggedIn(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// Claims decodes the stored JWT without verifying its signature.
// Expiry is reported but never enforced here.
func (s *Session) Claims(ctx context.Context) (*jwt.RegisteredClaims, error) {
	token := s.Token(ctx)
	if token == "" {
		return nil, ErrNoToken
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}
