// Package auth resolves an opaque session token into an authenticated user
// identifier. The engine trusts the resolved identifier; how sessions are
// created belongs to the identity provider, not here.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrSessionNotFound indicates the session token is missing, expired, or
// unknown.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore looks up the user a session token belongs to.
type SessionStore interface {
	UserBySession(ctx context.Context, sessionToken string) (string, error)
}

// Service authenticates requests against the session store.
type Service struct {
	store SessionStore
}

// New creates an authentication Service backed by the given store.
func New(store SessionStore) *Service {
	return &Service{
		store: store,
	}
}

// Authenticate resolves sessionToken into a user id. An empty token fails
// without touching the store.
func (s *Service) Authenticate(ctx context.Context, sessionToken string) (string, error) {
	if sessionToken == "" {
		return "", fmt.Errorf("%w: empty session token", ErrSessionNotFound)
	}

	return s.store.UserBySession(ctx, sessionToken)
}
