package auth

import (
	"context"
	"sync"
	"time"
)

// Token is a live access/refresh token pair together with the moment it was
// obtained, which is what expiry math needs.
type Token struct {
	// AccessToken is the short-lived credential used to call protected endpoints.
	AccessToken string
	// RefreshToken is the long-lived credential used to obtain new access tokens.
	RefreshToken string
	// ObtainedAt is when the bundle was issued.
	ObtainedAt time.Time
	// ExpiresIn is the access token lifetime.
	ExpiresIn time.Duration
}

// ExpiresAt returns the moment the access token expires.
func (t *Token) ExpiresAt() time.Time {
	return t.ObtainedAt.Add(t.ExpiresIn)
}

// ExpiresWithin reports whether the access token expires within the given margin.
func (t *Token) ExpiresWithin(margin time.Duration) bool {
	return !time.Now().Add(margin).Before(t.ExpiresAt())
}

// TokenStore holds the current token for a single account.
// Implementations must be safe for concurrent use.
// The store is passed explicitly to every consumer that needs current
// credentials; there is no process-wide singleton.
type TokenStore interface {
	// Get returns the currently stored token, if any.
	Get(ctx context.Context) (*Token, bool)
	// Set replaces the currently stored token.
	Set(ctx context.Context, token *Token)
}

// MemoryTokenStore is an in-memory TokenStore.
// Tokens are not persisted across restarts.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewMemoryTokenStore creates an empty in-memory token store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Get returns the currently stored token, if any.
func (s *MemoryTokenStore) Get(_ context.Context) (*Token, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil, false
	}

	return s.token, true
}

// Set replaces the currently stored token.
func (s *MemoryTokenStore) Set(_ context.Context, token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}
