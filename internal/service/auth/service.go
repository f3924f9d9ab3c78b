package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/savrasov/hubic-agent/internal/client/hubic"
	"github.com/savrasov/hubic-agent/internal/config"
	"github.com/savrasov/hubic-agent/internal/logger"
)

// Static error definitions for better error handling.
var (
	// ErrMissingLogin indicates the account login is not configured.
	ErrMissingLogin = errors.New("login is not configured")
	// ErrMissingPassword indicates the account password is not configured.
	ErrMissingPassword = errors.New("password is not configured")
	// ErrNotAuthenticated indicates no token is held and no refresh token is available.
	ErrNotAuthenticated = errors.New("not authenticated and no refresh token available")
)

// Service holds the current hubiC token and keeps it fresh.
type Service interface {
	// Login runs the full authentication flow with the configured account
	// credentials and stores the resulting token.
	Login(ctx context.Context) (*Token, error)
	// AccessToken returns a currently valid access token,
	// transparently refreshing it when it is about to expire.
	AccessToken(ctx context.Context) (string, error)
	// StorageCredentials fetches delegated storage credentials with a live access token.
	StorageCredentials(ctx context.Context) (*hubic.StorageCredentials, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	cfg    *config.Config
	client hubic.Client
	store  TokenStore
	// refreshMu serializes refreshes so concurrent callers don't race
	// to redeem the same refresh token.
	refreshMu sync.Mutex
}

// NewService creates a new token service backed by the given client and store.
func NewService(cfg *config.Config, client hubic.Client, store TokenStore) *ServiceImpl {
	return &ServiceImpl{
		cfg:    cfg,
		client: client,
		store:  store,
	}
}

// Login runs the full authentication flow with the configured account
// credentials and stores the resulting token.
func (s *ServiceImpl) Login(ctx context.Context) (*Token, error) {
	if s.cfg.Login == "" {
		return nil, ErrMissingLogin
	}

	if s.cfg.Password == "" {
		return nil, ErrMissingPassword
	}

	bundle, err := s.client.Authenticate(ctx, s.cfg.Login, s.cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	token := tokenFromBundle(bundle, time.Now())
	s.store.Set(ctx, token)

	logger.InfoKV(ctx, "Authenticated successfully", "expires_at", token.ExpiresAt())

	return token, nil
}

// AccessToken returns a currently valid access token,
// transparently refreshing it when it is about to expire.
func (s *ServiceImpl) AccessToken(ctx context.Context) (string, error) {
	if token, ok := s.store.Get(ctx); ok && !token.ExpiresWithin(s.cfg.ParsedTokenExpirySkew) {
		return token.AccessToken, nil
	}

	token, err := s.refresh(ctx)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

// StorageCredentials fetches delegated storage credentials with a live access token.
func (s *ServiceImpl) StorageCredentials(ctx context.Context) (*hubic.StorageCredentials, error) {
	accessToken, err := s.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	credentials, err := s.client.GetCredentials(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch storage credentials: %w", err)
	}

	return credentials, nil
}

// refresh obtains a fresh access token using the stored refresh token,
// falling back to the configured one when the store is empty.
func (s *ServiceImpl) refresh(ctx context.Context) (*Token, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Another caller may have refreshed while we waited for the lock.
	if token, ok := s.store.Get(ctx); ok && !token.ExpiresWithin(s.cfg.ParsedTokenExpirySkew) {
		return token, nil
	}

	refreshToken := s.cfg.RefreshToken
	if token, ok := s.store.Get(ctx); ok && token.RefreshToken != "" {
		refreshToken = token.RefreshToken
	}

	if refreshToken == "" {
		return nil, ErrNotAuthenticated
	}

	logger.Debug(ctx, "Refreshing access token")

	bundle, err := s.client.RefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %w", err)
	}

	token := tokenFromBundle(bundle, time.Now())

	// A refresh response carries no new refresh token; keep using the old one.
	if token.RefreshToken == "" {
		token.RefreshToken = refreshToken
	}

	s.store.Set(ctx, token)

	return token, nil
}

// tokenFromBundle converts a client token bundle into a stored token.
func tokenFromBundle(bundle *hubic.TokenBundle, obtainedAt time.Time) *Token {
	return &Token{
		AccessToken:  bundle.AccessToken,
		RefreshToken: bundle.RefreshToken,
		ObtainedAt:   obtainedAt,
		ExpiresIn:    time.Duration(bundle.ExpiresIn) * time.Second,
	}
}
