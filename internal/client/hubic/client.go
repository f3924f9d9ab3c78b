package hubic

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/savrasov/hubic-agent/internal/config"
	"github.com/savrasov/hubic-agent/internal/logger"
	http_transport "github.com/savrasov/hubic-agent/internal/transport/http"
	"github.com/savrasov/hubic-agent/internal/utils"
)

// Client defines the interface for authenticating against the hubiC API.
type Client interface {
	// Authenticate performs the full browser-emulating authorization code flow
	// with the given account credentials and returns the resulting token bundle.
	Authenticate(ctx context.Context, login, password string) (*TokenBundle, error)
	// RefreshToken obtains a new access token using a previously issued refresh token.
	RefreshToken(ctx context.Context, refreshToken string) (*TokenBundle, error)
	// GetCredentials fetches delegated storage credentials using a live access token.
	GetCredentials(ctx context.Context, accessToken string) (*StorageCredentials, error)
	// GetBaseURL returns the base URL of the hubiC API.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for the hubiC API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// flowClient is the HTTP client for the multi-step authentication flow.
	// It never follows redirects: the 302 from the access confirmation step
	// must be inspected, not chased.
	flowClient *http.Client
	// credentialsClient is the HTTP client for the storage credentials side call,
	// which runs under a much tighter timeout than the flow.
	credentialsClient *http.Client
	// credentialsCache caches storage credentials per access token
	// to avoid redundant side calls while the credentials are still valid.
	credentialsCache *lru.Cache[string, *StorageCredentials]
}

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the HTTP clients with the provided configuration.
func NewClient(cfg *config.Config) (Client, error) {
	baseURL, err := url.Parse(cfg.HubicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	transport := http_transport.NewUserAgentInjector(
		http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
		utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent))

	flowTimeout := cfg.ParsedFlowTimeout
	if flowTimeout <= 0 {
		flowTimeout = http_transport.DefaultFlowTimeout
	}

	credentialsTimeout := cfg.ParsedCredentialsTimeout
	if credentialsTimeout <= 0 {
		credentialsTimeout = http_transport.DefaultCredentialsTimeout
	}

	flowClient := &http.Client{
		Transport: transport,
		Timeout:   flowTimeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	credentialsClient := &http.Client{
		Transport: transport,
		Timeout:   credentialsTimeout,
	}

	credentialsCache, err := lru.New[string, *StorageCredentials](credentialsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create credentials cache: %w", err)
	}

	client := &ClientImpl{
		cfg:               cfg,
		baseURL:           baseURL.String(),
		flowClient:        flowClient,
		credentialsClient: credentialsClient,
		credentialsCache:  credentialsCache,
	}

	return client, nil
}

// GetBaseURL returns the base URL of the hubiC API.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// GetCredentials fetches delegated storage credentials using a live access token.
// Results are cached per access token until they expire.
func (c *ClientImpl) GetCredentials(ctx context.Context, accessToken string) (*StorageCredentials, error) {
	if cached, ok := c.credentialsCache.Get(accessToken); ok {
		if !storageCredentialsExpired(cached, time.Now()) {
			logger.Debug(ctx, "Storage credentials cache hit")

			return cached, nil
		}

		c.credentialsCache.Remove(accessToken)
	}

	route, err := url.JoinPath(c.baseURL, hubicCredentialsURI)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Authorization", "Bearer "+accessToken)

	response, err := c.credentialsClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var credentials StorageCredentials
	if err = json.NewDecoder(response.Body).Decode(&credentials); err != nil {
		return nil, fmt.Errorf("failed to decode credentials response: %w", err)
	}

	c.credentialsCache.Add(accessToken, &credentials)

	return &credentials, nil
}

// storageCredentialsExpired reports whether the cached credentials are past
// their expiration timestamp. Credentials with an unparsable timestamp are
// treated as expired so a fresh set gets fetched.
func storageCredentialsExpired(credentials *StorageCredentials, now time.Time) bool {
	expires, err := time.Parse(time.RFC3339, credentials.Expires)
	if err != nil {
		return true
	}

	return !now.Before(expires)
}
