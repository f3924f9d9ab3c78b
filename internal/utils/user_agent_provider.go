package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent string for outgoing HTTP requests.
type UserAgentProvider interface {
	// GetUserAgent returns the User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider serves a fixed User-Agent string.
type SimpleUserAgentProvider struct {
	userAgent string
}

// NewSimpleUserAgentProvider creates a provider that always returns the given string.
func NewSimpleUserAgentProvider(userAgent string) *SimpleUserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns the User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
