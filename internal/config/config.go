package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/savrasov/hubic-agent/internal/constants"
	"github.com/savrasov/hubic-agent/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// ClientID is the OAuth2 application identifier registered with hubiC.
	ClientID string `mapstructure:"client_id"`
	// ClientSecret is the OAuth2 application secret registered with hubiC.
	ClientSecret string `mapstructure:"client_secret"`
	// RedirectURI is the redirect URL registered for the OAuth2 application.
	RedirectURI string `mapstructure:"redirect_uri"`
	// Login is the hubiC account login (e-mail address).
	Login string `mapstructure:"login"`
	// Password is the hubiC account password.
	Password string `mapstructure:"password"`
	// RefreshToken is the long-lived token saved after a successful login.
	RefreshToken string `mapstructure:"refresh_token"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// MaxLogLength sets the maximum size of HTTP dumps in debug logs (e.g., "1MB", "64KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// FlowTimeout is the timeout for each request of the authentication flow (e.g., "30s").
	FlowTimeout string `mapstructure:"flow_timeout"`
	// CredentialsTimeout is the timeout for the storage credentials side call (e.g., "5s").
	CredentialsTimeout string `mapstructure:"credentials_timeout"`
	// TokenExpirySkew is how long before expiry an access token is refreshed (e.g., "60s").
	TokenExpirySkew string `mapstructure:"token_expiry_skew"`
	// HubicBaseURL is the base URL for the hubiC API (set automatically).
	HubicBaseURL string
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed maximum HTTP dump size in bytes.
	ParsedMaxLogLength uint64
	// ParsedFlowTimeout is the parsed authentication flow timeout.
	ParsedFlowTimeout time.Duration
	// ParsedCredentialsTimeout is the parsed credentials call timeout.
	ParsedCredentialsTimeout time.Duration
	// ParsedTokenExpirySkew is the parsed token expiry skew.
	ParsedTokenExpirySkew time.Duration
}

const (
	// HubicBaseURL is the base URL for the hubiC API.
	HubicBaseURL = "https://api.hubic.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".hubic-agent.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for HTTP dumps in debug logs.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultFlowTimeout is the default timeout for authentication flow requests.
	DefaultFlowTimeout = 30 * time.Second

	// DefaultCredentialsTimeout is the default timeout for the credentials side call.
	DefaultCredentialsTimeout = 5 * time.Second

	// DefaultTokenExpirySkew is the default margin before expiry at which tokens are refreshed.
	DefaultTokenExpirySkew = 60 * time.Second
)

// Static error definitions for better error handling.
var (
	// ErrEmptyClientID indicates that the OAuth2 client ID is missing.
	ErrEmptyClientID = errors.New("client_id cannot be empty")
	// ErrEmptyClientSecret indicates that the OAuth2 client secret is missing.
	ErrEmptyClientSecret = errors.New("client_secret cannot be empty")
	// ErrEmptyRedirectURI indicates that the OAuth2 redirect URI is missing.
	ErrEmptyRedirectURI = errors.New("redirect_uri cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidFlowTimeout indicates that the flow timeout setting is invalid.
	ErrInvalidFlowTimeout = errors.New("flow_timeout must be positive")
	// ErrInvalidCredentialsTimeout indicates that the credentials timeout setting is invalid.
	ErrInvalidCredentialsTimeout = errors.New("credentials_timeout must be positive")
	// ErrInvalidTokenExpirySkew indicates that the token expiry skew setting is invalid.
	ErrInvalidTokenExpirySkew = errors.New("token_expiry_skew must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.ClientID) == "" {
		return ErrEmptyClientID
	}

	if strings.TrimSpace(cfg.ClientSecret) == "" {
		return ErrEmptyClientSecret
	}

	if strings.TrimSpace(cfg.RedirectURI) == "" {
		return ErrEmptyRedirectURI
	}

	cfg.HubicBaseURL = HubicBaseURL

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength == "" || maxLogLength == "0" {
		cfg.ParsedMaxLogLength = DefaultMaxLogLength
	} else {
		parsedMaxLogLength, err := humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}

		cfg.ParsedMaxLogLength = parsedMaxLogLength
	}

	var err error

	cfg.ParsedFlowTimeout, err = parseDurationSetting(cfg.FlowTimeout, DefaultFlowTimeout, ErrInvalidFlowTimeout)
	if err != nil {
		return err
	}

	cfg.ParsedCredentialsTimeout, err = parseDurationSetting(
		cfg.CredentialsTimeout,
		DefaultCredentialsTimeout,
		ErrInvalidCredentialsTimeout,
	)
	if err != nil {
		return err
	}

	cfg.ParsedTokenExpirySkew, err = parseDurationSetting(
		cfg.TokenExpirySkew,
		DefaultTokenExpirySkew,
		ErrInvalidTokenExpirySkew,
	)
	if err != nil {
		return err
	}

	return nil
}

// parseDurationSetting parses an optional duration setting,
// falling back to the given default when the setting is empty.
func parseDurationSetting(value string, fallback time.Duration, invalidErr error) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	if parsed <= 0 {
		return 0, invalidErr
	}

	return parsed, nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
// Only the refresh token is persisted; access tokens are short-lived and kept in memory.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.RefreshToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the refresh_token value in the node tree.
	updateRefreshTokenInNode(&node, cfg.RefreshToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, refreshToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("refresh_token", refreshToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateRefreshTokenInNode updates the refresh_token value in the YAML node tree.
// A missing key is appended at the end of the document.
func updateRefreshTokenInNode(node *yaml.Node, refreshToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "refresh_token" {
			// Update the value while preserving style.
			valueNode.Value = refreshToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			return
		}
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: "refresh_token",
		},
		&yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: refreshToken,
			Style: yaml.DoubleQuotedStyle,
		})
}
