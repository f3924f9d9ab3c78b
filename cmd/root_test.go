package cmd

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savrasov/hubic-agent/internal/config"
)

func newFlagTestConfig() *config.Config {
	return &config.Config{
		ClientID:           "test_client",
		ClientSecret:       "test_secret",
		RedirectURI:        "http://localhost/",
		Login:              "from-config@example.com",
		Password:           "config-password",
		LogLevel:           "info",
		MaxLogLength:       "1KB",
		FlowTimeout:        "30s",
		CredentialsTimeout: "5s",
		TokenExpirySkew:    "60s",
	}
}

func newCredentialFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("login", "l", "", "")
	flags.StringP("password", "p", "", "")

	return flags
}

func TestBindFlagsToConfig(t *testing.T) {
	tests := []struct {
		name             string
		args             []string
		expectedLogin    string
		expectedPassword string
	}{
		{
			name:             "no flags keeps config values",
			args:             nil,
			expectedLogin:    "from-config@example.com",
			expectedPassword: "config-password",
		},
		{
			name:             "login flag overrides config",
			args:             []string{"--login", "from-flag@example.com"},
			expectedLogin:    "from-flag@example.com",
			expectedPassword: "config-password",
		},
		{
			name:             "both flags override config",
			args:             []string{"-l", "from-flag@example.com", "-p", "flag-password"},
			expectedLogin:    "from-flag@example.com",
			expectedPassword: "flag-password",
		},
		{
			name:             "explicit empty flag wins over config",
			args:             []string{"--password", ""},
			expectedLogin:    "from-config@example.com",
			expectedPassword: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newCredentialFlagSet()
			require.NoError(t, flags.Parse(tt.args))

			cfg := newFlagTestConfig()
			require.NoError(t, bindFlagsToConfig(flags, cfg))

			assert.Equal(t, tt.expectedLogin, cfg.Login)
			assert.Equal(t, tt.expectedPassword, cfg.Password)
			assert.Equal(t, 30*time.Second, cfg.ParsedFlowTimeout)
		})
	}
}

func TestBindFlagsToConfig_InvalidConfig(t *testing.T) {
	flags := newCredentialFlagSet()
	require.NoError(t, flags.Parse(nil))

	cfg := newFlagTestConfig()
	cfg.ClientID = ""

	err := bindFlagsToConfig(flags, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrEmptyClientID)
}
