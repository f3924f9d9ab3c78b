package app

import (
	"context"

	hubic_client "github.com/savrasov/hubic-agent/internal/client/hubic"
	"github.com/savrasov/hubic-agent/internal/config"
	"github.com/savrasov/hubic-agent/internal/logger"
	auth_service "github.com/savrasov/hubic-agent/internal/service/auth"
)

// ExecuteAuthLoginCommand executes the auth login command.
// It runs the full authentication flow with the configured account
// credentials and saves the resulting refresh token to the configuration file.
func ExecuteAuthLoginCommand(ctx context.Context, cfg *config.Config) {
	logger.Info(ctx, "Starting authentication process")

	client, err := hubic_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize hubiC client: %v", err)
		return
	}

	service := auth_service.NewService(cfg, client, auth_service.NewMemoryTokenStore())

	token, err := service.Login(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
		return
	}

	// Update configuration with the new refresh token.
	cfg.RefreshToken = token.RefreshToken

	if err = config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
		return
	}

	logger.Info(ctx, "Configuration updated successfully!")
	logger.Infof(ctx, "Access token valid until %s", token.ExpiresAt().Format("2006-01-02 15:04:05"))
	logger.Info(ctx, "Authentication complete! You can now fetch storage credentials:")
	logger.Info(ctx, "hubic-agent credentials")
}

// ExecuteAuthRefreshCommand executes the auth refresh command.
// It redeems the stored refresh token for a new access token.
func ExecuteAuthRefreshCommand(ctx context.Context, cfg *config.Config) {
	if cfg.RefreshToken == "" {
		logger.Fatal(ctx, "No refresh token in configuration - run 'hubic-agent auth login' first")
		return
	}

	client, err := hubic_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize hubiC client: %v", err)
		return
	}

	bundle, err := client.RefreshToken(ctx, cfg.RefreshToken)
	if err != nil {
		logger.Fatalf(ctx, "Token refresh failed: %v", err)
		return
	}

	logger.Infof(ctx, "Access token refreshed, valid for %d seconds", bundle.ExpiresIn)
}
