package app

import (
	"context"

	hubic_client "github.com/savrasov/hubic-agent/internal/client/hubic"
	"github.com/savrasov/hubic-agent/internal/config"
	"github.com/savrasov/hubic-agent/internal/logger"
	auth_service "github.com/savrasov/hubic-agent/internal/service/auth"
)

// ExecuteCredentialsCommand executes the credentials command.
// It obtains a live access token (refreshing via the stored refresh token
// when needed) and fetches the delegated storage credentials.
func ExecuteCredentialsCommand(ctx context.Context, cfg *config.Config) {
	client, err := hubic_client.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize hubiC client: %v", err)
		return
	}

	service := auth_service.NewService(cfg, client, auth_service.NewMemoryTokenStore())

	credentials, err := service.StorageCredentials(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch storage credentials: %v", err)
		return
	}

	logger.Infof(ctx, "Storage endpoint: %s", credentials.Endpoint)
	logger.Infof(ctx, "Storage token: %s", credentials.Token)
	logger.Infof(ctx, "Valid until: %s", credentials.Expires)
}
