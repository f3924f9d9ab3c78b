package cmd

import (
	"github.com/spf13/cobra"

	"github.com/savrasov/hubic-agent/internal/app"
	"github.com/savrasov/hubic-agent/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication for hubiC.

Use 'auth login' to authenticate with your account credentials and save the
resulting refresh token, or 'auth refresh' to redeem the saved refresh token
for a new access token.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in to hubiC and obtain an access/refresh token pair",
		Long: `Performs the full OAuth2 authorization code flow against the hubiC API,
emulating the browser form submission with the configured login and password.

After successful login, the refresh token is saved to the configuration file
so later commands can obtain fresh access tokens without re-authenticating.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authRefreshCmd = &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the access token using the saved refresh token",
		Long: `Redeems the refresh token saved in the configuration file for a new
access token. No account credentials are needed.`,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteAuthRefreshCommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authLoginCmd.Flags().StringP("login", "l", "", "hubiC account login (overrides the configuration file).")
	authLoginCmd.Flags().StringP("password", "p", "", "hubiC account password (overrides the configuration file).")

	// Add subcommands to auth command.
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRefreshCmd)

	// Add auth command to root command.
	rootCmd.AddCommand(authCmd)
}
