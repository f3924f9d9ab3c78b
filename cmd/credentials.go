package cmd

import (
	"github.com/spf13/cobra"

	"github.com/savrasov/hubic-agent/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Fetch delegated OpenStack Swift storage credentials",
	Long: `Obtains a live access token (refreshing via the saved refresh token when
needed) and fetches the delegated OpenStack Swift credentials for the account.`,
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteCredentialsCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(credentialsCmd)
}
