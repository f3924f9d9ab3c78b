// Package app provides the main application logic behind the CLI commands.
// It initializes the necessary components, such as the hubiC client and the
// token service, and orchestrates authentication, token refresh, and storage
// credentials retrieval.
package app
