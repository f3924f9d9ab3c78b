package http

import (
	"time"

	"github.com/savrasov/hubic-agent/internal/version"
)

const (
	// DefaultFlowTimeout is the timeout for the multi-step authentication flow requests.
	DefaultFlowTimeout = 30 * time.Second

	// DefaultCredentialsTimeout is the timeout for the storage credentials side call.
	DefaultCredentialsTimeout = 5 * time.Second
)

// DefaultUserAgent is the User-Agent string sent with every request,
// identifying the product and its version.
//
//nolint:gochecknoglobals // Derived from build-time version information.
var DefaultUserAgent = "hubic-agent/" + version.Short()
