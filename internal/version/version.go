// Package version holds build-time version information.
// The variables are overridden at build time via -ldflags.
package version

// Build-time variables, overridden via -ldflags.
//
//nolint:gochecknoglobals // These are set by the linker at build time.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version, commit and build time in a single string.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
