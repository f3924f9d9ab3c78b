package constants

import "os"

const (
	// DefaultFilePermissions is the mode for files the application writes (rw-r--r--).
	// The configuration file holds account credentials, so group and others get read-only.
	DefaultFilePermissions os.FileMode = 0o644
)
