// Package auth holds the current hubiC token for the running process and
// keeps it fresh. The token lives in an explicitly owned, injectable store
// rather than a process-wide singleton, so callers decide how the token is
// shared. Tokens are never persisted across restarts.
package auth
