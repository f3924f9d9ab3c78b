// Package logger wraps the Zap logging library behind a process-wide logger
// with a mutable level and context-aware helper functions.
// Every helper takes a context so call sites stay uniform even though request
// scoping is not wired in yet.
package logger
