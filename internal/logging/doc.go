// Package logging configures structured logging for the CLI.
//
// Loggers are built on log/slog with two output formats: a compact console
// format for humans and JSON for machine consumption. Diagnostics always go
// to stderr so ranked pairs on stdout stay pipeline-safe. Attr helpers keep
// call sites terse, and NewNop provides a silent logger for tests.
package logging
