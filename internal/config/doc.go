// Package config loads, validates, and scaffolds the namesim TOML
// configuration. Config values supply defaults only; command-line flags
// always win, and the OTEL_* environment variables override the [tracing]
// section. A missing config file is not an error.
package config
