package config

const (
	defaultPattern     = ".*"
	defaultThreshold   = 0.6
	defaultNGram       = 1
	defaultWeighting   = "count"
	defaultFormat      = "auto"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultServiceName = "namesim"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Pattern:       defaultPattern,
			IncludeHidden: true,
		},
		Rank: Rank{
			Threshold: defaultThreshold,
			NGram:     defaultNGram,
			Weighting: defaultWeighting,
		},
		Output: Output{
			Format: defaultFormat,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Tracing: Tracing{
			ServiceName: defaultServiceName,
		},
	}
}
