package config

import (
	"fmt"
	"regexp"

	"namesim/internal/errs"
	"namesim/internal/similarity"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateRank(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.Pattern == "" {
		return nil
	}
	if _, err := regexp.Compile(c.Scan.Pattern); err != nil {
		return errs.Wrap(errs.ErrConfiguration, "config", "scan.pattern",
			fmt.Sprintf("invalid regular expression %q", c.Scan.Pattern), err)
	}
	return nil
}

func (c *Config) validateRank() error {
	if c.Rank.Threshold < 0 || c.Rank.Threshold >= 1 {
		return errs.Wrap(errs.ErrConfiguration, "config", "rank.threshold",
			fmt.Sprintf("%v outside [0, 1)", c.Rank.Threshold), nil)
	}
	if c.Rank.NGram < 1 || c.Rank.NGram > similarity.MaxShingleSize {
		return errs.Wrap(errs.ErrConfiguration, "config", "rank.ngram",
			fmt.Sprintf("%d outside 1..%d", c.Rank.NGram, similarity.MaxShingleSize), nil)
	}
	if _, err := similarity.ParseWeighting(c.Rank.Weighting); err != nil {
		return errs.Wrap(errs.ErrConfiguration, "config", "rank.weighting", "", err)
	}
	if c.Rank.TopK < 0 {
		return errs.Wrap(errs.ErrConfiguration, "config", "rank.top_k", "must not be negative", nil)
	}
	if c.Rank.Workers < 0 {
		return errs.Wrap(errs.ErrConfiguration, "config", "rank.workers", "must not be negative", nil)
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "", "auto", "tsv", "table", "json":
		return nil
	default:
		return errs.Wrap(errs.ErrConfiguration, "config", "output.format",
			fmt.Sprintf("%q is not one of auto, tsv, table, json", c.Output.Format), nil)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return errs.Wrap(errs.ErrConfiguration, "config", "logging.format",
			fmt.Sprintf("%q is not one of console, json", c.Logging.Format), nil)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errs.Wrap(errs.ErrConfiguration, "config", "logging.level",
			fmt.Sprintf("%q is not one of debug, info, warn, error", c.Logging.Level), nil)
	}
	return nil
}
