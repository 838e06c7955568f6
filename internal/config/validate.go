// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/medalboard/internal/logging"
)

// Rate limit bounds.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Upper bounds for the view parameter defaults. They match the bounds the
// query layer enforces on request parameters.
const (
	maxTopN        = 1000
	maxTopK        = 100
	maxBucketWidth = 70
)

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateDataset(),
		c.validateQuery(),
		c.validateServer(),
		c.validateRateLimits(),
		c.validateLogging(),
	)
}

func (c *Config) validateDataset() error {
	var errs []error
	if strings.TrimSpace(c.Dataset.AthletesPath) == "" {
		errs = append(errs, errors.New("ATHLETES_PATH is required"))
	}
	if strings.TrimSpace(c.Dataset.RegionsPath) == "" {
		errs = append(errs, errors.New("REGIONS_PATH is required"))
	}
	return errors.Join(errs...)
}

func (c *Config) validateQuery() error {
	var errs []error
	if c.Query.DefaultTopN < 1 || c.Query.DefaultTopN > maxTopN {
		errs = append(errs, fmt.Errorf("DEFAULT_TOP_N must be between 1 and %d", maxTopN))
	}
	if c.Query.DefaultTopK < 1 || c.Query.DefaultTopK > maxTopK {
		errs = append(errs, fmt.Errorf("DEFAULT_TOP_K must be between 1 and %d", maxTopK))
	}
	if c.Query.DefaultBucketWidth < 1 || c.Query.DefaultBucketWidth > maxBucketWidth {
		errs = append(errs, fmt.Errorf("DEFAULT_BUCKET_WIDTH must be between 1 and %d", maxBucketWidth))
	}
	return errors.Join(errs...)
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return errors.New("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	var errs []error
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q is not a known level", c.Logging.Level))
	}
	if !slices.Contains([]string{logging.FormatJSON, logging.FormatConsole}, c.Logging.Format) {
		errs = append(errs, errors.New("LOG_FORMAT must be json or console"))
	}
	return errors.Join(errs...)
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}
