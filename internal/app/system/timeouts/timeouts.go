// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout for Mongo reads and the
// outbound ad-config fetch. Using centralized values ensures consistency and
// makes it easy to adjust timeouts across the application.
//
// Timeouts can be configured at startup using Configure(). If not configured,
// sensible defaults are used.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document settings reads
//   - Medium: settings writes and multi-step reads
//   - Fetch: the outbound HTTP call to the remote ad-config API
package timeouts

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultFetch  = 5 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

// Configurable timeout values. These start with defaults and can be
// overridden by calling Configure(). Access via getter functions.
var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	fetch  = DefaultFetch
)

// Ping returns the timeout for health checks and connectivity verification.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple operations like single-document reads.
// Examples: load ad settings for a site.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for moderate operations.
// Examples: settings upserts, reads that also touch audit data.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Fetch returns the timeout for the outbound ad-config API call.
// The remote fetch is best-effort; a slow vendor must not stall story
// rendering, so this is deliberately tight.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
	Fetch  time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. This should be called during
// application startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	fetch = DefaultFetch
}

// ConfigureFromEnv reads timeout configuration from environment variables.
// Environment variables (all optional, defaults used if not set or invalid):
//   - TIMEOUT_PING: e.g., "2s", "500ms"
//   - TIMEOUT_SHORT: e.g., "5s"
//   - TIMEOUT_MEDIUM: e.g., "10s"
//   - TIMEOUT_FETCH: e.g., "5s"
//
// Returns the number of timeouts successfully configured from environment.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	configured := 0

	if v := os.Getenv("TIMEOUT_PING"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ping = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_SHORT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			short = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_MEDIUM"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			medium = d
			configured++
		}
	}
	if v := os.Getenv("TIMEOUT_FETCH"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			fetch = d
			configured++
		}
	}

	return configured
}

// Current returns the current timeout configuration as a Config struct.
// Useful for logging or debugging.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:   ping,
		Short:  short,
		Medium: medium,
		Fetch:  fetch,
	}
}

// WithTimeout creates a context with timeout and returns a cancel function that
// logs a warning if the context was canceled due to deadline exceeded.
// Use this where timeout debugging is important, like the ad-config fetch.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
