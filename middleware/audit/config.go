package audit

import "time"

// Config holds audit middleware configuration.
type Config struct {
	// SlowThreshold marks calls that take longer as slow. Zero disables the check.
	SlowThreshold time.Duration

	// LogEveryCall logs each call at debug level, not only failures and slow calls.
	LogEveryCall bool
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SlowThreshold: 250 * time.Millisecond,
		LogEveryCall:  true,
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithSlowThreshold sets the duration above which a call is logged as slow.
func WithSlowThreshold(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.SlowThreshold = d
		}
	}
}

// WithLogEveryCall enables or disables per-call debug logging.
func WithLogEveryCall(enabled bool) Option {
	return func(c *Config) {
		c.LogEveryCall = enabled
	}
}
