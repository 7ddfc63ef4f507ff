package api

import "time"

// Config holds HTTP adapter configuration.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// RateLimitMax is the number of requests a client may make per RateLimitWindow.
	// Zero disables rate limiting.
	RateLimitMax int

	// RateLimitWindow is the rate limiting window.
	RateLimitWindow time.Duration

	// ServiceTimeout bounds each call into the calc and stats services.
	ServiceTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Port:            3000,
		RateLimitMax:    120,
		RateLimitWindow: time.Minute,
		ServiceTimeout:  5 * time.Second,
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithPort sets the listening port.
func WithPort(port int) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithRateLimit sets the per-client request limit.
func WithRateLimit(max int, window time.Duration) Option {
	return func(c *Config) {
		c.RateLimitMax = max
		c.RateLimitWindow = window
	}
}

// WithServiceTimeout sets the timeout for service calls.
func WithServiceTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.ServiceTimeout = d
	}
}
