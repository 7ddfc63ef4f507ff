package calc

import "github.com/example/power-calculator/domain/power"

// Config holds calc module configuration.
type Config struct {
	// DefaultMethod is used when a request does not name a method.
	DefaultMethod power.Method

	// BatchWorkers bounds how many batch items are evaluated at once.
	BatchWorkers int
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultMethod: power.MethodNative,
		BatchWorkers:  4,
	}
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithDefaultMethod sets the method used when requests omit one.
func WithDefaultMethod(method power.Method) Option {
	return func(c *Config) {
		c.DefaultMethod = method
	}
}

// WithBatchWorkers sets the batch concurrency. Values below 1 are ignored.
func WithBatchWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.BatchWorkers = n
		}
	}
}
