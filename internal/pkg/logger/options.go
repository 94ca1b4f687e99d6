package logger

// Option defines a function to modify logger configuration
type Option func(*Config)

// WithLevel sets the log level. Empty keeps the configured level.
func WithLevel(level string) Option {
	return func(c *Config) {
		if level != "" {
			c.Level = level
		}
	}
}

// WithFormat sets the log format (json or console). Empty keeps the configured format.
func WithFormat(format string) Option {
	return func(c *Config) {
		if format != "" {
			c.Format = format
		}
	}
}

// WithOutput sets the log output (console, file, or both)
func WithOutput(output string) Option {
	return func(c *Config) {
		if output != "" {
			c.Output = output
		}
	}
}

// WithFilename sets the log file name
func WithFilename(filename string) Option {
	return func(c *Config) {
		if filename != "" {
			c.File.Filename = filename
		}
	}
}
