// Package config provides configuration structures and loading for mongotour.
package config

// Config represents the complete application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// StoreConfig represents the MongoDB connection target.
type StoreConfig struct {
	URI                   string `yaml:"uri" mapstructure:"uri"`
	Database              string `yaml:"database" mapstructure:"database"`
	Collection            string `yaml:"collection" mapstructure:"collection"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds" mapstructure:"connect_timeout_seconds"`
	MaxRetries            int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			URI:                   "mongodb://localhost:27017",
			Database:              "bookstore",
			Collection:            "books",
			ConnectTimeoutSeconds: 10,
			MaxRetries:            3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(logLevel, logFormat string, connectTimeout int) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if connectTimeout > 0 {
		c.Store.ConnectTimeoutSeconds = connectTimeout
	}
}
