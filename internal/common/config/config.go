// Package config loads the service configuration from YAML with environment
// overrides.
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Letter  LetterConfig  `mapstructure:"letter"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int `mapstructure:"port"`
	ReadTimeoutSec  int `mapstructure:"read_timeout"`  // seconds
	WriteTimeoutSec int `mapstructure:"write_timeout"` // seconds
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LetterConfig holds the tunable limits of the letter API boundary. The cap
// applies to the free-text additional-details field only; the engine itself
// never length-checks.
type LetterConfig struct {
	AdditionalDetailsMaxLength int `mapstructure:"additional_details_max_length"`
}
