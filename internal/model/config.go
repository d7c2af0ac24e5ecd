package model

import "time"

// Config holds all runtime settings for a triage session
type Config struct {
	Console ConsoleConfig `json:"console" yaml:"console" mapstructure:"console"`
	Session SessionConfig `json:"session" yaml:"session" mapstructure:"session"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
}

// ConsoleConfig controls operator prompting
type ConsoleConfig struct {
	DeclineTokens []string `json:"decline_tokens" yaml:"decline_tokens" mapstructure:"decline_tokens"` // Inputs read as "decline to answer"
	Color         bool     `json:"color" yaml:"color" mapstructure:"color"`
}

// SessionConfig controls the resolve/learn loop
type SessionConfig struct {
	CacheEnabled bool          `json:"cache_enabled" yaml:"cache_enabled" mapstructure:"cache_enabled"`
	CacheTTL     time.Duration `json:"cache_ttl" yaml:"cache_ttl" mapstructure:"cache_ttl"`
	DumpPath     string        `json:"dump_path,omitempty" yaml:"dump_path,omitempty" mapstructure:"dump_path"` // "-" for stdout, empty disables
}

// LogConfig controls structured logging
type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"` // debug, info, warn, error
	File  string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() Config {
	return Config{
		Console: ConsoleConfig{
			DeclineTokens: []string{"", "?"},
			Color:         true,
		},
		Session: SessionConfig{
			CacheEnabled: true,
			CacheTTL:     30 * time.Minute,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
