// Package config loads prepdeck settings from defaults, an optional YAML
// file, PREPDECK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Vocab VocabConfig `mapstructure:"vocab" validate:"required"`
	Store StoreConfig `mapstructure:"store"`
	Quiz  QuizConfig  `mapstructure:"quiz" validate:"required"`
	Audio AudioConfig `mapstructure:"audio"`
	Log   LogConfig   `mapstructure:"log"`
}

// VocabConfig controls where the word list comes from.
type VocabConfig struct {
	// Source is a file path or http(s) URL. Empty means the embedded sample.
	Source  string        `mapstructure:"source"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// StoreConfig locates the progress database.
type StoreConfig struct {
	// DB is the SQLite file path. Empty means the default data directory.
	DB string `mapstructure:"db"`
}

// QuizConfig tunes quiz sessions.
type QuizConfig struct {
	DefaultCount int           `mapstructure:"default_count" validate:"min=1,max=500"`
	AdvanceDelay time.Duration `mapstructure:"advance_delay" validate:"gt=0"`
}

// AudioConfig configures speech.
type AudioConfig struct {
	// Command is a text-to-speech command line; the text is appended as
	// the last argument. Empty disables speech.
	Command string `mapstructure:"command"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}
