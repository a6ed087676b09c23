package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. PREPDECK_QUIZ_DEFAULT_COUNT.
const EnvPrefix = "PREPDECK"

// Defaults.
const (
	DefaultVocabTimeout = 10 * time.Second
	DefaultQuizCount    = 10
	DefaultAdvanceDelay = 1500 * time.Millisecond
	DefaultLogLevel     = "info"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"vocab":     "vocab.source",
	"db":        "store.db",
	"count":     "quiz.default_count",
	"audio-cmd": "audio.command",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// Load builds the configuration. If path is empty the default config file
// is read when it exists; an explicit path must exist. Flags found in
// flags override every other source.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("vocab.source", "")
	v.SetDefault("vocab.timeout", DefaultVocabTimeout)
	v.SetDefault("store.db", "")
	v.SetDefault("quiz.default_count", DefaultQuizCount)
	v.SetDefault("quiz.advance_delay", DefaultAdvanceDelay)
	v.SetDefault("audio.command", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")
	if path == "" {
		if def, err := DefaultPath(); err == nil && fileExists(def) {
			path = def
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store.db", EnvPrefix+"_DB", EnvPrefix+"_STORE_DB"); err != nil {
		return nil, fmt.Errorf("bind %s_DB: %w", EnvPrefix, err)
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/prepdeck/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "prepdeck", "config.yaml"), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
