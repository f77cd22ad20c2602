package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt   = ">>> "
	DefaultLogLevel = "warn"
)

type LogConfig struct {
	// Level is any level logrus.ParseLevel accepts.
	Level string `yaml:"level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

type Config struct {
	Prompt  string    `yaml:"prompt"`
	History *bool     `yaml:"history"`
	Log     LogConfig `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	enabled := true
	return Config{
		Prompt:  DefaultPrompt,
		History: &enabled,
		Log:     LogConfig{Level: DefaultLogLevel, Format: "text"},
	}
}

// HistoryEnabled reports whether session history is tracked. Unset means true.
func (c Config) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// Path returns the config file to read: explicit if set, then CALC_CONFIG,
// then <user config dir>/calckit/config.yaml.
func Path(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("CALC_CONFIG")); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "calckit", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "calckit", "config.yaml")
	}
	return ""
}

// Load reads the config file at Path(explicit) over the defaults and then
// applies environment overrides. A missing file is not an error. The
// resolved path is returned alongside the config.
func Load(explicit string) (Config, string, error) {
	cfg := Default()
	path := Path(explicit)
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, path, err
			}
		case !os.IsNotExist(err):
			return cfg, path, err
		}
	}
	cfg.applyEnvOverrides()
	cfg.fillDefaults()
	return cfg, path, nil
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("CALC_PROMPT")); v != "" {
		c.Prompt = v + " "
	}
	if v := strings.TrimSpace(os.Getenv("CALC_HISTORY")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.History = &b
		}
	}
	if v := strings.TrimSpace(os.Getenv("CALC_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CALC_LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
}

func (c *Config) fillDefaults() {
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = DefaultLogLevel
	}
	if strings.TrimSpace(c.Log.Format) == "" {
		c.Log.Format = "text"
	}
}
