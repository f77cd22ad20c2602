package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CALC_CONFIG", "CALC_PROMPT", "CALC_HISTORY", "CALC_LOG_LEVEL", "CALC_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	data := "prompt: 'calc> '\nhistory: false\nlog:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(cfgPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CALC_CONFIG", cfgPath)
	cfg, path, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if path != cfgPath {
		t.Fatalf("expected path %q, got %q", cfgPath, path)
	}
	if cfg.Prompt != "calc> " {
		t.Fatalf("prompt=%q", cfg.Prompt)
	}
	if cfg.HistoryEnabled() {
		t.Fatalf("history should be disabled")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("log config=%+v", cfg.Log)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prompt: [unterminated\n"), 0o644))
	_, _, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		clearEnv(t)
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("history: true\nlog:\n  level: info\n"), 0o644))
		t.Setenv("CALC_HISTORY", "false")
		t.Setenv("CALC_LOG_LEVEL", "error")
		t.Setenv("CALC_PROMPT", "calc>")

		cfg, _, err := Load(cfgPath)
		require.NoError(t, err)
		assert.False(t, cfg.HistoryEnabled())
		assert.Equal(t, "error", cfg.Log.Level)
		assert.Equal(t, "calc> ", cfg.Prompt)
	})

	t.Run("unparseable history value is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CALC_HISTORY", "maybe")
		cfg, _, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.True(t, cfg.HistoryEnabled())
	})
}

func TestPathPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("CALC_CONFIG", "/from/env.yaml")
	assert.Equal(t, "/explicit.yaml", Path("/explicit.yaml"))
	assert.Equal(t, "/from/env.yaml", Path(""))
}
