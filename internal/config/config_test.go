package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "HTTP_ADDR", "DICTIONARY_PATH", "INDEX_PATH", "TELSPELL_LOG_LEVEL", "TELSPELL_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
dictionary_path: /srv/te.txt
http_addr: ":9090"
redis:
  addr: localhost:6379
  db: 2
log:
  level: debug
  format: json
corrector:
  max_suggestions: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/te.txt", cfg.DictionaryPath)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3, cfg.Corrector.MaxSuggestions)
	// untouched keys keep defaults
	assert.Equal(t, "data/index", cfg.IndexPath)
	assert.Equal(t, 1_000_000_000, cfg.Corrector.CustomWordFrequency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("TELSPELL_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 4, cfg.Redis.DB)
	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadEnvIntKeepsValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "many")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.HTTPAddr = "" }},
		{"negative suggestions", func(c *Config) { c.Corrector.MaxSuggestions = -1 }},
		{"negative custom freq", func(c *Config) { c.Corrector.CustomWordFrequency = -1 }},
		{"huge custom freq", func(c *Config) { c.Corrector.CustomWordFrequency = MaxCustomWordFrequency + 1 }},
		{"negative redis db", func(c *Config) { c.Redis.DB = -1 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	cfg.Corrector.CustomWordFrequency = MaxCustomWordFrequency
	assert.NoError(t, cfg.Validate())
}
