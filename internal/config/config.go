package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid configuration")

// MaxCustomWordFrequency bounds corrector.custom_word_frequency.
const MaxCustomWordFrequency = 1_000_000_000_000

type Config struct {
	DictionaryPath string          `yaml:"dictionary_path"`
	IndexPath      string          `yaml:"index_path"` // Badger frequency index, empty disables it
	HTTPAddr       string          `yaml:"http_addr"`
	WatchDict      bool            `yaml:"watch_dictionary"`
	Redis          RedisConfig     `yaml:"redis"`
	Log            LogConfig       `yaml:"log"`
	Corrector      CorrectorConfig `yaml:"corrector"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"` // empty disables the custom dictionary
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"` // "-" for stderr
}

type CorrectorConfig struct {
	MaxSuggestions      int    `yaml:"max_suggestions"`
	CustomWordFrequency int    `yaml:"custom_word_frequency"`
	DisableNormalize    bool   `yaml:"disable_normalize"`
	Alphabet            string `yaml:"alphabet"`
}

func Default() Config {
	return Config{
		DictionaryPath: "data/telugu_frequencies.txt",
		IndexPath:      "data/index",
		HTTPAddr:       ":8080",
		WatchDict:      true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "-",
		},
		Corrector: CorrectorConfig{
			MaxSuggestions:      5,
			CustomWordFrequency: 1_000_000_000,
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) applyEnv() {
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.DictionaryPath = getenv("DICTIONARY_PATH", cfg.DictionaryPath)
	cfg.IndexPath = getenv("INDEX_PATH", cfg.IndexPath)
	cfg.Log.Level = getenv("TELSPELL_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getenv("TELSPELL_LOG_FORMAT", cfg.Log.Format)
}

func (cfg *Config) Validate() error {
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("%w: http_addr is empty", ErrInvalid)
	}
	if cfg.Corrector.MaxSuggestions < 0 {
		return fmt.Errorf("%w: max_suggestions must not be negative", ErrInvalid)
	}
	if cfg.Corrector.CustomWordFrequency < 0 || cfg.Corrector.CustomWordFrequency > MaxCustomWordFrequency {
		return fmt.Errorf("%w: custom_word_frequency must be in [0, %d]", ErrInvalid, MaxCustomWordFrequency)
	}
	if cfg.Redis.DB < 0 {
		return fmt.Errorf("%w: redis db must not be negative", ErrInvalid)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, cfg.Log.Format)
	}
	return nil
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
