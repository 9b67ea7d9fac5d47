package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dukerupert/hearth/internal/catalog"
	"github.com/dukerupert/hearth/internal/database"
)

// Config holds runtime settings. Each key can be set in hearth.yaml or
// through a HEARTH_-prefixed environment variable (db_path is HEARTH_DB_PATH).
type Config struct {
	Port string `mapstructure:"port"`
	// DBPath defaults to an in-memory database; lists vanish on restart.
	DBPath    string `mapstructure:"db_path"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// SearchLimit caps food search results when a request gives no limit.
	SearchLimit int `mapstructure:"search_limit"`
	// Seed fixes the organizer's random draws. Zero means time-seeded.
	Seed uint64 `mapstructure:"seed"`

	// RateLimit is sustained search requests per second per client.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`

	// OriginPatterns restricts websocket origins. Empty accepts any.
	OriginPatterns []string `mapstructure:"origin_patterns"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Port:        "8080",
		DBPath:      database.MemoryPath,
		LogLevel:    "info",
		LogFormat:   "text",
		SearchLimit: catalog.DefaultLimit,
		RateLimit:   10,
		RateBurst:   30,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("port", d.Port)
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("search_limit", d.SearchLimit)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("rate_burst", d.RateBurst)
	v.SetDefault("origin_patterns", []string{})
}

// Load reads configuration from the environment on top of an optional
// config file. An empty path searches for hearth.yaml in the working
// directory and /etc/hearth; a missing file is not an error then.
func Load(path string) (Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("hearth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/hearth/")
	}

	v.SetEnvPrefix("HEARTH")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.OriginPatterns = trimList(cfg.OriginPatterns)

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.New("port is required")
	}
	if cfg.SearchLimit < 1 {
		return fmt.Errorf("search_limit must be positive, got %d", cfg.SearchLimit)
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive, got %v", cfg.RateLimit)
	}
	if cfg.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be positive, got %d", cfg.RateBurst)
	}
	return nil
}

func trimList(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
