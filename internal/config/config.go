package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the complete server configuration
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	AI            AIConfig            `koanf:"ai"`
	Triangulation TriangulationConfig `koanf:"triangulation"`
	Cache         CacheConfig         `koanf:"cache"`
	LogLevel      string              `koanf:"log_level"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port              int           `koanf:"port"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// AIConfig holds settings for the suggestion model provider.
// BaseURL allows pointing at any OpenAI-compatible gateway.
type AIConfig struct {
	APIKey      string  `koanf:"api_key"`
	Model       string  `koanf:"model"`
	BaseURL     string  `koanf:"base_url"`
	Temperature float64 `koanf:"temperature"`
	MaxTokens   int     `koanf:"max_tokens"`
}

// TriangulationConfig holds tuning constants for the triangulation pipeline
type TriangulationConfig struct {
	// Multiple of the standard deviation beyond the mean
	// distance-to-center at which a point counts as an outlier
	OutlierThreshold float64 `koanf:"outlier_threshold"`
	// Travel time heuristic; not a routing API call
	TravelMinutesPerKm float64 `koanf:"travel_minutes_per_km"`
}

// CacheConfig holds suggestion cache settings
type CacheConfig struct {
	SuggestionTTL   time.Duration `koanf:"suggestion_ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// envPrefix is stripped from environment variables; double underscores
// become dots, so MEET_AI__API_KEY overrides ai.api_key.
const envPrefix = "MEET_"

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server": map[string]interface{}{
			"port":                8080,
			"read_header_timeout": "5s",
			"read_timeout":        "10s",
			"write_timeout":       "60s",
			"idle_timeout":        "60s",
		},
		"ai": map[string]interface{}{
			"model":       "gpt-4o-mini",
			"temperature": 0.7,
			"max_tokens":  1500,
		},
		"triangulation": map[string]interface{}{
			"outlier_threshold":     1.5,
			"travel_minutes_per_km": 2.0,
		},
		"cache": map[string]interface{}{
			"suggestion_ttl":   "1h",
			"cleanup_interval": "10m",
		},
		"log_level": "info",
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// MEET_-prefixed environment variables, in increasing precedence. A missing
// config file is not an error; env-only deployments are normal.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("loading config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
