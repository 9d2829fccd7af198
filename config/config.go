package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	OCRSpace OCRSpaceConfig
	Cache    CacheConfig
	Store    StoreConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OCRSpaceConfig holds OCR.space API configuration
type OCRSpaceConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Engine   int           `mapstructure:"engine"`
	Language string        `mapstructure:"language"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// StoreConfig holds bill store configuration
type StoreConfig struct {
	ListLimit int `mapstructure:"list_limit"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/taglens/")

	// Environment variable settings
	v.SetEnvPrefix("TAGLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// OCR.space defaults ("helloworld" is the public demo key)
	v.SetDefault("ocrspace.api_key", "helloworld")
	v.SetDefault("ocrspace.base_url", "https://api.ocr.space")
	v.SetDefault("ocrspace.engine", 2)
	v.SetDefault("ocrspace.language", "eng")
	v.SetDefault("ocrspace.timeout", "30s")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")

	// Store defaults
	v.SetDefault("store.list_limit", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OCRSpace.APIKey == "" {
		return fmt.Errorf("OCR.space API key is required (set TAGLENS_OCRSPACE_API_KEY)")
	}

	if config.OCRSpace.Engine < 1 || config.OCRSpace.Engine > 3 {
		return fmt.Errorf("OCR engine must be 1, 2, or 3, got: %d", config.OCRSpace.Engine)
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Store.ListLimit <= 0 {
		return fmt.Errorf("store list limit must be positive, got: %d", config.Store.ListLimit)
	}

	return nil
}
