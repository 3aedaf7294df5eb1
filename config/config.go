package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds the sqlite storage configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuthConfig holds token issuance configuration
type AuthConfig struct {
	JWTSecret   string        `mapstructure:"jwt_secret"`
	TokenTTL    time.Duration `mapstructure:"token_ttl"`
	RememberTTL time.Duration `mapstructure:"remember_ttl"`
}

// CacheConfig holds the defaults-cache configuration
type CacheConfig struct {
	DefaultsTTL time.Duration `mapstructure:"defaults_ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// PerIP is the number of auth attempts allowed per IP per minute
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/mealtrack/")

	// Environment variable settings
	v.SetEnvPrefix("MEALTRACK")
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
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.path", "meals.db")

	// Auth defaults
	v.SetDefault("auth.token_ttl", "72h")
	v.SetDefault("auth.remember_ttl", "720h") // 30 days

	// Cache defaults
	v.SetDefault("cache.defaults_ttl", "5m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 30)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required (set MEALTRACK_AUTH_JWT_SECRET)")
	}

	if config.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}

	if config.Auth.TokenTTL <= 0 || config.Auth.RememberTTL <= 0 {
		return fmt.Errorf("token TTLs must be positive, got token_ttl=%v remember_ttl=%v",
			config.Auth.TokenTTL, config.Auth.RememberTTL)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
