package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Embedding EmbeddingConfig
	Grammar   GrammarConfig
	Redis     RedisConfig
	Cache     CacheConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	StaticDir       string `envconfig:"STATIC_DIR" default:"static"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// EmbeddingConfig holds the sentence-embedding server configuration
type EmbeddingConfig struct {
	BaseURL string        `envconfig:"EMBEDDING_URL" default:"http://localhost:8501"`
	APIKey  string        `envconfig:"EMBEDDING_API_KEY"`
	Timeout time.Duration `envconfig:"EMBEDDING_TIMEOUT" default:"30s"`
}

// GrammarConfig holds the LanguageTool server configuration
type GrammarConfig struct {
	BaseURL  string        `envconfig:"LANGUAGETOOL_URL" default:"https://api.languagetool.org"`
	Language string        `envconfig:"LANGUAGETOOL_LANGUAGE" default:"en-US"`
	Timeout  time.Duration `envconfig:"LANGUAGETOOL_TIMEOUT" default:"30s"`
}

// RedisConfig holds Redis configuration for the embedding cache
type RedisConfig struct {
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// CacheConfig holds embedding-cache tuning
type CacheConfig struct {
	TTL time.Duration `envconfig:"CACHE_TTL" default:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Embedding.BaseURL == "" {
		return fmt.Errorf("EMBEDDING_URL is required")
	}
	if c.Grammar.BaseURL == "" {
		return fmt.Errorf("LANGUAGETOOL_URL is required")
	}
	return nil
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Origins returns the allowed CORS origins as a slice
func (c *Config) Origins() []string {
	parts := strings.Split(c.Server.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
