// Package config holds the environment-driven application configuration
// and the tuning constants shared across packages.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// WeatherCacheTTL bounds how long an upstream weather response is
	// served from Redis before being re-fetched.
	WeatherCacheTTL = 10 * time.Minute

	// TokenTTL is the lifetime of issued access tokens.
	TokenTTL = 7 * 24 * time.Hour

	// MaxUploadSize caps multipart uploads (crop photos, product images).
	MaxUploadSize = 16 << 20
)

// Config is populated from the process environment (plus .env in dev).
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"agrismart"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"agrismart"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`
	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY"`
	ElevenLabsAPIKey  string `envconfig:"ELEVENLABS_API_KEY"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DSN builds the PostgreSQL connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
