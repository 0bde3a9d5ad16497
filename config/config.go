package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=mse
//	POSTGRES_SSLMODE=disable
//	PREDICTION_BASE_URL=http://prediction:5000
//	INDICATORS_BASE_URL=http://indicators:5000
//	NEWS_BASE_URL=http://news:5003
//	UPSTREAM_TIMEOUT_SECONDS=5
//	CACHE_SIZE=1024
//	CACHE_TTL_MINUTES=15
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string // computed DSN used by database/sql
}

// UpstreamConfig holds the base URLs and call timeout for the three proxied
// services (prediction, technical indicators, news sentiment).
type UpstreamConfig struct {
	PredictionBaseURL string
	IndicatorsBaseURL string
	NewsBaseURL       string
	Timeout           time.Duration
}

// CacheConfig bounds the per-proxy response caches.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AppConfig is the globally accessible configuration instance, populated once
// via LoadConfig().
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from a .env file (if present).
//  3. Environment variables.
//
// If required variables are missing, validateConfig() terminates the app with
// a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "mse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("PREDICTION_BASE_URL", "http://prediction:5000")
	viper.SetDefault("INDICATORS_BASE_URL", "http://indicators:5000")
	viper.SetDefault("NEWS_BASE_URL", "http://news:5003")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 5)

	viper.SetDefault("CACHE_SIZE", 1024)
	viper.SetDefault("CACHE_TTL_MINUTES", 15)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Upstream: UpstreamConfig{
			PredictionBaseURL: viper.GetString("PREDICTION_BASE_URL"),
			IndicatorsBaseURL: viper.GetString("INDICATORS_BASE_URL"),
			NewsBaseURL:       viper.GetString("NEWS_BASE_URL"),
			Timeout:           time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		},
		Cache: CacheConfig{
			Size: viper.GetInt("CACHE_SIZE"),
			TTL:  time.Duration(viper.GetInt("CACHE_TTL_MINUTES")) * time.Minute,
		},
	}

	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Upstream.PredictionBaseURL == "" {
		missing = append(missing, "PREDICTION_BASE_URL")
	}
	if AppConfig.Upstream.IndicatorsBaseURL == "" {
		missing = append(missing, "INDICATORS_BASE_URL")
	}
	if AppConfig.Upstream.NewsBaseURL == "" {
		missing = append(missing, "NEWS_BASE_URL")
	}
	// a non-positive size would make the proxy caches unbounded
	if AppConfig.Cache.Size <= 0 {
		missing = append(missing, "CACHE_SIZE")
	}

	if len(missing) > 0 {
		log.Fatalf("missing or invalid required environment variables: %v\n", missing)
	}
}
