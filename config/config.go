// Package config resolves process configuration from the environment.
//
// Every consumer receives already-resolved values; nothing outside this
// package reads environment variables. Defaults match a local single-node
// Qdrant deployment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Qdrant holds connection settings for the vector backend.
type Qdrant struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// REST URL, used for the root-endpoint health and version probes.
	RestURL string `yaml:"rest_url" env:"QDRANT_URL"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Shared per-call request timeout, applied uniformly to every
	// backend call. There is no per-operation override.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`
}

// Server holds settings for the invocation boundary.
type Server struct {
	Name    string `yaml:"name" env:"SERVER_NAME"`
	Address string `yaml:"address" env:"SERVER_ADDR"`
}

// Config is the resolved application configuration.
type Config struct {
	Qdrant Qdrant `yaml:"qdrant"`
	Server Server `yaml:"server"`

	// Collection used when a caller omits one.
	DefaultCollection string `yaml:"default_collection" env:"DEFAULT_COLLECTION"`

	MetricsAddress string `yaml:"metrics_address" env:"METRICS_ADDR"`
	LogLevel       string `yaml:"log_level" env:"LOG_LEVEL"`
	EnableTracing  bool   `yaml:"enable_tracing" env:"ENABLE_TRACING"`
	AppEnv         string `yaml:"app_env" env:"APP_ENV"`
}

// Load resolves the full configuration from the environment.
func Load() *Config {
	return &Config{
		Qdrant: Qdrant{
			Endpoint:           envString("QDRANT_ENDPOINT", "localhost"),
			Port:               envInt("QDRANT_PORT", 6334),
			RestURL:            envString("QDRANT_URL", "http://localhost:6333"),
			ApiKey:             envString("QDRANT_API_KEY", ""),
			Timeout:            envDuration("QDRANT_TIMEOUT", 30*time.Second),
			CheckCompatibility: envBool("QDRANT_CHECK_COMPATIBILITY", false),
		},
		Server: Server{
			Name:    envString("SERVER_NAME", "qdrant-admin"),
			Address: envString("SERVER_ADDR", ":8080"),
		},
		DefaultCollection: envString("DEFAULT_COLLECTION", "knowledge_base"),
		MetricsAddress:    envString("METRICS_ADDR", ":9090"),
		LogLevel:          envString("LOG_LEVEL", "info"),
		EnableTracing:     envBool("ENABLE_TRACING", false),
		AppEnv:            envString("APP_ENV", "development"),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// envDuration accepts either a Go duration string ("30s") or a bare
// number of seconds, matching how deployments commonly set timeouts.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
