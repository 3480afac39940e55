package qdrant

import (
	"time"

	"github.com/vectorops/qdrant-admin/config"
)

// Config holds connection and behavior settings for the Qdrant client.
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// REST base URL, used only for the root-endpoint probes in the
	// health and cluster-info operations.
	RestURL string `yaml:"rest_url" env:"QDRANT_URL"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Default collection name used when a caller omits one.
	DefaultCollection string `yaml:"default_collection" env:"DEFAULT_COLLECTION"`

	// Maximum request duration, applied uniformly to every backend
	// call. There is no per-operation override.
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`

	// Whether to perform version compatibility checks between client
	// and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for a local deployment.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:          "localhost",
		Port:              6334,
		RestURL:           "http://localhost:6333",
		DefaultCollection: "knowledge_base",
		Timeout:           30 * time.Second,
	}
}

// FromAppConfig maps the resolved process configuration into a client
// Config. Registered as an Fx provider.
func FromAppConfig(app *config.Config) *Config {
	return &Config{
		Endpoint:           app.Qdrant.Endpoint,
		Port:               app.Qdrant.Port,
		RestURL:            app.Qdrant.RestURL,
		ApiKey:             app.Qdrant.ApiKey,
		DefaultCollection:  app.DefaultCollection,
		Timeout:            app.Qdrant.Timeout,
		CheckCompatibility: app.Qdrant.CheckCompatibility,
	}
}
