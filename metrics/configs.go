package metrics

// Config controls the Prometheus metrics endpoint.
type Config struct {
	// Address the /metrics HTTP server listens on, e.g. ":9090".
	Address string `yaml:"address" env:"METRICS_ADDR"`

	// ServiceName is applied to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"SERVER_NAME"`

	// EnableDefaultCollectors registers Go runtime, process, and build
	// info collectors in addition to the application metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_DEFAULT_COLLECTORS"`
}
