package tracer

// Config controls tracer construction.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" env:"SERVER_NAME"`

	// AppEnv tags spans with the deployment environment.
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false the
	// provider is local-only, which keeps span creation cheap in
	// deployments without a collector.
	EnableExport bool `yaml:"enable_export" env:"ENABLE_TRACING"`
}
