package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Minimum level that will be emitted.
	Level string `yaml:"level" env:"LOG_LEVEL"`

	// ServiceName is attached to every entry as a constant field.
	ServiceName string `yaml:"service_name" env:"SERVER_NAME"`
}
