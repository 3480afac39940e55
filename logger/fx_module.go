package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the logger into an Fx-based application. It requires
// a logger.Config in the dependency graph and registers a shutdown hook
// that flushes buffered entries on termination.
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle syncs the Zap logger when the application stops,
// so no buffered entries are lost during shutdown.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync()
		},
	})
}
