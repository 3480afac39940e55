package server

import (
	"context"

	"go.uber.org/fx"

	"github.com/vectorops/qdrant-admin/config"
)

// FXModule provides the dispatcher and the HTTP invocation boundary and
// ties the server to the application lifecycle.
var FXModule = fx.Module("server",
	fx.Provide(
		func(app *config.Config) config.Server { return app.Server },
		NewDispatcher,
		NewServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts serving on application start and drains
// on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
