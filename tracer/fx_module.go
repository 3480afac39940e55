package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides the tracer client and registers its shutdown hook so
// pending spans are flushed on application termination.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle shuts the tracer provider down when the
// application stops.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer == nil || tracer.tracer == nil {
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
