package qdrant

import (
	"context"
	"sync"

	"go.uber.org/fx"
)

// FXModule integrates the Qdrant client into an Fx-based application by
// providing the client factory and registering its lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A *qdrant.Config instance must be available in the dependency injection container.
// - A Logger implementation (the application logger satisfies it).
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// Params defines dependencies needed to construct the Qdrant client.
type Params struct {
	fx.In

	Config *Config
	Logger Logger
}

// RegisterQdrantLifecycle handles shutdown of the Qdrant client,
// closing the gRPC connection exactly once.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *Client, log Logger) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			once.Do(func() {
				if err := client.Close(); err != nil {
					log.Warn("Qdrant client close failed", err, nil)
					return
				}
				log.Info("Qdrant client connection closed", nil, nil)
			})
			return nil
		},
	})
}
