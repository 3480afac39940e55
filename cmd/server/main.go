package main

import (
	"go.uber.org/fx"

	"github.com/vectorops/qdrant-admin/config"
	"github.com/vectorops/qdrant-admin/logger"
	"github.com/vectorops/qdrant-admin/metrics"
	"github.com/vectorops/qdrant-admin/qdrant"
	"github.com/vectorops/qdrant-admin/server"
	"github.com/vectorops/qdrant-admin/tools"
	"github.com/vectorops/qdrant-admin/tracer"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.Load,
			qdrant.FromAppConfig,

			func(cfg *config.Config) logger.Config {
				return logger.Config{
					Level:       cfg.LogLevel,
					ServiceName: cfg.Server.Name,
				}
			},
			func(cfg *config.Config) metrics.Config {
				return metrics.Config{
					Address:                 cfg.MetricsAddress,
					ServiceName:             cfg.Server.Name,
					EnableDefaultCollectors: true,
				}
			},
			func(cfg *config.Config) tracer.Config {
				return tracer.Config{
					ServiceName:  cfg.Server.Name,
					AppEnv:       cfg.AppEnv,
					EnableExport: cfg.EnableTracing,
				}
			},

			func(l *logger.Logger) qdrant.Logger { return l },
			func(l *logger.Logger) tracer.Logger { return l },
		),

		logger.FXModule,
		metrics.FXModule,
		tracer.FXModule,
		qdrant.FXModule,
		tools.FXModule,
		server.FXModule,
	)

	app.Run()
}
