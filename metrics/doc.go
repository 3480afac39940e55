// Package metrics provides Prometheus-based monitoring for the service.
//
// It owns an isolated Prometheus registry, the HTTP server exposing it on
// /metrics, and the built-in tool-invocation metrics every dispatched
// operation records. It integrates with the Fx dependency injection
// framework for lifecycle management.
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Per-service registry, wrapped with a constant `service` label
//   - Invocation counter by tool name and result status
//   - Invocation duration histogram by tool name
//   - Optional Go runtime, process, and build-info collectors
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// Basic Usage:
//
//	import "github.com/vectorops/qdrant-admin/metrics"
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "qdrant-admin",
//	})
//	go m.Server.ListenAndServe()
//
//	m.ObserveInvocation("qdrant_search_vectors", "success", start)
//
// Fx Usage:
//
//	app := fx.New(
//		fx.Provide(func() metrics.Config { ... }),
//		metrics.FXModule,
//	)
package metrics
