// Package tracer provides distributed tracing using OpenTelemetry.
//
// It abstracts the OpenTelemetry SDK behind a small span API: start a
// span, record an error on it, attach attributes. Export over OTLP HTTP
// is optional; without it the provider stays local-only and span creation
// is cheap.
//
// Core Features:
//   - Simple span creation and management
//   - Error recording and status tracking
//   - Customizable span attributes
//   - W3C trace-context propagation registered globally
//   - Optional OTLP HTTP export
//
// Basic Usage:
//
//	import "github.com/vectorops/qdrant-admin/tracer"
//
//	tr := tracer.NewClient(tracer.Config{
//		ServiceName:  "qdrant-admin",
//		AppEnv:       "production",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tr.StartSpan(ctx, "qdrant_search_vectors")
//	defer span.End()
//
//	if err != nil {
//		tr.RecordErrorOnSpan(span, err)
//	}
package tracer
