package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/vectorops/qdrant-admin/logger"
	"github.com/vectorops/qdrant-admin/metrics"
	"github.com/vectorops/qdrant-admin/qdrant"
	"github.com/vectorops/qdrant-admin/tools"
	"github.com/vectorops/qdrant-admin/tracer"
)

// handlerFunc adapts one typed operation handler to the loose argument
// bag of the boundary. Decoding into the typed request happens here and
// nowhere else.
type handlerFunc func(ctx context.Context, args json.RawMessage) tools.Result

// Dispatcher routes named operations to their handlers and records one
// metric observation and one trace span per invocation.
type Dispatcher struct {
	handlers map[string]handlerFunc
	log      *logger.Logger
	metrics  *metrics.Metrics
	tracer   *tracer.Tracer
}

// NewDispatcher registers every operation under its boundary name.
func NewDispatcher(svc *tools.Service, log *logger.Logger, m *metrics.Metrics, tr *tracer.Tracer) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string]handlerFunc),
		log:      log,
		metrics:  m,
		tracer:   tr,
	}

	register(d, "qdrant_list_collections", svc.ListCollections)
	register(d, "qdrant_create_collection", svc.CreateCollection)
	register(d, "qdrant_delete_collection", svc.DeleteCollection)
	register(d, "qdrant_get_collection_info", svc.GetCollectionInfo)
	register(d, "qdrant_update_collection", svc.UpdateCollection)

	register(d, "qdrant_count_points", svc.CountPoints)
	register(d, "qdrant_get_points", svc.GetPoints)
	register(d, "qdrant_scroll_points", svc.ScrollPoints)
	register(d, "qdrant_upsert_points", svc.UpsertPoints)
	register(d, "qdrant_delete_points", svc.DeletePoints)

	register(d, "qdrant_search_vectors", svc.SearchVectors)
	register(d, "qdrant_search_batch", svc.SearchBatch)
	register(d, "qdrant_recommend_points", svc.RecommendPoints)

	register(d, "qdrant_optimize_collection", svc.OptimizeCollection)
	register(d, "qdrant_create_snapshot", svc.CreateSnapshot)
	register(d, "qdrant_list_snapshots", svc.ListSnapshots)
	register(d, "qdrant_get_cluster_info", svc.GetClusterInfo)
	register(d, "qdrant_health_check", svc.HealthCheck)

	return d
}

// register binds a typed handler under a boundary name. Malformed
// argument bags become validation-kind error envelopes.
func register[T any](d *Dispatcher, name string, h func(context.Context, T) tools.Result) {
	d.handlers[name] = func(ctx context.Context, args json.RawMessage) tools.Result {
		var req T
		if len(args) > 0 {
			if err := json.Unmarshal(args, &req); err != nil {
				return tools.Failure(qdrant.Validationf("invalid arguments: %s", err.Error()))
			}
		}
		return h(ctx, req)
	}
}

// Invoke runs one named operation. Every outcome, including an unknown
// operation name or a handler panic, comes back as an envelope; nothing
// escapes as a fault.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args json.RawMessage) (result tools.Result) {
	start := time.Now()

	ctx, span := d.tracer.StartSpan(ctx, name)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("internal error in %s: %v", name, r)
			d.log.Error("handler panicked", err, map[string]interface{}{"tool": name})
			d.tracer.RecordErrorOnSpan(span, err)
			result = tools.Failure(err)
		}
		d.metrics.ObserveInvocation(name, result.Status, start)
	}()

	handler, ok := d.handlers[name]
	if !ok {
		err := qdrant.Validationf("unknown tool %q", name)
		d.tracer.RecordErrorOnSpan(span, err)
		return tools.Failure(err)
	}

	result = handler(ctx, args)
	if !result.OK() {
		d.tracer.RecordErrorOnSpan(span, fmt.Errorf("%s", result.Error))
		d.log.Warn("tool invocation failed", nil, map[string]interface{}{
			"tool":       name,
			"error":      result.Error,
			"error_kind": string(result.Kind),
		})
	} else {
		d.log.Debug("tool invocation succeeded", nil, map[string]interface{}{
			"tool":        name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	return result
}

// Tools returns the registered operation names, sorted.
func (d *Dispatcher) Tools() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
