package tools

import "context"

//
// ──────────────────────────────────────────────────────────────
//   MAINTENANCE HANDLERS
// ──────────────────────────────────────────────────────────────
//

// OptimizeCollectionRequest triggers an optimization round. Waiting is
// opt-in; large collections should not wait.
type OptimizeCollectionRequest struct {
	Collection string `json:"collection,omitempty"`
	Wait       bool   `json:"wait,omitempty"`
}

// OptimizeCollection forces segment merging and index rebuilds. With
// wait set, the handler reports whether the optimizer settled within the
// bounded wait; running out the deadline is an in-progress report, not an
// error.
func (s *Service) OptimizeCollection(ctx context.Context, req OptimizeCollectionRequest) Result {
	collection := s.collectionOrDefault(req.Collection)

	report, err := s.backend.Optimize(ctx, collection, req.Wait)
	if err != nil {
		return Failure(err)
	}
	return Success(report)
}

// CreateSnapshotRequest snapshots one collection.
type CreateSnapshotRequest struct {
	Collection string `json:"collection,omitempty"`
}

// CreateSnapshot takes a backup snapshot of a collection.
func (s *Service) CreateSnapshot(ctx context.Context, req CreateSnapshotRequest) Result {
	collection := s.collectionOrDefault(req.Collection)

	snapshot, err := s.backend.CreateSnapshot(ctx, collection)
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection":    collection,
		"snapshot_name": snapshot.Name,
		"size_bytes":    snapshot.SizeBytes,
		"creation_time": snapshot.CreationTime,
	})
}

// ListSnapshotsRequest lists the snapshots of one collection.
type ListSnapshotsRequest struct {
	Collection string `json:"collection,omitempty"`
}

// ListSnapshots reports snapshot names, sizes, and creation times.
func (s *Service) ListSnapshots(ctx context.Context, req ListSnapshotsRequest) Result {
	collection := s.collectionOrDefault(req.Collection)

	snapshots, err := s.backend.ListSnapshots(ctx, collection)
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection": collection,
		"snapshots":  snapshots,
		"count":      len(snapshots),
	})
}

// GetClusterInfoRequest has no arguments.
type GetClusterInfoRequest struct{}

// GetClusterInfo aggregates instance identification with per-collection
// summaries; individual lookup failures degrade their entry instead of
// failing the report.
func (s *Service) GetClusterInfo(ctx context.Context, _ GetClusterInfoRequest) Result {
	report, err := s.backend.ClusterInfo(ctx)
	if err != nil {
		return Failure(err)
	}
	return Success(report)
}

// HealthCheckRequest has no arguments.
type HealthCheckRequest struct{}

// HealthCheck probes connectivity and API responsiveness. An unhealthy
// backend is still a success envelope; the report carries the status.
func (s *Service) HealthCheck(ctx context.Context, _ HealthCheckRequest) Result {
	return Success(s.backend.Health(ctx))
}
