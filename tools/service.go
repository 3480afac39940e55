package tools

import (
	"context"

	"go.uber.org/fx"

	"github.com/vectorops/qdrant-admin/qdrant"
)

// Backend is the adapter surface the operation handlers run against.
// *qdrant.Client implements it; tests substitute the generated mock.
//
//go:generate mockgen -source=service.go -destination=mock_backend.go -package=tools
type Backend interface {
	ListCollections(ctx context.Context) ([]qdrant.CollectionSummary, error)
	CreateCollection(ctx context.Context, params qdrant.CreateCollectionParams) error
	DeleteCollection(ctx context.Context, name string) (uint64, error)
	CollectionInfo(ctx context.Context, name string) (*qdrant.CollectionDetail, error)
	UpdateCollection(ctx context.Context, params qdrant.UpdateCollectionParams) error

	CountPoints(ctx context.Context, collection string, filter map[string]any, exact bool) (uint64, error)
	GetPoints(ctx context.Context, collection string, ids []string, withPayload, withVector bool) ([]qdrant.PointRecord, error)
	ScrollPoints(ctx context.Context, params qdrant.ScrollParams) ([]qdrant.PointRecord, string, error)
	UpsertPoints(ctx context.Context, collection string, points []qdrant.PointInput, wait bool) (int, error)
	DeletePoints(ctx context.Context, collection string, ids []string, filter map[string]any, wait bool) (string, error)

	Search(ctx context.Context, params qdrant.SearchParams) ([]qdrant.SearchHit, error)
	SearchBatch(ctx context.Context, collection string, queries []qdrant.BatchQuery, vectorName string, withPayload bool) ([][]qdrant.SearchHit, error)
	Recommend(ctx context.Context, params qdrant.RecommendParams) ([]qdrant.SearchHit, error)

	Optimize(ctx context.Context, collection string, wait bool) (*qdrant.OptimizeReport, error)
	CreateSnapshot(ctx context.Context, collection string) (*qdrant.SnapshotInfo, error)
	ListSnapshots(ctx context.Context, collection string) ([]qdrant.SnapshotInfo, error)
	ClusterInfo(ctx context.Context) (*qdrant.ClusterReport, error)
	Health(ctx context.Context) *qdrant.HealthReport

	DefaultCollection() string
}

// Service holds the operation handlers. Handlers validate their typed
// request, call the backend, and shape the outcome into the envelope;
// they never let an error escape as anything but an error envelope.
type Service struct {
	backend Backend
}

// NewService wires the handlers to a backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// FXModule provides the operation service, binding *qdrant.Client as the
// backend.
var FXModule = fx.Module("tools",
	fx.Provide(
		func(client *qdrant.Client) Backend { return client },
		NewService,
	),
)

// collectionOrDefault substitutes the configured default when the caller
// names no collection.
func (s *Service) collectionOrDefault(name string) string {
	if name == "" {
		return s.backend.DefaultCollection()
	}
	return name
}

// inRange validates an integer parameter against inclusive bounds,
// producing a validation error naming the parameter.
func inRange(name string, value, min, max int) error {
	if value < min || value > max {
		return qdrant.Validationf("%s must be between %d and %d, got %d", name, min, max, value)
	}
	return nil
}

// boolOr resolves an optional boolean to its default.
func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// intOr resolves an optional integer to its default.
func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// stringOr resolves an optional string to its default.
func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
