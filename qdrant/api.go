package qdrant

import (
	"context"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// API is the narrow seam over the official Qdrant gRPC client, covering
// exactly the calls this service issues. The concrete implementation is
// grpcAPI; tests substitute the generated mock.
//
//go:generate mockgen -source=api.go -destination=mock_api.go -package=qdrant
type API interface {
	ListCollections(ctx context.Context) ([]string, error)
	CollectionExists(ctx context.Context, name string) (bool, error)
	GetCollectionInfo(ctx context.Context, name string) (*qdrant.CollectionInfo, error)
	CreateCollection(ctx context.Context, req *qdrant.CreateCollection) error
	DeleteCollection(ctx context.Context, name string) error
	UpdateCollection(ctx context.Context, req *qdrant.UpdateCollection) error

	Count(ctx context.Context, req *qdrant.CountPoints) (uint64, error)
	Get(ctx context.Context, req *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error)
	// Scroll returns one page plus the backend-issued resume offset,
	// nil when the listing is exhausted.
	Scroll(ctx context.Context, req *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, *qdrant.PointId, error)
	Upsert(ctx context.Context, req *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
	Delete(ctx context.Context, req *qdrant.DeletePoints) (*qdrant.UpdateResult, error)

	Query(ctx context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
	QueryBatch(ctx context.Context, req *qdrant.QueryBatchPoints) ([]*qdrant.BatchResult, error)

	CreateSnapshot(ctx context.Context, collection string) (*qdrant.SnapshotDescription, error)
	ListSnapshots(ctx context.Context, collection string) ([]*qdrant.SnapshotDescription, error)
	HealthCheck(ctx context.Context) (*qdrant.HealthCheckReply, error)
}

// grpcAPI adapts *qdrant.Client to the API seam.
type grpcAPI struct {
	api *qdrant.Client
}

func newGrpcAPI(api *qdrant.Client) *grpcAPI {
	return &grpcAPI{api: api}
}

func (g *grpcAPI) ListCollections(ctx context.Context) ([]string, error) {
	return g.api.ListCollections(ctx)
}

func (g *grpcAPI) CollectionExists(ctx context.Context, name string) (bool, error) {
	return g.api.CollectionExists(ctx, name)
}

func (g *grpcAPI) GetCollectionInfo(ctx context.Context, name string) (*qdrant.CollectionInfo, error) {
	return g.api.GetCollectionInfo(ctx, name)
}

func (g *grpcAPI) CreateCollection(ctx context.Context, req *qdrant.CreateCollection) error {
	return g.api.CreateCollection(ctx, req)
}

func (g *grpcAPI) DeleteCollection(ctx context.Context, name string) error {
	return g.api.DeleteCollection(ctx, name)
}

func (g *grpcAPI) UpdateCollection(ctx context.Context, req *qdrant.UpdateCollection) error {
	return g.api.UpdateCollection(ctx, req)
}

func (g *grpcAPI) Count(ctx context.Context, req *qdrant.CountPoints) (uint64, error) {
	return g.api.Count(ctx, req)
}

func (g *grpcAPI) Get(ctx context.Context, req *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error) {
	return g.api.Get(ctx, req)
}

// Scroll goes through the low-level points client; the high-level helper
// discards the next-page offset this layer needs for cursoring.
func (g *grpcAPI) Scroll(ctx context.Context, req *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, *qdrant.PointId, error) {
	resp, err := g.api.GetPointsClient().Scroll(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return resp.GetResult(), resp.GetNextPageOffset(), nil
}

func (g *grpcAPI) Upsert(ctx context.Context, req *qdrant.UpsertPoints) (*qdrant.UpdateResult, error) {
	return g.api.Upsert(ctx, req)
}

func (g *grpcAPI) Delete(ctx context.Context, req *qdrant.DeletePoints) (*qdrant.UpdateResult, error) {
	return g.api.Delete(ctx, req)
}

func (g *grpcAPI) Query(ctx context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
	return g.api.Query(ctx, req)
}

func (g *grpcAPI) QueryBatch(ctx context.Context, req *qdrant.QueryBatchPoints) ([]*qdrant.BatchResult, error) {
	return g.api.QueryBatch(ctx, req)
}

func (g *grpcAPI) CreateSnapshot(ctx context.Context, collection string) (*qdrant.SnapshotDescription, error) {
	return g.api.CreateSnapshot(ctx, collection)
}

func (g *grpcAPI) ListSnapshots(ctx context.Context, collection string) ([]*qdrant.SnapshotDescription, error) {
	return g.api.ListSnapshots(ctx, collection)
}

func (g *grpcAPI) HealthCheck(ctx context.Context) (*qdrant.HealthCheckReply, error) {
	return g.api.HealthCheck(ctx)
}

func (g *grpcAPI) Close() error {
	return g.api.Close()
}
