package qdrant

import (
	"context"
	"sync"

	qdrant "github.com/qdrant/go-client/qdrant"
	"golang.org/x/sync/errgroup"
)

//
// ──────────────────────────────────────────────────────────────
//   COLLECTION MANAGEMENT
// ──────────────────────────────────────────────────────────────
//

// ListCollections returns a summary for every collection on the instance.
// Detail lookups run concurrently with bounded parallelism; a collection
// whose lookup fails is reported with status "unknown" and zeroed counts
// rather than failing the whole listing.
func (c *Client) ListCollections(ctx context.Context) ([]CollectionSummary, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	names, err := c.api.ListCollections(ctx)
	if err != nil {
		return nil, backendError("list collections", "", err)
	}

	summaries := make([]CollectionSummary, len(names))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listDetailConcurrency)
	for i, name := range names {
		g.Go(func() error {
			info, infoErr := c.api.GetCollectionInfo(gctx, name)
			mu.Lock()
			defer mu.Unlock()
			if infoErr != nil {
				c.log.Warn("collection detail lookup failed", infoErr, map[string]interface{}{
					"collection": name,
				})
				summaries[i] = CollectionSummary{Name: name, Status: unknownField}
				return nil
			}
			summaries[i] = collectionSummary(name, info)
			return nil
		})
	}
	// workers only degrade entries, they never return an error
	_ = g.Wait()

	return summaries, nil
}

// CreateCollection provisions a collection with one named dense vector
// slot and, optionally, one sparse slot. Creating a name that already
// exists is a precondition failure, not an idempotent success.
func (c *Client) CreateCollection(ctx context.Context, params CreateCollectionParams) error {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, params.Name)
	if err != nil {
		return backendError("create collection", params.Name, err)
	}
	if exists {
		return Preconditionf("collection %q already exists", params.Name)
	}

	req := &qdrant.CreateCollection{
		CollectionName: params.Name,
		VectorsConfig: qdrant.NewVectorsConfigMap(map[string]*qdrant.VectorParams{
			DefaultVectorName: {
				Size:     params.VectorSize,
				Distance: parseDistance(params.Distance),
				OnDisk:   qdrant.PtrOf(params.OnDisk),
			},
		}),
		HnswConfig: &qdrant.HnswConfigDiff{
			M:           qdrant.PtrOf(params.HnswM),
			EfConstruct: qdrant.PtrOf(params.HnswEfConstruct),
		},
	}
	if params.EnableSparse {
		req.SparseVectorsConfig = qdrant.NewSparseVectorsConfig(map[string]*qdrant.SparseVectorParams{
			DefaultSparseVectorName: {},
		})
	}

	if err := c.api.CreateCollection(ctx, req); err != nil {
		return backendError("create collection", params.Name, err)
	}

	c.log.Info("collection created", nil, map[string]interface{}{
		"collection":  params.Name,
		"vector_size": params.VectorSize,
		"distance":    params.Distance,
	})
	return nil
}

// DeleteCollection removes a collection and reports how many points it
// held at deletion time. The count is best effort; a count failure does
// not block the delete.
func (c *Client) DeleteCollection(ctx context.Context, name string) (uint64, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return 0, backendError("delete collection", name, err)
	}
	if !exists {
		return 0, NotFoundf("collection %q does not exist", name)
	}

	var pointsBefore uint64
	if info, infoErr := c.api.GetCollectionInfo(ctx, name); infoErr == nil {
		pointsBefore = info.GetPointsCount()
	}

	if err := c.api.DeleteCollection(ctx, name); err != nil {
		return 0, backendError("delete collection", name, err)
	}

	c.log.Info("collection deleted", nil, map[string]interface{}{
		"collection":    name,
		"points_before": pointsBefore,
	})
	return pointsBefore, nil
}

// CollectionInfo returns the normalized configuration and counters of one
// collection.
func (c *Client) CollectionInfo(ctx context.Context, name string) (*CollectionDetail, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, name)
	if err != nil {
		return nil, backendError("collection info", name, err)
	}
	if !exists {
		return nil, NotFoundf("collection %q does not exist", name)
	}

	info, err := c.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, backendError("collection info", name, err)
	}
	return collectionDetail(name, info), nil
}

// UpdateCollection applies a configuration diff. An empty diff is a
// validation error so that a no-op call cannot masquerade as a change.
func (c *Client) UpdateCollection(ctx context.Context, params UpdateCollectionParams) error {
	if params.Empty() {
		return Validationf("no configuration changes provided")
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, params.Name)
	if err != nil {
		return backendError("update collection", params.Name, err)
	}
	if !exists {
		return NotFoundf("collection %q does not exist", params.Name)
	}

	req := &qdrant.UpdateCollection{CollectionName: params.Name}
	if params.HnswM != nil || params.HnswEfConstruct != nil {
		req.HnswConfig = &qdrant.HnswConfigDiff{
			M:           params.HnswM,
			EfConstruct: params.HnswEfConstruct,
		}
	}
	if params.IndexingThreshold != nil || params.FlushIntervalSec != nil {
		req.OptimizersConfig = &qdrant.OptimizersConfigDiff{
			IndexingThreshold: params.IndexingThreshold,
			FlushIntervalSec:  params.FlushIntervalSec,
		}
	}

	if err := c.api.UpdateCollection(ctx, req); err != nil {
		return backendError("update collection", params.Name, err)
	}

	c.log.Info("collection updated", nil, map[string]interface{}{
		"collection": params.Name,
	})
	return nil
}
