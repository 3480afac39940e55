package tools

import (
	"context"
	"fmt"

	"github.com/vectorops/qdrant-admin/qdrant"
)

//
// ──────────────────────────────────────────────────────────────
//   COLLECTION MANAGEMENT HANDLERS
// ──────────────────────────────────────────────────────────────
//

// Parameter bounds for collection creation and updates.
const (
	minVectorSize  = 1
	maxVectorSize  = 65536
	minHnswM       = 4
	maxHnswM       = 128
	minEfConstruct = 4
	maxEfConstruct = 512

	defaultVectorSize  = 384
	defaultDistance    = "cosine"
	defaultHnswM       = 16
	defaultEfConstruct = 100
)

// ListCollectionsRequest has no arguments.
type ListCollectionsRequest struct{}

// ListCollections reports every collection with basic statistics.
func (s *Service) ListCollections(ctx context.Context, _ ListCollectionsRequest) Result {
	collections, err := s.backend.ListCollections(ctx)
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collections": collections,
		"total_count": len(collections),
	})
}

// CreateCollectionRequest configures a new collection. Omitted numeric
// fields take the documented defaults.
type CreateCollectionRequest struct {
	Name            string `json:"name"`
	VectorSize      *int   `json:"vector_size,omitempty"`
	Distance        string `json:"distance,omitempty"`
	OnDisk          bool   `json:"on_disk,omitempty"`
	HnswM           *int   `json:"hnsw_m,omitempty"`
	HnswEfConstruct *int   `json:"hnsw_ef_construct,omitempty"`
	EnableSparse    bool   `json:"enable_sparse,omitempty"`
}

// CreateCollection provisions a new collection after validating every
// parameter locally. Creating an existing name fails; it never silently
// overwrites.
func (s *Service) CreateCollection(ctx context.Context, req CreateCollectionRequest) Result {
	if req.Name == "" {
		return Failure(qdrant.Validationf("name is required"))
	}

	vectorSize := intOr(req.VectorSize, defaultVectorSize)
	hnswM := intOr(req.HnswM, defaultHnswM)
	efConstruct := intOr(req.HnswEfConstruct, defaultEfConstruct)
	// the response echoes the metric actually applied, not the raw input
	distance := qdrant.NormalizeDistance(stringOr(req.Distance, defaultDistance))

	if err := inRange("vector_size", vectorSize, minVectorSize, maxVectorSize); err != nil {
		return Failure(err)
	}
	if err := inRange("hnsw_m", hnswM, minHnswM, maxHnswM); err != nil {
		return Failure(err)
	}
	if err := inRange("hnsw_ef_construct", efConstruct, minEfConstruct, maxEfConstruct); err != nil {
		return Failure(err)
	}

	err := s.backend.CreateCollection(ctx, qdrant.CreateCollectionParams{
		Name:            req.Name,
		VectorSize:      uint64(vectorSize),
		Distance:        distance,
		OnDisk:          req.OnDisk,
		HnswM:           uint64(hnswM),
		HnswEfConstruct: uint64(efConstruct),
		EnableSparse:    req.EnableSparse,
	})
	if err != nil {
		return Failure(err)
	}

	return Success(map[string]any{
		"message": fmt.Sprintf("Collection '%s' created successfully", req.Name),
		"config": map[string]any{
			"name":              req.Name,
			"vector_size":       vectorSize,
			"distance":          distance,
			"on_disk":           req.OnDisk,
			"hnsw_m":            hnswM,
			"hnsw_ef_construct": efConstruct,
			"sparse_enabled":    req.EnableSparse,
		},
	})
}

// DeleteCollectionRequest names the collection and carries the explicit
// confirmation flag.
type DeleteCollectionRequest struct {
	Name    string `json:"name"`
	Confirm bool   `json:"confirm,omitempty"`
}

// DeleteCollection irreversibly removes a collection. The confirmation
// flag is checked before anything touches the backend.
func (s *Service) DeleteCollection(ctx context.Context, req DeleteCollectionRequest) Result {
	if req.Name == "" {
		return Failure(qdrant.Validationf("name is required"))
	}
	if !req.Confirm {
		return Failure(qdrant.Preconditionf("deletion requires confirm=true to prevent accidental data loss"))
	}

	deleted, err := s.backend.DeleteCollection(ctx, req.Name)
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"message":        fmt.Sprintf("Collection '%s' deleted successfully", req.Name),
		"deleted_points": deleted,
	})
}

// GetCollectionInfoRequest names the collection to inspect.
type GetCollectionInfoRequest struct {
	Name string `json:"name"`
}

// GetCollectionInfo returns the normalized configuration and counters.
func (s *Service) GetCollectionInfo(ctx context.Context, req GetCollectionInfoRequest) Result {
	if req.Name == "" {
		return Failure(qdrant.Validationf("name is required"))
	}

	detail, err := s.backend.CollectionInfo(ctx, req.Name)
	if err != nil {
		return Failure(err)
	}
	return Success(detail)
}

// UpdateCollectionRequest is a configuration diff; only present fields
// are applied.
type UpdateCollectionRequest struct {
	Name              string `json:"name"`
	HnswM             *int   `json:"hnsw_m,omitempty"`
	HnswEfConstruct   *int   `json:"hnsw_ef_construct,omitempty"`
	IndexingThreshold *int   `json:"indexing_threshold,omitempty"`
	FlushIntervalSec  *int   `json:"flush_interval_sec,omitempty"`
}

// UpdateCollection applies a validated configuration diff. An empty diff
// is rejected.
func (s *Service) UpdateCollection(ctx context.Context, req UpdateCollectionRequest) Result {
	if req.Name == "" {
		return Failure(qdrant.Validationf("name is required"))
	}

	params := qdrant.UpdateCollectionParams{Name: req.Name}
	changed := []string{}

	if req.HnswM != nil {
		if err := inRange("hnsw_m", *req.HnswM, minHnswM, maxHnswM); err != nil {
			return Failure(err)
		}
		params.HnswM = qdrantUint(*req.HnswM)
		changed = append(changed, "hnsw_m")
	}
	if req.HnswEfConstruct != nil {
		if err := inRange("hnsw_ef_construct", *req.HnswEfConstruct, minEfConstruct, maxEfConstruct); err != nil {
			return Failure(err)
		}
		params.HnswEfConstruct = qdrantUint(*req.HnswEfConstruct)
		changed = append(changed, "hnsw_ef_construct")
	}
	if req.IndexingThreshold != nil {
		if *req.IndexingThreshold < 0 {
			return Failure(qdrant.Validationf("indexing_threshold must not be negative, got %d", *req.IndexingThreshold))
		}
		params.IndexingThreshold = qdrantUint(*req.IndexingThreshold)
		changed = append(changed, "indexing_threshold")
	}
	if req.FlushIntervalSec != nil {
		if *req.FlushIntervalSec < 0 {
			return Failure(qdrant.Validationf("flush_interval_sec must not be negative, got %d", *req.FlushIntervalSec))
		}
		params.FlushIntervalSec = qdrantUint(*req.FlushIntervalSec)
		changed = append(changed, "flush_interval_sec")
	}

	if err := s.backend.UpdateCollection(ctx, params); err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"message":        fmt.Sprintf("Collection '%s' updated successfully", req.Name),
		"updated_fields": changed,
	})
}

func qdrantUint(v int) *uint64 {
	u := uint64(v)
	return &u
}
