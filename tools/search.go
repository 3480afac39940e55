package tools

import (
	"context"

	"github.com/vectorops/qdrant-admin/qdrant"
)

//
// ──────────────────────────────────────────────────────────────
//   SEARCH HANDLERS
// ──────────────────────────────────────────────────────────────
//

const (
	minSearchLimit     = 1
	maxSearchLimit     = 100
	defaultSearchLimit = 10
)

// SearchVectorsRequest runs one similarity query.
type SearchVectorsRequest struct {
	Collection     string         `json:"collection,omitempty"`
	Vector         []float32      `json:"vector"`
	Limit          *int           `json:"limit,omitempty"`
	ScoreThreshold *float32       `json:"score_threshold,omitempty"`
	Filter         map[string]any `json:"filter,omitempty"`
	VectorName     string         `json:"vector_name,omitempty"`
	WithPayload    *bool          `json:"with_payload,omitempty"`
	WithVector     bool           `json:"with_vector,omitempty"`
}

// SearchVectors returns hits ordered by descending score, exactly as the
// backend ranked them.
func (s *Service) SearchVectors(ctx context.Context, req SearchVectorsRequest) Result {
	if len(req.Vector) == 0 {
		return Failure(qdrant.Validationf("vector is required"))
	}
	limit := intOr(req.Limit, defaultSearchLimit)
	if err := inRange("limit", limit, minSearchLimit, maxSearchLimit); err != nil {
		return Failure(err)
	}

	collection := s.collectionOrDefault(req.Collection)
	vectorName := stringOr(req.VectorName, qdrant.DefaultVectorName)

	hits, err := s.backend.Search(ctx, qdrant.SearchParams{
		Collection:     collection,
		Vector:         req.Vector,
		Limit:          uint64(limit),
		ScoreThreshold: req.ScoreThreshold,
		Filter:         req.Filter,
		VectorName:     vectorName,
		WithPayload:    boolOr(req.WithPayload, true),
		WithVector:     req.WithVector,
	})
	if err != nil {
		return Failure(err)
	}

	data := map[string]any{
		"collection":  collection,
		"results":     hits,
		"count":       len(hits),
		"vector_name": vectorName,
	}
	if req.ScoreThreshold != nil {
		data["score_threshold"] = *req.ScoreThreshold
	}
	return Success(data)
}

// BatchQuerySpec is one sub-query of a batched search.
type BatchQuerySpec struct {
	Vector         []float32      `json:"vector"`
	Limit          *int           `json:"limit,omitempty"`
	ScoreThreshold *float32       `json:"score_threshold,omitempty"`
	Filter         map[string]any `json:"filter,omitempty"`
}

// SearchBatchRequest runs several queries in one backend round trip.
type SearchBatchRequest struct {
	Collection  string           `json:"collection,omitempty"`
	Queries     []BatchQuerySpec `json:"queries"`
	VectorName  string           `json:"vector_name,omitempty"`
	WithPayload *bool            `json:"with_payload,omitempty"`
}

// SearchBatch validates every sub-query, then issues a single batched
// call; result sets come back in query order.
func (s *Service) SearchBatch(ctx context.Context, req SearchBatchRequest) Result {
	if len(req.Queries) == 0 {
		return Failure(qdrant.Validationf("no queries provided"))
	}

	queries := make([]qdrant.BatchQuery, 0, len(req.Queries))
	for i, q := range req.Queries {
		if len(q.Vector) == 0 {
			return Failure(qdrant.Validationf("query %d: vector is required", i))
		}
		limit := intOr(q.Limit, defaultSearchLimit)
		if err := inRange("limit", limit, minSearchLimit, maxSearchLimit); err != nil {
			return Failure(qdrant.Validationf("query %d: %s", i, err.Error()))
		}
		queries = append(queries, qdrant.BatchQuery{
			Vector:         q.Vector,
			Limit:          uint64(limit),
			ScoreThreshold: q.ScoreThreshold,
			Filter:         q.Filter,
		})
	}

	collection := s.collectionOrDefault(req.Collection)
	vectorName := stringOr(req.VectorName, qdrant.DefaultVectorName)

	batches, err := s.backend.SearchBatch(ctx, collection, queries, vectorName, boolOr(req.WithPayload, true))
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection":    collection,
		"batch_results": batches,
		"query_count":   len(queries),
	})
}

// RecommendPointsRequest finds points similar to positive examples and
// dissimilar to negative ones.
type RecommendPointsRequest struct {
	Collection     string         `json:"collection,omitempty"`
	Positive       []string       `json:"positive"`
	Negative       []string       `json:"negative,omitempty"`
	Limit          *int           `json:"limit,omitempty"`
	ScoreThreshold *float32       `json:"score_threshold,omitempty"`
	Filter         map[string]any `json:"filter,omitempty"`
	VectorName     string         `json:"vector_name,omitempty"`
	WithPayload    *bool          `json:"with_payload,omitempty"`
}

// RecommendPoints requires at least one positive example.
func (s *Service) RecommendPoints(ctx context.Context, req RecommendPointsRequest) Result {
	if len(req.Positive) == 0 {
		return Failure(qdrant.Validationf("at least one positive example is required"))
	}
	limit := intOr(req.Limit, defaultSearchLimit)
	if err := inRange("limit", limit, minSearchLimit, maxSearchLimit); err != nil {
		return Failure(err)
	}

	collection := s.collectionOrDefault(req.Collection)
	vectorName := stringOr(req.VectorName, qdrant.DefaultVectorName)

	hits, err := s.backend.Recommend(ctx, qdrant.RecommendParams{
		Collection:     collection,
		Positive:       req.Positive,
		Negative:       req.Negative,
		Limit:          uint64(limit),
		ScoreThreshold: req.ScoreThreshold,
		Filter:         req.Filter,
		VectorName:     vectorName,
		WithPayload:    boolOr(req.WithPayload, true),
	})
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection":        collection,
		"recommendations":   hits,
		"count":             len(hits),
		"positive_examples": req.Positive,
		"negative_examples": req.Negative,
	})
}
