package qdrant

import (
	"context"

	qdrant "github.com/qdrant/go-client/qdrant"
)

//
// ──────────────────────────────────────────────────────────────
//   SIMILARITY QUERIES
// ──────────────────────────────────────────────────────────────
//

// usingSlot resolves the vector slot a query runs against, falling back
// to the default dense slot when the caller names none.
func usingSlot(vectorName string) *string {
	if vectorName == "" {
		return qdrant.PtrOf(DefaultVectorName)
	}
	return qdrant.PtrOf(vectorName)
}

// Search runs a single similarity query and returns hits in backend
// order, best first. A score threshold, when set, drops hits below it on
// the backend side.
func (c *Client) Search(ctx context.Context, params SearchParams) ([]SearchHit, error) {
	filter, err := TranslateFilter(params.Filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	hits, err := c.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: params.Collection,
		Query:          qdrant.NewQuery(params.Vector...),
		Using:          usingSlot(params.VectorName),
		Limit:          qdrant.PtrOf(params.Limit),
		ScoreThreshold: params.ScoreThreshold,
		Filter:         filter,
		WithPayload:    qdrant.NewWithPayload(params.WithPayload),
		WithVectors:    qdrant.NewWithVectors(params.WithVector),
	})
	if err != nil {
		return nil, backendError("search", params.Collection, err)
	}
	return scoredToHits(hits, params.WithPayload, params.WithVector), nil
}

// SearchBatch runs several queries against one collection in a single
// backend round trip. Result sets come back in query order; per-query
// limits and filters apply independently.
func (c *Client) SearchBatch(ctx context.Context, collection string, queries []BatchQuery, vectorName string, withPayload bool) ([][]SearchHit, error) {
	points := make([]*qdrant.QueryPoints, 0, len(queries))
	for i, q := range queries {
		filter, err := TranslateFilter(q.Filter)
		if err != nil {
			return nil, Validationf("query %d: %s", i, err.Error())
		}
		points = append(points, &qdrant.QueryPoints{
			CollectionName: collection,
			Query:          qdrant.NewQuery(q.Vector...),
			Using:          usingSlot(vectorName),
			Limit:          qdrant.PtrOf(q.Limit),
			ScoreThreshold: q.ScoreThreshold,
			Filter:         filter,
			WithPayload:    qdrant.NewWithPayload(withPayload),
		})
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	results, err := c.api.QueryBatch(ctx, &qdrant.QueryBatchPoints{
		CollectionName: collection,
		QueryPoints:    points,
	})
	if err != nil {
		return nil, backendError("batch search", collection, err)
	}

	batches := make([][]SearchHit, len(results))
	for i, result := range results {
		batches[i] = scoredToHits(result.GetResult(), withPayload, false)
	}
	return batches, nil
}

// Recommend runs an example-based query: stored points serve as positive
// and negative anchors instead of a raw vector. Example identifiers go
// through the same normalization as every other caller identifier.
func (c *Client) Recommend(ctx context.Context, params RecommendParams) ([]SearchHit, error) {
	filter, err := TranslateFilter(params.Filter)
	if err != nil {
		return nil, err
	}

	input := &qdrant.RecommendInput{}
	for _, id := range normalizePointIDs(params.Positive) {
		input.Positive = append(input.Positive, qdrant.NewVectorInputID(qdrant.NewID(id)))
	}
	for _, id := range normalizePointIDs(params.Negative) {
		input.Negative = append(input.Negative, qdrant.NewVectorInputID(qdrant.NewID(id)))
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	hits, err := c.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: params.Collection,
		Query:          qdrant.NewQueryRecommend(input),
		Using:          usingSlot(params.VectorName),
		Limit:          qdrant.PtrOf(params.Limit),
		ScoreThreshold: params.ScoreThreshold,
		Filter:         filter,
		WithPayload:    qdrant.NewWithPayload(params.WithPayload),
	})
	if err != nil {
		return nil, backendError("recommend", params.Collection, err)
	}
	return scoredToHits(hits, params.WithPayload, false), nil
}
