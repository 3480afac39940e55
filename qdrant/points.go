package qdrant

import (
	"context"

	qdrant "github.com/qdrant/go-client/qdrant"
)

//
// ──────────────────────────────────────────────────────────────
//   POINT OPERATIONS
// ──────────────────────────────────────────────────────────────
//

// originalIDField is the payload key under which the caller-supplied
// identifier is preserved. Identifier normalization is one-way, so this
// field is the only way to recover the original id from a stored point.
const originalIDField = "original_id"

// CountPoints returns the number of points in a collection, optionally
// restricted by a filter. Counting is approximate unless the caller asks
// for an exact count explicitly.
func (c *Client) CountPoints(ctx context.Context, collection string, rawFilter map[string]any, exact bool) (uint64, error) {
	filter, err := TranslateFilter(rawFilter)
	if err != nil {
		return 0, err
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	count, err := c.api.Count(ctx, &qdrant.CountPoints{
		CollectionName: collection,
		Filter:         filter,
		Exact:          qdrant.PtrOf(exact),
	})
	if err != nil {
		return 0, backendError("count points", collection, err)
	}
	return count, nil
}

// GetPoints retrieves specific points by caller identifier. Identifiers
// are normalized before lookup; identifiers that match no stored point are
// silently absent from the result, the caller compares requested and
// returned counts.
func (c *Client) GetPoints(ctx context.Context, collection string, callerIDs []string, withPayload, withVector bool) ([]PointRecord, error) {
	ids := make([]*qdrant.PointId, 0, len(callerIDs))
	for _, id := range normalizePointIDs(callerIDs) {
		ids = append(ids, qdrant.NewID(id))
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	points, err := c.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            ids,
		WithPayload:    qdrant.NewWithPayload(withPayload),
		WithVectors:    qdrant.NewWithVectors(withVector),
	})
	if err != nil {
		return nil, backendError("retrieve points", collection, err)
	}
	return retrievedToRecords(points, withPayload, withVector), nil
}

// ScrollPoints pages through a collection in stable id order. The
// returned cursor resumes the listing; an empty cursor means the listing
// is exhausted.
func (c *Client) ScrollPoints(ctx context.Context, params ScrollParams) ([]PointRecord, string, error) {
	filter, err := TranslateFilter(params.Filter)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	req := &qdrant.ScrollPoints{
		CollectionName: params.Collection,
		Filter:         filter,
		Limit:          qdrant.PtrOf(params.Limit),
		Offset:         decodeCursor(params.Cursor),
		WithPayload:    qdrant.NewWithPayload(params.WithPayload),
		WithVectors:    qdrant.NewWithVectors(params.WithVector),
	}

	points, next, err := c.api.Scroll(ctx, req)
	if err != nil {
		return nil, "", backendError("scroll points", params.Collection, err)
	}
	return retrievedToRecords(points, params.WithPayload, params.WithVector), encodeCursor(next), nil
}

// UpsertPoints inserts or replaces a batch of points atomically from the
// caller's perspective: inputs are validated upstream as a whole, and the
// batch is forwarded in a single call. Each point's payload carries the
// original caller identifier so it survives normalization. When wait is
// set the call returns only after the change is persisted.
func (c *Client) UpsertPoints(ctx context.Context, collection string, points []PointInput, wait bool) (int, error) {
	structs := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		payload := make(map[string]any, len(p.Payload)+1)
		for k, v := range p.Payload {
			payload[k] = v
		}
		payload[originalIDField] = p.ID

		structs = append(structs, &qdrant.PointStruct{
			Id:      qdrant.NewID(NormalizePointID(p.ID)),
			Payload: qdrant.NewValueMap(payload),
			Vectors: pointVectors(p),
		})
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	_, err := c.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Wait:           qdrant.PtrOf(wait),
		Points:         structs,
	})
	if err != nil {
		return 0, backendError("upsert points", collection, err)
	}

	c.log.Info("points upserted", nil, map[string]interface{}{
		"collection": collection,
		"count":      len(structs),
	})
	return len(structs), nil
}

// DeletePoints removes points selected either by explicit identifiers or
// by filter. When both selectors are present the identifier list wins and
// the filter is ignored; the returned mode names which selector applied.
func (c *Client) DeletePoints(ctx context.Context, collection string, callerIDs []string, rawFilter map[string]any, wait bool) (string, error) {
	var selector *qdrant.PointsSelector
	mode := "ids"

	switch {
	case len(callerIDs) > 0:
		ids := make([]*qdrant.PointId, 0, len(callerIDs))
		for _, id := range normalizePointIDs(callerIDs) {
			ids = append(ids, qdrant.NewID(id))
		}
		selector = qdrant.NewPointsSelector(ids...)
	default:
		filter, err := TranslateFilter(rawFilter)
		if err != nil {
			return "", err
		}
		if filter == nil {
			return "", Preconditionf("either ids or filter must be provided")
		}
		selector = qdrant.NewPointsSelectorFilter(filter)
		mode = "filter"
	}

	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	_, err := c.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points:         selector,
		Wait:           qdrant.PtrOf(wait),
	})
	if err != nil {
		return "", backendError("delete points", collection, err)
	}

	c.log.Info("points deleted", nil, map[string]interface{}{
		"collection": collection,
		"deleted_by": mode,
	})
	return mode, nil
}
