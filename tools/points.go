package tools

import (
	"context"
	"encoding/json"

	"github.com/vectorops/qdrant-admin/qdrant"
)

//
// ──────────────────────────────────────────────────────────────
//   POINT OPERATION HANDLERS
// ──────────────────────────────────────────────────────────────
//

const (
	minScrollLimit     = 1
	maxScrollLimit     = 1000
	defaultScrollLimit = 100
)

// CountPointsRequest counts points, optionally filtered. Exact counting
// is opt-in; the default is the fast approximate count.
type CountPointsRequest struct {
	Collection string         `json:"collection,omitempty"`
	Exact      bool           `json:"exact,omitempty"`
	Filter     map[string]any `json:"filter,omitempty"`
}

// CountPoints reports how many points match.
func (s *Service) CountPoints(ctx context.Context, req CountPointsRequest) Result {
	collection := s.collectionOrDefault(req.Collection)

	count, err := s.backend.CountPoints(ctx, collection, req.Filter, req.Exact)
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection": collection,
		"count":      count,
		"exact":      req.Exact,
	})
}

// GetPointsRequest retrieves points by caller identifier.
type GetPointsRequest struct {
	Collection  string   `json:"collection,omitempty"`
	IDs         []string `json:"ids"`
	WithPayload *bool    `json:"with_payload,omitempty"`
	WithVector  bool     `json:"with_vector,omitempty"`
}

// GetPoints looks up specific points. Identifiers that match nothing are
// absent from the result; the caller compares found_count against
// requested_count.
func (s *Service) GetPoints(ctx context.Context, req GetPointsRequest) Result {
	if len(req.IDs) == 0 {
		return Failure(qdrant.Validationf("ids is required"))
	}
	collection := s.collectionOrDefault(req.Collection)
	withPayload := boolOr(req.WithPayload, true)

	points, err := s.backend.GetPoints(ctx, collection, req.IDs, withPayload, req.WithVector)
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection":      collection,
		"points":          points,
		"found_count":     len(points),
		"requested_count": len(req.IDs),
	})
}

// ScrollPointsRequest pages through a collection. Offset is the opaque
// cursor from the previous page.
type ScrollPointsRequest struct {
	Collection  string         `json:"collection,omitempty"`
	Limit       *int           `json:"limit,omitempty"`
	Offset      string         `json:"offset,omitempty"`
	Filter      map[string]any `json:"filter,omitempty"`
	WithPayload *bool          `json:"with_payload,omitempty"`
	WithVector  bool           `json:"with_vector,omitempty"`
}

// ScrollPoints returns one page and the cursor for the next one;
// has_more is false exactly on the final page.
func (s *Service) ScrollPoints(ctx context.Context, req ScrollPointsRequest) Result {
	limit := intOr(req.Limit, defaultScrollLimit)
	if err := inRange("limit", limit, minScrollLimit, maxScrollLimit); err != nil {
		return Failure(err)
	}
	collection := s.collectionOrDefault(req.Collection)

	points, next, err := s.backend.ScrollPoints(ctx, qdrant.ScrollParams{
		Collection:  collection,
		Limit:       uint32(limit),
		Cursor:      req.Offset,
		Filter:      req.Filter,
		WithPayload: boolOr(req.WithPayload, true),
		WithVector:  req.WithVector,
	})
	if err != nil {
		return Failure(err)
	}

	data := map[string]any{
		"collection": collection,
		"points":     points,
		"count":      len(points),
		"has_more":   next != "",
	}
	if next != "" {
		data["next_offset"] = next
	}
	return Success(data)
}

// VectorSpec accepts either a bare dense vector or named vectors keyed by
// slot. Exactly one form is present after decoding.
type VectorSpec struct {
	Dense []float32
	Named map[string][]float32
}

// UnmarshalJSON decodes the two accepted shapes: a JSON array of numbers
// or a JSON object mapping slot names to arrays.
func (v *VectorSpec) UnmarshalJSON(data []byte) error {
	var dense []float32
	if err := json.Unmarshal(data, &dense); err == nil {
		v.Dense = dense
		v.Named = nil
		return nil
	}
	var named map[string][]float32
	if err := json.Unmarshal(data, &named); err != nil {
		return err
	}
	v.Dense = nil
	v.Named = named
	return nil
}

func (v VectorSpec) empty() bool {
	if len(v.Dense) > 0 {
		return false
	}
	for _, vec := range v.Named {
		if len(vec) > 0 {
			return false
		}
	}
	return true
}

// PointSpec is one point of an upsert batch.
type PointSpec struct {
	ID      string         `json:"id"`
	Vector  VectorSpec     `json:"vector"`
	Payload map[string]any `json:"payload,omitempty"`
}

// UpsertPointsRequest inserts or replaces a batch of points.
type UpsertPointsRequest struct {
	Collection string      `json:"collection,omitempty"`
	Points     []PointSpec `json:"points"`
	Wait       *bool       `json:"wait,omitempty"`
}

// UpsertPoints validates the whole batch before anything is sent: one
// malformed point rejects the entire request, so a batch is never
// partially applied due to local validation.
func (s *Service) UpsertPoints(ctx context.Context, req UpsertPointsRequest) Result {
	if len(req.Points) == 0 {
		return Failure(qdrant.Validationf("no points provided"))
	}

	inputs := make([]qdrant.PointInput, 0, len(req.Points))
	for i, p := range req.Points {
		if p.ID == "" {
			return Failure(qdrant.Validationf("point %d: id is required", i))
		}
		if p.Vector.empty() {
			return Failure(qdrant.Validationf("point %d: vector is required", i))
		}
		inputs = append(inputs, qdrant.PointInput{
			ID:      p.ID,
			Dense:   p.Vector.Dense,
			Named:   p.Vector.Named,
			Payload: p.Payload,
		})
	}

	collection := s.collectionOrDefault(req.Collection)
	count, err := s.backend.UpsertPoints(ctx, collection, inputs, boolOr(req.Wait, true))
	if err != nil {
		return Failure(err)
	}
	return Success(map[string]any{
		"collection":     collection,
		"upserted_count": count,
		"operation":      "upsert",
	})
}

// DeletePointsRequest selects points by ids or filter. When both are
// given, ids win.
type DeletePointsRequest struct {
	Collection string         `json:"collection,omitempty"`
	IDs        []string       `json:"ids,omitempty"`
	Filter     map[string]any `json:"filter,omitempty"`
	Wait       *bool          `json:"wait,omitempty"`
}

// DeletePoints removes selected points. Supplying neither selector is a
// precondition failure caught before any backend contact.
func (s *Service) DeletePoints(ctx context.Context, req DeletePointsRequest) Result {
	if len(req.IDs) == 0 && len(req.Filter) == 0 {
		return Failure(qdrant.Preconditionf("either ids or filter must be provided"))
	}
	collection := s.collectionOrDefault(req.Collection)

	mode, err := s.backend.DeletePoints(ctx, collection, req.IDs, req.Filter, boolOr(req.Wait, true))
	if err != nil {
		return Failure(err)
	}

	data := map[string]any{
		"collection": collection,
		"operation":  "delete",
		"deleted_by": mode,
	}
	if len(req.IDs) > 0 {
		data["ids_count"] = len(req.IDs)
	}
	return Success(data)
}
