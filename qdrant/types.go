package qdrant

// DefaultVectorName is the vector slot used when a caller supplies a bare
// vector instead of a mapping of named vectors.
const DefaultVectorName = "text-dense"

// DefaultSparseVectorName is the sparse slot created when sparse vectors
// are enabled on a collection.
const DefaultSparseVectorName = "text-sparse"

// CollectionSummary is the per-collection entry returned by the listing
// and cluster-info operations. A collection whose detail lookup failed is
// reported with status "unknown" (listing) or "error" (cluster info) and
// zeroed counts instead of aborting the whole response.
type CollectionSummary struct {
	Name                string `json:"name"`
	Status              string `json:"status"`
	PointsCount         uint64 `json:"points_count"`
	VectorsCount        uint64 `json:"vectors_count"`
	IndexedVectorsCount uint64 `json:"indexed_vectors_count"`
	SegmentsCount       uint64 `json:"segments_count"`
}

// VectorSlotInfo describes one named vector slot of a collection.
type VectorSlotInfo struct {
	Size     uint64 `json:"size"`
	Distance string `json:"distance"`
	OnDisk   bool   `json:"on_disk"`
}

// HnswInfo is the flattened HNSW index configuration.
type HnswInfo struct {
	M                 uint64 `json:"m"`
	EfConstruct       uint64 `json:"ef_construct"`
	FullScanThreshold uint64 `json:"full_scan_threshold"`
}

// CollectionDetail is the normalized full configuration of a collection.
// Backend fields that are absent render as "unknown" or zero values.
type CollectionDetail struct {
	Name                string                    `json:"name"`
	Status              string                    `json:"status"`
	PointsCount         uint64                    `json:"points_count"`
	VectorsCount        uint64                    `json:"vectors_count"`
	IndexedVectorsCount uint64                    `json:"indexed_vectors_count"`
	SegmentsCount       uint64                    `json:"segments_count"`
	VectorsConfig       map[string]VectorSlotInfo `json:"vectors_config"`
	SparseVectors       []string                  `json:"sparse_vectors,omitempty"`
	HnswConfig          HnswInfo                  `json:"hnsw_config"`
	OptimizerStatus     string                    `json:"optimizer_status"`
	PayloadSchema       map[string]string         `json:"payload_schema"`
}

// CreateCollectionParams carries the validated configuration for a new
// collection. Bounds are enforced by the caller before this layer runs.
type CreateCollectionParams struct {
	Name            string
	VectorSize      uint64
	Distance        string
	OnDisk          bool
	HnswM           uint64
	HnswEfConstruct uint64
	EnableSparse    bool
}

// UpdateCollectionParams is a configuration diff; only non-nil fields are
// applied.
type UpdateCollectionParams struct {
	Name              string
	HnswM             *uint64
	HnswEfConstruct   *uint64
	IndexingThreshold *uint64
	FlushIntervalSec  *uint64
}

// Empty reports whether the diff carries no changes.
func (p UpdateCollectionParams) Empty() bool {
	return p.HnswM == nil && p.HnswEfConstruct == nil &&
		p.IndexingThreshold == nil && p.FlushIntervalSec == nil
}

// PointRecord is one stored point shaped for the envelope. Vector is keyed
// by slot name; points stored with an unnamed vector appear under
// "default".
type PointRecord struct {
	ID      string               `json:"id"`
	Payload map[string]any       `json:"payload,omitempty"`
	Vector  map[string][]float32 `json:"vector,omitempty"`
}

// PointInput is one structurally validated point for upsert. Exactly one
// of Dense or Named is set.
type PointInput struct {
	ID      string
	Dense   []float32
	Named   map[string][]float32
	Payload map[string]any
}

// ScrollParams drives one page of a paginated listing. Cursor is the
// opaque token from the previous page, empty for the first page.
type ScrollParams struct {
	Collection  string
	Limit       uint32
	Cursor      string
	Filter      map[string]any
	WithPayload bool
	WithVector  bool
}

// SearchHit is one similarity result, ordered by the backend.
type SearchHit struct {
	ID      string               `json:"id"`
	Score   float32              `json:"score"`
	Payload map[string]any       `json:"payload,omitempty"`
	Vector  map[string][]float32 `json:"vector,omitempty"`
}

// SearchParams drives a single similarity query.
type SearchParams struct {
	Collection     string
	Vector         []float32
	Limit          uint64
	ScoreThreshold *float32
	Filter         map[string]any
	VectorName     string
	WithPayload    bool
	WithVector     bool
}

// BatchQuery is one sub-query of a batched search.
type BatchQuery struct {
	Vector         []float32
	Limit          uint64
	ScoreThreshold *float32
	Filter         map[string]any
}

// RecommendParams drives an example-based recommendation query.
type RecommendParams struct {
	Collection     string
	Positive       []string
	Negative       []string
	Limit          uint64
	ScoreThreshold *float32
	Filter         map[string]any
	VectorName     string
	WithPayload    bool
}

// OptimizeReport describes the outcome of an optimization trigger. When
// the bounded wait elapses before the optimizer settles, Complete is false
// and Message explains that work is still in progress; that is not an
// error.
type OptimizeReport struct {
	Collection     string  `json:"collection"`
	SegmentsBefore uint64  `json:"segments_before"`
	SegmentsAfter  *uint64 `json:"segments_after,omitempty"`
	Triggered      bool    `json:"optimization_triggered"`
	Complete       bool    `json:"optimization_complete"`
	Message        string  `json:"message,omitempty"`
}

// SnapshotInfo describes one backend snapshot. Name is "pending" when the
// backend has not yet assigned one; that is a valid state.
type SnapshotInfo struct {
	Name         string `json:"name"`
	SizeBytes    int64  `json:"size_bytes"`
	CreationTime string `json:"creation_time,omitempty"`
}

// ClusterReport aggregates instance-level information with per-collection
// summaries. A collection whose lookup failed appears with status "error".
type ClusterReport struct {
	URL              string              `json:"url"`
	Title            string              `json:"title"`
	Version          string              `json:"version"`
	CollectionsCount int                 `json:"collections_count"`
	TotalPoints      uint64              `json:"total_points"`
	TotalVectors     uint64              `json:"total_vectors"`
	Collections      []CollectionSummary `json:"collections"`
}

// HealthReport captures the two health probes: raw HTTP reachability and
// API responsiveness, each with round-trip latency. Status is "healthy"
// only when both probes succeed, "degraded" when the backend is reachable
// but API calls fail, and "unhealthy" when it is unreachable.
type HealthReport struct {
	Status        string  `json:"status"`
	URL           string  `json:"url"`
	HTTPOk        bool    `json:"http_ok"`
	HTTPLatencyMs float64 `json:"http_latency_ms"`
	APIOk         bool    `json:"api_ok"`
	APILatencyMs  float64 `json:"api_latency_ms"`
	Timestamp     string  `json:"timestamp"`
	Error         string  `json:"error,omitempty"`
}
