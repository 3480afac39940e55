package qdrant

import (
	"strconv"
	"strings"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// ── Identifier and cursor conversion ─────────────────────────────────────────

// extractPointID extracts a string ID from Qdrant's PointId oneof.
func extractPointID(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *qdrant.PointId_Num:
		return strconv.FormatUint(v.Num, 10)
	case *qdrant.PointId_Uuid:
		return v.Uuid
	default:
		return ""
	}
}

// encodeCursor stringifies a backend-issued scroll offset for the result
// envelope. Empty string means the listing is exhausted.
func encodeCursor(id *qdrant.PointId) string {
	return extractPointID(id)
}

// decodeCursor re-wraps a previously issued cursor string. The token is
// treated as opaque beyond the numeric/uuid distinction the encoding
// introduced; nothing else is inspected or fabricated.
func decodeCursor(cursor string) *qdrant.PointId {
	if cursor == "" {
		return nil
	}
	if num, err := strconv.ParseUint(cursor, 10, 64); err == nil {
		return qdrant.NewIDNum(num)
	}
	return qdrant.NewID(cursor)
}

// ── Payload conversion ───────────────────────────────────────────────────────

// payloadToMap converts Qdrant's protobuf payload to a generic map.
func payloadToMap(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractValue(v)
	}
	return result
}

// extractValue recursively converts a Qdrant Value to a Go native type.
func extractValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return payloadToMap(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		items := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			items[i] = extractValue(item)
		}
		return items
	default:
		return nil
	}
}

// ── Vector conversion ────────────────────────────────────────────────────────

// vectorsOutputToMap flattens Qdrant's vector output oneof into a map
// keyed by slot name. An unnamed vector appears under "default".
func vectorsOutputToMap(v *qdrant.VectorsOutput) map[string][]float32 {
	if v == nil {
		return nil
	}
	switch out := v.VectorsOptions.(type) {
	case *qdrant.VectorsOutput_Vector:
		if out.Vector == nil {
			return nil
		}
		return map[string][]float32{"default": out.Vector.Data}
	case *qdrant.VectorsOutput_Vectors:
		if out.Vectors == nil {
			return nil
		}
		result := make(map[string][]float32, len(out.Vectors.Vectors))
		for name, vec := range out.Vectors.Vectors {
			if vec != nil {
				result[name] = vec.Data
			}
		}
		return result
	default:
		return nil
	}
}

// pointVectors builds the Vectors field of an upsert from a validated
// PointInput. A bare vector is stored under the default slot name.
func pointVectors(p PointInput) *qdrant.Vectors {
	if len(p.Named) > 0 {
		named := make(map[string]*qdrant.Vector, len(p.Named))
		for name, vec := range p.Named {
			named[name] = qdrant.NewVector(vec...)
		}
		return qdrant.NewVectorsMap(named)
	}
	return qdrant.NewVectorsMap(map[string]*qdrant.Vector{
		DefaultVectorName: qdrant.NewVector(p.Dense...),
	})
}

// ── Point and hit conversion ─────────────────────────────────────────────────

func retrievedToRecords(points []*qdrant.RetrievedPoint, withPayload, withVector bool) []PointRecord {
	records := make([]PointRecord, 0, len(points))
	for _, p := range points {
		record := PointRecord{ID: extractPointID(p.GetId())}
		if withPayload {
			record.Payload = payloadToMap(p.GetPayload())
		}
		if withVector {
			record.Vector = vectorsOutputToMap(p.GetVectors())
		}
		records = append(records, record)
	}
	return records
}

func scoredToHits(points []*qdrant.ScoredPoint, withPayload, withVector bool) []SearchHit {
	hits := make([]SearchHit, 0, len(points))
	for _, p := range points {
		hit := SearchHit{
			ID:    extractPointID(p.GetId()),
			Score: p.GetScore(),
		}
		if withPayload {
			hit.Payload = payloadToMap(p.GetPayload())
		}
		if withVector {
			hit.Vector = vectorsOutputToMap(p.GetVectors())
		}
		hits = append(hits, hit)
	}
	return hits
}

// ── Collection metadata conversion ───────────────────────────────────────────

// parseDistance maps the caller-facing metric name onto the backend enum,
// defaulting to cosine on unrecognized input.
func parseDistance(distance string) qdrant.Distance {
	switch strings.ToLower(distance) {
	case "cosine":
		return qdrant.Distance_Cosine
	case "euclid", "euclidean":
		return qdrant.Distance_Euclid
	case "dot":
		return qdrant.Distance_Dot
	default:
		return qdrant.Distance_Cosine
	}
}

// NormalizeDistance canonicalizes a caller-facing metric name to the
// name of the metric actually applied, so unrecognized input is visible
// as the cosine substitution rather than echoed verbatim.
func NormalizeDistance(distance string) string {
	return strings.ToLower(parseDistance(distance).String())
}

const unknownField = "unknown"

// collectionSummary flattens CollectionInfo counters for the listing and
// cluster views.
func collectionSummary(name string, info *qdrant.CollectionInfo) CollectionSummary {
	return CollectionSummary{
		Name:                name,
		Status:              collectionStatus(info),
		PointsCount:         info.GetPointsCount(),
		VectorsCount:        info.GetVectorsCount(),
		IndexedVectorsCount: info.GetIndexedVectorsCount(),
		SegmentsCount:       info.GetSegmentsCount(),
	}
}

// collectionDetail normalizes the deeply nested CollectionInfo protobuf
// into the flat descriptive shape of the info operation. Absent fields
// render as "unknown" rather than propagating nils.
func collectionDetail(name string, info *qdrant.CollectionInfo) *CollectionDetail {
	detail := &CollectionDetail{
		Name:                name,
		Status:              collectionStatus(info),
		PointsCount:         info.GetPointsCount(),
		VectorsCount:        info.GetVectorsCount(),
		IndexedVectorsCount: info.GetIndexedVectorsCount(),
		SegmentsCount:       info.GetSegmentsCount(),
		VectorsConfig:       map[string]VectorSlotInfo{},
		OptimizerStatus:     unknownField,
		PayloadSchema:       map[string]string{},
	}

	params := info.GetConfig().GetParams()
	switch cfg := params.GetVectorsConfig().GetConfig().(type) {
	case *qdrant.VectorsConfig_Params:
		detail.VectorsConfig["default"] = vectorSlotInfo(cfg.Params)
	case *qdrant.VectorsConfig_ParamsMap:
		for slot, slotParams := range cfg.ParamsMap.GetMap() {
			detail.VectorsConfig[slot] = vectorSlotInfo(slotParams)
		}
	}

	for slot := range params.GetSparseVectorsConfig().GetMap() {
		detail.SparseVectors = append(detail.SparseVectors, slot)
	}

	if hnsw := info.GetConfig().GetHnswConfig(); hnsw != nil {
		detail.HnswConfig = HnswInfo{
			M:                 hnsw.GetM(),
			EfConstruct:       hnsw.GetEfConstruct(),
			FullScanThreshold: hnsw.GetFullScanThreshold(),
		}
	}

	if optimizer := info.GetOptimizerStatus(); optimizer != nil {
		if optimizer.GetOk() {
			detail.OptimizerStatus = "ok"
		} else {
			detail.OptimizerStatus = optimizer.GetError()
		}
	}

	for field, schema := range info.GetPayloadSchema() {
		if schema == nil {
			detail.PayloadSchema[field] = unknownField
			continue
		}
		detail.PayloadSchema[field] = strings.ToLower(schema.GetDataType().String())
	}

	return detail
}

func vectorSlotInfo(params *qdrant.VectorParams) VectorSlotInfo {
	if params == nil {
		return VectorSlotInfo{Distance: unknownField}
	}
	return VectorSlotInfo{
		Size:     params.GetSize(),
		Distance: params.GetDistance().String(),
		OnDisk:   params.GetOnDisk(),
	}
}

func collectionStatus(info *qdrant.CollectionInfo) string {
	if info == nil {
		return unknownField
	}
	return info.GetStatus().String()
}

// optimizerSettled reports whether the optimizer has returned to its OK
// state after an optimization trigger.
func optimizerSettled(info *qdrant.CollectionInfo) bool {
	return info.GetOptimizerStatus().GetOk()
}
