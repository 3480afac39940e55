package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vectorops/qdrant-admin/qdrant"
)

func testService(t *testing.T) (*Service, *MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	return NewService(backend), backend
}

func assertFailure(t *testing.T, result Result, kind qdrant.ErrorKind) {
	t.Helper()
	assert.Equal(t, "error", result.Status)
	assert.Equal(t, kind, result.Kind)
	assert.NotEmpty(t, result.Error)
}

func TestCreateCollection_Defaults(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().CreateCollection(gomock.Any(), qdrant.CreateCollectionParams{
		Name:            "kb",
		VectorSize:      384,
		Distance:        "cosine",
		HnswM:           16,
		HnswEfConstruct: 100,
	}).Return(nil)

	result := svc.CreateCollection(context.Background(), CreateCollectionRequest{Name: "kb"})
	require.Equal(t, "success", result.Status)

	data := result.Data.(map[string]any)
	config := data["config"].(map[string]any)
	assert.Equal(t, 384, config["vector_size"])
	assert.Equal(t, "cosine", config["distance"])
}

func TestCreateCollection_EchoesAppliedDistance(t *testing.T) {
	svc, backend := testService(t)

	// an unrecognized metric is applied as cosine, and the response must
	// say so instead of echoing the raw input
	backend.EXPECT().CreateCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params qdrant.CreateCollectionParams) error {
			assert.Equal(t, "cosine", params.Distance)
			return nil
		})

	result := svc.CreateCollection(context.Background(), CreateCollectionRequest{
		Name: "kb", Distance: "manhattan",
	})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	config := data["config"].(map[string]any)
	assert.Equal(t, "cosine", config["distance"])
}

func TestCreateCollection_Validation(t *testing.T) {
	svc, _ := testService(t)
	ctx := context.Background()

	size := 0
	m := 200
	ef := 2

	tests := []struct {
		name string
		req  CreateCollectionRequest
	}{
		{"missing name", CreateCollectionRequest{}},
		{"vector_size too small", CreateCollectionRequest{Name: "kb", VectorSize: &size}},
		{"hnsw_m too large", CreateCollectionRequest{Name: "kb", HnswM: &m}},
		{"ef_construct too small", CreateCollectionRequest{Name: "kb", HnswEfConstruct: &ef}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFailure(t, svc.CreateCollection(ctx, tt.req), qdrant.KindValidation)
		})
	}
}

func TestDeleteCollection_RequiresConfirm(t *testing.T) {
	svc, _ := testService(t)
	// the backend mock has no expectations: an unconfirmed delete must
	// never reach it
	result := svc.DeleteCollection(context.Background(), DeleteCollectionRequest{Name: "kb"})
	assertFailure(t, result, qdrant.KindPrecondition)
	assert.Contains(t, result.Error, "confirm")
}

func TestDeleteCollection_Confirmed(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().DeleteCollection(gomock.Any(), "kb").Return(uint64(7), nil)

	result := svc.DeleteCollection(context.Background(), DeleteCollectionRequest{Name: "kb", Confirm: true})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, uint64(7), data["deleted_points"])
}

func TestUpdateCollection_TracksChangedFields(t *testing.T) {
	svc, backend := testService(t)

	m := 32
	threshold := 10000
	backend.EXPECT().UpdateCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params qdrant.UpdateCollectionParams) error {
			require.NotNil(t, params.HnswM)
			assert.Equal(t, uint64(32), *params.HnswM)
			require.NotNil(t, params.IndexingThreshold)
			assert.Nil(t, params.HnswEfConstruct)
			return nil
		})

	result := svc.UpdateCollection(context.Background(), UpdateCollectionRequest{
		Name: "kb", HnswM: &m, IndexingThreshold: &threshold,
	})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, []string{"hnsw_m", "indexing_threshold"}, data["updated_fields"])
}

func TestGetPoints_RequiresIDs(t *testing.T) {
	svc, _ := testService(t)
	result := svc.GetPoints(context.Background(), GetPointsRequest{})
	assertFailure(t, result, qdrant.KindValidation)
}

func TestGetPoints_ReportsFoundVersusRequested(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().GetPoints(gomock.Any(), "kb", []string{"a", "b"}, true, false).
		Return([]qdrant.PointRecord{{ID: "x"}}, nil)

	result := svc.GetPoints(context.Background(), GetPointsRequest{
		Collection: "kb", IDs: []string{"a", "b"},
	})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, 1, data["found_count"])
	assert.Equal(t, 2, data["requested_count"])
}

func TestCountPoints_UsesDefaultCollection(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().DefaultCollection().Return("knowledge_base")
	backend.EXPECT().CountPoints(gomock.Any(), "knowledge_base", nil, false).
		Return(uint64(3), nil)

	result := svc.CountPoints(context.Background(), CountPointsRequest{})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, "knowledge_base", data["collection"])
	assert.Equal(t, uint64(3), data["count"])
	assert.Equal(t, false, data["exact"])
}

func TestScrollPoints_Pagination(t *testing.T) {
	svc, backend := testService(t)
	ctx := context.Background()

	backend.EXPECT().ScrollPoints(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params qdrant.ScrollParams) ([]qdrant.PointRecord, string, error) {
			assert.Equal(t, uint32(2), params.Limit)
			assert.Empty(t, params.Cursor)
			return []qdrant.PointRecord{{ID: "a"}, {ID: "b"}}, "cursor-1", nil
		})

	limit := 2
	result := svc.ScrollPoints(ctx, ScrollPointsRequest{Collection: "kb", Limit: &limit})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, true, data["has_more"])
	assert.Equal(t, "cursor-1", data["next_offset"])

	backend.EXPECT().ScrollPoints(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params qdrant.ScrollParams) ([]qdrant.PointRecord, string, error) {
			assert.Equal(t, "cursor-1", params.Cursor)
			return []qdrant.PointRecord{{ID: "c"}}, "", nil
		})

	result = svc.ScrollPoints(ctx, ScrollPointsRequest{Collection: "kb", Limit: &limit, Offset: "cursor-1"})
	require.Equal(t, "success", result.Status)
	data = result.Data.(map[string]any)
	assert.Equal(t, false, data["has_more"])
	assert.NotContains(t, data, "next_offset")
}

func TestScrollPoints_LimitBounds(t *testing.T) {
	svc, _ := testService(t)
	limit := 5000
	result := svc.ScrollPoints(context.Background(), ScrollPointsRequest{Limit: &limit})
	assertFailure(t, result, qdrant.KindValidation)
}

func TestVectorSpec_Unmarshal(t *testing.T) {
	var dense VectorSpec
	require.NoError(t, json.Unmarshal([]byte(`[1, 0, 0.5]`), &dense))
	assert.Equal(t, []float32{1, 0, 0.5}, dense.Dense)
	assert.Nil(t, dense.Named)

	var named VectorSpec
	require.NoError(t, json.Unmarshal([]byte(`{"text-dense": [1, 0]}`), &named))
	assert.Nil(t, named.Dense)
	assert.Equal(t, []float32{1, 0}, named.Named["text-dense"])

	var bad VectorSpec
	assert.Error(t, json.Unmarshal([]byte(`"oops"`), &bad))
}

func TestUpsertPoints_RejectsWholeBatch(t *testing.T) {
	svc, _ := testService(t)
	// second point is invalid, so nothing may reach the backend
	result := svc.UpsertPoints(context.Background(), UpsertPointsRequest{
		Collection: "kb",
		Points: []PointSpec{
			{ID: "a", Vector: VectorSpec{Dense: []float32{1}}},
			{ID: "b"},
		},
	})
	assertFailure(t, result, qdrant.KindValidation)
	assert.Contains(t, result.Error, "point 1")
}

func TestUpsertPoints_WaitDefaultsTrue(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().UpsertPoints(gomock.Any(), "kb", gomock.Any(), true).Return(2, nil)

	result := svc.UpsertPoints(context.Background(), UpsertPointsRequest{
		Collection: "kb",
		Points: []PointSpec{
			{ID: "a", Vector: VectorSpec{Dense: []float32{1}}},
			{ID: "b", Vector: VectorSpec{Dense: []float32{0}}},
		},
	})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, 2, data["upserted_count"])
	assert.Equal(t, "upsert", data["operation"])
}

func TestDeletePoints_NeitherSelector(t *testing.T) {
	svc, _ := testService(t)
	result := svc.DeletePoints(context.Background(), DeletePointsRequest{Collection: "kb"})
	assertFailure(t, result, qdrant.KindPrecondition)
}

func TestDeletePoints_ByIDs(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().DeletePoints(gomock.Any(), "kb", []string{"a"}, gomock.Any(), true).
		Return("ids", nil)

	result := svc.DeletePoints(context.Background(), DeletePointsRequest{
		Collection: "kb", IDs: []string{"a"},
	})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, "ids", data["deleted_by"])
	assert.Equal(t, 1, data["ids_count"])
}

func TestSearchVectors_RequiresVector(t *testing.T) {
	svc, _ := testService(t)
	result := svc.SearchVectors(context.Background(), SearchVectorsRequest{Collection: "kb"})
	assertFailure(t, result, qdrant.KindValidation)
}

func TestSearchVectors_DefaultsAndShape(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params qdrant.SearchParams) ([]qdrant.SearchHit, error) {
			assert.Equal(t, uint64(10), params.Limit)
			assert.Equal(t, qdrant.DefaultVectorName, params.VectorName)
			assert.True(t, params.WithPayload)
			return []qdrant.SearchHit{{ID: "a", Score: 0.9}}, nil
		})

	result := svc.SearchVectors(context.Background(), SearchVectorsRequest{
		Collection: "kb", Vector: []float32{1, 0},
	})
	require.Equal(t, "success", result.Status)
	data := result.Data.(map[string]any)
	assert.Equal(t, 1, data["count"])
	assert.Equal(t, qdrant.DefaultVectorName, data["vector_name"])
	assert.NotContains(t, data, "score_threshold")
}

func TestSearchBatch_PerQueryValidation(t *testing.T) {
	svc, _ := testService(t)

	result := svc.SearchBatch(context.Background(), SearchBatchRequest{
		Collection: "kb",
		Queries: []BatchQuerySpec{
			{Vector: []float32{1}},
			{},
		},
	})
	assertFailure(t, result, qdrant.KindValidation)
	assert.Contains(t, result.Error, "query 1")
}

func TestRecommendPoints_RequiresPositive(t *testing.T) {
	svc, _ := testService(t)
	result := svc.RecommendPoints(context.Background(), RecommendPointsRequest{Collection: "kb"})
	assertFailure(t, result, qdrant.KindValidation)
}

func TestFailure_MapsBackendKinds(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().CollectionInfo(gomock.Any(), "missing").
		Return(nil, qdrant.NotFoundf("collection %q does not exist", "missing"))

	result := svc.GetCollectionInfo(context.Background(), GetCollectionInfoRequest{Name: "missing"})
	assertFailure(t, result, qdrant.KindNotFound)
}

func TestFailure_UnclassifiedErrorIsBackendKind(t *testing.T) {
	svc, backend := testService(t)

	backend.EXPECT().ListCollections(gomock.Any()).Return(nil, errors.New("boom"))

	result := svc.ListCollections(context.Background(), ListCollectionsRequest{})
	assertFailure(t, result, qdrant.KindBackend)
}
