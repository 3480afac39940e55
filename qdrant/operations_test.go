package qdrant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func testClient(t *testing.T) (*Client, *MockAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := NewMockAPI(ctrl)
	cfg := DefaultConfig()
	cfg.Timeout = 5 * time.Second
	return newClientWithAPI(api, cfg), api
}

func TestCreateCollection_AlreadyExists(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "kb").Return(true, nil)

	err := client.CreateCollection(ctx, CreateCollectionParams{Name: "kb", VectorSize: 4})
	require.Error(t, err)
	assert.Equal(t, KindPrecondition, KindOf(err))
	assert.Contains(t, err.Error(), "kb")
}

func TestCreateCollection_BuildsNamedVectorConfig(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "kb").Return(false, nil)
	api.EXPECT().CreateCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.CreateCollection) error {
			params := req.GetVectorsConfig().GetParamsMap().GetMap()
			require.Contains(t, params, DefaultVectorName)
			assert.Equal(t, uint64(4), params[DefaultVectorName].GetSize())
			assert.Equal(t, qdrant.Distance_Cosine, params[DefaultVectorName].GetDistance())
			assert.Nil(t, req.GetSparseVectorsConfig())
			return nil
		})

	err := client.CreateCollection(ctx, CreateCollectionParams{
		Name:            "kb",
		VectorSize:      4,
		Distance:        "cosine",
		HnswM:           16,
		HnswEfConstruct: 100,
	})
	require.NoError(t, err)
}

func TestCreateCollection_SparseSlot(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "hybrid").Return(false, nil)
	api.EXPECT().CreateCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.CreateCollection) error {
			sparse := req.GetSparseVectorsConfig().GetMap()
			assert.Contains(t, sparse, DefaultSparseVectorName)
			return nil
		})

	err := client.CreateCollection(ctx, CreateCollectionParams{
		Name: "hybrid", VectorSize: 4, EnableSparse: true,
	})
	require.NoError(t, err)
}

func TestDeleteCollection_NotFound(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "missing").Return(false, nil)

	_, err := client.DeleteCollection(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestDeleteCollection_ReportsPriorCount(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "kb").Return(true, nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "kb").Return(&qdrant.CollectionInfo{
		PointsCount: qdrant.PtrOf(uint64(42)),
	}, nil)
	api.EXPECT().DeleteCollection(gomock.Any(), "kb").Return(nil)

	count, err := client.DeleteCollection(ctx, "kb")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), count)
}

func TestUpdateCollection_EmptyDiff(t *testing.T) {
	client, _ := testClient(t)

	err := client.UpdateCollection(context.Background(), UpdateCollectionParams{Name: "kb"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestListCollections_DegradedEntry(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().ListCollections(gomock.Any()).Return([]string{"good", "broken"}, nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "good").Return(&qdrant.CollectionInfo{
		Status:      qdrant.CollectionStatus_Green,
		PointsCount: qdrant.PtrOf(uint64(5)),
	}, nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "broken").
		Return(nil, status.Error(codes.Internal, "boom"))

	summaries, err := client.ListCollections(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "good", summaries[0].Name)
	assert.Equal(t, uint64(5), summaries[0].PointsCount)
	assert.Equal(t, "broken", summaries[1].Name)
	assert.Equal(t, "unknown", summaries[1].Status)
	assert.Zero(t, summaries[1].PointsCount)
}

func TestDeletePoints_IDsTakePrecedenceOverFilter(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.DeletePoints) (*qdrant.UpdateResult, error) {
			ids := req.GetPoints().GetPoints().GetIds()
			require.Len(t, ids, 1)
			assert.Nil(t, req.GetPoints().GetFilter())
			return &qdrant.UpdateResult{}, nil
		})

	filter := map[string]any{
		"must": []any{map[string]any{"key": "x", "match": map[string]any{"value": "y"}}},
	}
	mode, err := client.DeletePoints(ctx, "kb", []string{"doc-1"}, filter, true)
	require.NoError(t, err)
	assert.Equal(t, "ids", mode)
}

func TestDeletePoints_NeitherSelector(t *testing.T) {
	client, _ := testClient(t)

	_, err := client.DeletePoints(context.Background(), "kb", nil, nil, true)
	require.Error(t, err)
	assert.Equal(t, KindPrecondition, KindOf(err))
}

func TestUpsertPoints_PreservesOriginalID(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.UpsertPoints) (*qdrant.UpdateResult, error) {
			require.Len(t, req.GetPoints(), 1)
			point := req.GetPoints()[0]
			assert.Equal(t, NormalizePointID("doc-1"), point.GetId().GetUuid())
			original := point.GetPayload()["original_id"]
			require.NotNil(t, original)
			assert.Equal(t, "doc-1", original.GetStringValue())
			return &qdrant.UpdateResult{}, nil
		})

	count, err := client.UpsertPoints(ctx, "kb", []PointInput{
		{ID: "doc-1", Dense: []float32{1, 0, 0, 0}, Payload: map[string]any{"title": "t"}},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestScrollPoints_CursorRoundTrip(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	next := qdrant.NewID("550e8400-e29b-41d4-a716-446655440000")
	api.EXPECT().Scroll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, *qdrant.PointId, error) {
			assert.Nil(t, req.GetOffset())
			return []*qdrant.RetrievedPoint{{Id: qdrant.NewIDNum(1)}}, next, nil
		})

	_, cursor, err := client.ScrollPoints(ctx, ScrollParams{Collection: "kb", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cursor)

	// resuming passes the cursor back as the offset
	api.EXPECT().Scroll(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.ScrollPoints) ([]*qdrant.RetrievedPoint, *qdrant.PointId, error) {
			assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", req.GetOffset().GetUuid())
			return nil, nil, nil
		})

	_, cursor, err = client.ScrollPoints(ctx, ScrollParams{Collection: "kb", Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	assert.Empty(t, cursor)
}

func TestSearch_GRPCNotFoundMapsToNotFoundKind(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().Query(gomock.Any(), gomock.Any()).
		Return(nil, status.Error(codes.NotFound, "Collection `kb` doesn't exist!"))

	_, err := client.Search(ctx, SearchParams{Collection: "kb", Vector: []float32{1}, Limit: 10})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestSearch_ForwardsScoreThreshold(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
			require.NotNil(t, req.ScoreThreshold)
			assert.Equal(t, float32(0.9), req.GetScoreThreshold())
			return nil, nil
		})

	_, err := client.Search(ctx, SearchParams{
		Collection:     "kb",
		Vector:         []float32{1, 0},
		Limit:          10,
		ScoreThreshold: qdrant.PtrOf(float32(0.9)),
	})
	require.NoError(t, err)
}

func TestSearchBatch_ForwardsPerQueryScoreThreshold(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().QueryBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.QueryBatchPoints) ([]*qdrant.BatchResult, error) {
			require.Len(t, req.GetQueryPoints(), 2)
			first := req.GetQueryPoints()[0]
			require.NotNil(t, first.ScoreThreshold)
			assert.Equal(t, float32(0.5), first.GetScoreThreshold())
			assert.Nil(t, req.GetQueryPoints()[1].ScoreThreshold)
			return nil, nil
		})

	_, err := client.SearchBatch(ctx, "kb", []BatchQuery{
		{Vector: []float32{1}, Limit: 5, ScoreThreshold: qdrant.PtrOf(float32(0.5))},
		{Vector: []float32{0}, Limit: 5},
	}, "", true)
	require.NoError(t, err)
}

func TestRecommend_ForwardsScoreThreshold(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
			require.NotNil(t, req.ScoreThreshold)
			assert.Equal(t, float32(0.7), req.GetScoreThreshold())
			return nil, nil
		})

	_, err := client.Recommend(ctx, RecommendParams{
		Collection:     "kb",
		Positive:       []string{"doc-1"},
		Limit:          10,
		ScoreThreshold: qdrant.PtrOf(float32(0.7)),
	})
	require.NoError(t, err)
}

func TestNormalizeDistance(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cosine", "cosine"},
		{"Cosine", "cosine"},
		{"euclidean", "euclid"},
		{"dot", "dot"},
		{"manhattan", "cosine"},
		{"", "cosine"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDistance(tt.in), "input %q", tt.in)
	}
}

func TestRecommend_NormalizesExampleIDs(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
			rec := req.GetQuery().GetRecommend()
			require.Len(t, rec.GetPositive(), 1)
			assert.Equal(t, NormalizePointID("doc-1"), rec.GetPositive()[0].GetId().GetUuid())
			return nil, nil
		})

	_, err := client.Recommend(ctx, RecommendParams{
		Collection: "kb", Positive: []string{"doc-1"}, Limit: 10,
	})
	require.NoError(t, err)
}

func TestOptimize_NoWait(t *testing.T) {
	client, api := testClient(t)
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "kb").Return(true, nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "kb").Return(&qdrant.CollectionInfo{
		SegmentsCount: 6,
	}, nil)
	api.EXPECT().UpdateCollection(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *qdrant.UpdateCollection) error {
			threshold := req.GetOptimizersConfig().GetIndexingThreshold()
			assert.Equal(t, uint64(0), threshold)
			return nil
		})

	report, err := client.Optimize(ctx, "kb", false)
	require.NoError(t, err)
	assert.True(t, report.Triggered)
	assert.False(t, report.Complete)
	assert.Equal(t, uint64(6), report.SegmentsBefore)
}

func TestOptimize_WaitUntilSettled(t *testing.T) {
	client, api := testClient(t)
	client.optimizePoll = 5 * time.Millisecond
	client.optimizeDeadline = time.Second
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "kb").Return(true, nil)
	before := api.EXPECT().GetCollectionInfo(gomock.Any(), "kb").
		Return(&qdrant.CollectionInfo{SegmentsCount: 6}, nil)
	api.EXPECT().UpdateCollection(gomock.Any(), gomock.Any()).Return(nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "kb").Return(&qdrant.CollectionInfo{
		SegmentsCount:   3,
		OptimizerStatus: &qdrant.OptimizerStatus{Ok: true},
	}, nil).After(before)

	report, err := client.Optimize(ctx, "kb", true)
	require.NoError(t, err)
	assert.True(t, report.Triggered)
	assert.True(t, report.Complete)
	assert.Equal(t, uint64(6), report.SegmentsBefore)
	require.NotNil(t, report.SegmentsAfter)
	assert.Equal(t, uint64(3), *report.SegmentsAfter)
	assert.Equal(t, "optimization complete", report.Message)
}

func TestOptimize_WaitDeadlineReportsInProgress(t *testing.T) {
	client, api := testClient(t)
	client.optimizePoll = 5 * time.Millisecond
	client.optimizeDeadline = 30 * time.Millisecond
	ctx := context.Background()

	api.EXPECT().CollectionExists(gomock.Any(), "kb").Return(true, nil)
	before := api.EXPECT().GetCollectionInfo(gomock.Any(), "kb").
		Return(&qdrant.CollectionInfo{SegmentsCount: 6}, nil)
	api.EXPECT().UpdateCollection(gomock.Any(), gomock.Any()).Return(nil)
	// optimizer never settles within the deadline
	api.EXPECT().GetCollectionInfo(gomock.Any(), "kb").Return(&qdrant.CollectionInfo{
		OptimizerStatus: &qdrant.OptimizerStatus{Ok: false, Error: "optimizing"},
	}, nil).After(before).AnyTimes()

	report, err := client.Optimize(ctx, "kb", true)
	require.NoError(t, err)
	assert.True(t, report.Triggered)
	assert.False(t, report.Complete)
	assert.Nil(t, report.SegmentsAfter)
	assert.Contains(t, report.Message, "still in progress")
}

func TestOptimize_NotFound(t *testing.T) {
	client, api := testClient(t)

	api.EXPECT().CollectionExists(gomock.Any(), "missing").Return(false, nil)

	_, err := client.Optimize(context.Background(), "missing", false)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestHealth_Statuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"qdrant - vector search engine","version":"1.11.0"}`))
	}))
	defer srv.Close()

	t.Run("healthy", func(t *testing.T) {
		client, api := testClient(t)
		client.cfg.RestURL = srv.URL
		api.EXPECT().ListCollections(gomock.Any()).Return([]string{}, nil)

		report := client.Health(context.Background())
		assert.Equal(t, "healthy", report.Status)
		assert.True(t, report.HTTPOk)
		assert.True(t, report.APIOk)
	})

	t.Run("degraded when API fails", func(t *testing.T) {
		client, api := testClient(t)
		client.cfg.RestURL = srv.URL
		api.EXPECT().ListCollections(gomock.Any()).
			Return(nil, status.Error(codes.Unavailable, "down"))

		report := client.Health(context.Background())
		assert.Equal(t, "degraded", report.Status)
		assert.NotEmpty(t, report.Error)
	})

	t.Run("unhealthy when nothing responds", func(t *testing.T) {
		client, api := testClient(t)
		client.cfg.RestURL = "http://127.0.0.1:1"
		api.EXPECT().ListCollections(gomock.Any()).
			Return(nil, status.Error(codes.Unavailable, "down"))

		report := client.Health(context.Background())
		assert.Equal(t, "unhealthy", report.Status)
	})
}

func TestClusterInfo_AggregatesAndDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"title":"qdrant","version":"1.11.0"}`))
	}))
	defer srv.Close()

	client, api := testClient(t)
	client.cfg.RestURL = srv.URL

	api.EXPECT().ListCollections(gomock.Any()).Return([]string{"a", "b"}, nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "a").Return(&qdrant.CollectionInfo{
		PointsCount:  qdrant.PtrOf(uint64(10)),
		VectorsCount: qdrant.PtrOf(uint64(20)),
	}, nil)
	api.EXPECT().GetCollectionInfo(gomock.Any(), "b").
		Return(nil, status.Error(codes.Internal, "boom"))

	report, err := client.ClusterInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "qdrant", report.Title)
	assert.Equal(t, "1.11.0", report.Version)
	assert.Equal(t, 2, report.CollectionsCount)
	assert.Equal(t, uint64(10), report.TotalPoints)
	assert.Equal(t, uint64(20), report.TotalVectors)
	assert.Equal(t, "error", report.Collections[1].Status)
}

func TestSnapshotInfo_PendingName(t *testing.T) {
	info := snapshotInfo(&qdrant.SnapshotDescription{Size: 1024})
	assert.Equal(t, "pending", info.Name)
	assert.Equal(t, int64(1024), info.SizeBytes)
}
