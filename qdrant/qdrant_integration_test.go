package qdrant

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// qdrantContainer represents a Qdrant container for testing
type qdrantContainer struct {
	testcontainers.Container
	Host     string
	GrpcPort string
	RestPort string
}

// setupQdrantContainer starts a Qdrant container exposing both the gRPC
// and the REST port; the REST port backs the root-endpoint probes.
func setupQdrantContainer(ctx context.Context) (*qdrantContainer, error) {
	grpcPort, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}
	restPort, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portBindings := nat.PortMap{
		"6334/tcp": []nat.PortBinding{{HostPort: strconv.Itoa(grpcPort)}},
		"6333/tcp": []nat.PortBinding{{HostPort: strconv.Itoa(restPort)}},
	}

	req := testcontainers.ContainerRequest{
		Image: "qdrant/qdrant:v1.11.0",
		Env: map[string]string{
			"QDRANT__SERVICE__GRPC_PORT": "6334",
			"QDRANT__SERVICE__HTTP_PORT": "6333",
		},
		ExposedPorts: []string{"6334/tcp", "6333/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForListeningPort("6334/tcp").WithStartupTimeout(60 * time.Second),
	}

	instance, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start qdrant container: %w", err)
	}

	host, err := instance.Host(ctx)
	if err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedGrpc, err := instance.MappedPort(ctx, "6334")
	if err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped grpc port: %w", err)
	}
	mappedRest, err := instance.MappedPort(ctx, "6333")
	if err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped rest port: %w", err)
	}

	if err := waitForQdrantReady(host, mappedGrpc.Port(), 30*time.Second); err != nil {
		_ = instance.Terminate(ctx)
		return nil, fmt.Errorf("qdrant container not ready: %w", err)
	}

	return &qdrantContainer{
		Container: instance,
		Host:      host,
		GrpcPort:  mappedGrpc.Port(),
		RestPort:  mappedRest.Port(),
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func(addr net.Listener) {
		_ = addr.Close()
	}(addr)

	return addr.Addr().(*net.TCPAddr).Port, nil
}

// waitForQdrantReady attempts to connect to Qdrant until it's ready or times out
func waitForQdrantReady(host, port string, timeout time.Duration) error {
	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for Qdrant to be ready after %s", timeout)
		}

		conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 2*time.Second)
		if err == nil {
			_ = conn.Close()
			// Additional wait to ensure the service is fully ready
			time.Sleep(2 * time.Second)
			return nil
		}

		time.Sleep(500 * time.Millisecond)
	}
}

func containerConfig(c *qdrantContainer) *Config {
	port, _ := strconv.Atoi(c.GrpcPort)
	return &Config{
		Endpoint:          c.Host,
		Port:              port,
		RestURL:           fmt.Sprintf("http://%s:%s", c.Host, c.RestPort),
		DefaultCollection: "knowledge_base",
		Timeout:           10 * time.Second,
	}
}

// TestQdrantWithFXModule wires the client through the Fx module against a
// live container and runs the primary flow: create a collection, upsert a
// point with a caller identifier, and search it back.
func TestQdrantWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	t.Logf("Using Qdrant on %s:%s", containerInstance.Host, containerInstance.GrpcPort)

	var client *Client
	app := fxtest.New(t,
		fx.Provide(
			func() *Config { return containerConfig(containerInstance) },
			func() Logger { return nopLogger{} },
		),
		FXModule,
		fx.Populate(&client),
	)

	err = app.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, client)

	t.Run("CreateUpsertSearch", func(t *testing.T) {
		err := client.CreateCollection(ctx, CreateCollectionParams{
			Name:            "kb",
			VectorSize:      4,
			Distance:        "cosine",
			HnswM:           16,
			HnswEfConstruct: 100,
		})
		require.NoError(t, err)

		// creating the same name again must fail, never overwrite
		err = client.CreateCollection(ctx, CreateCollectionParams{Name: "kb", VectorSize: 4})
		require.Error(t, err)
		assert.Equal(t, KindPrecondition, KindOf(err))

		count, err := client.UpsertPoints(ctx, "kb", []PointInput{
			{ID: "a", Dense: []float32{1, 0, 0, 0}, Payload: map[string]any{"title": "first"}},
		}, true)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		hits, err := client.Search(ctx, SearchParams{
			Collection:  "kb",
			Vector:      []float32{1, 0, 0, 0},
			Limit:       1,
			WithPayload: true,
		})
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "a", hits[0].Payload["original_id"])
		assert.InDelta(t, 1.0, float64(hits[0].Score), 0.001)
	})

	t.Run("GetCountAndScroll", func(t *testing.T) {
		points := make([]PointInput, 5)
		for i := range points {
			points[i] = PointInput{
				ID:      fmt.Sprintf("doc-%d", i),
				Dense:   []float32{float32(i) / 5, 1, 0, 0},
				Payload: map[string]any{"index": i},
			}
		}
		_, err := client.UpsertPoints(ctx, "kb", points, true)
		require.NoError(t, err)

		total, err := client.CountPoints(ctx, "kb", nil, true)
		require.NoError(t, err)
		assert.Equal(t, uint64(6), total)

		records, err := client.GetPoints(ctx, "kb", []string{"doc-0", "no-such-id"}, true, false)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "doc-0", records[0].Payload["original_id"])

		// page through everything with limit 2 and verify the cursor
		// terminates
		seen := 0
		cursor := ""
		for {
			page, next, err := client.ScrollPoints(ctx, ScrollParams{
				Collection:  "kb",
				Limit:       2,
				Cursor:      cursor,
				WithPayload: true,
			})
			require.NoError(t, err)
			seen += len(page)
			if next == "" {
				break
			}
			cursor = next
		}
		assert.Equal(t, 6, seen)
	})

	t.Run("FilteredCountAndDelete", func(t *testing.T) {
		filter := map[string]any{
			"must": []any{
				map[string]any{"key": "index", "match": map[string]any{"value": float64(3)}},
			},
		}
		matched, err := client.CountPoints(ctx, "kb", filter, true)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), matched)

		mode, err := client.DeletePoints(ctx, "kb", nil, filter, true)
		require.NoError(t, err)
		assert.Equal(t, "filter", mode)

		remaining, err := client.CountPoints(ctx, "kb", nil, true)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), remaining)

		mode, err = client.DeletePoints(ctx, "kb", []string{"doc-0"}, nil, true)
		require.NoError(t, err)
		assert.Equal(t, "ids", mode)
	})

	t.Run("CollectionInfoAndListing", func(t *testing.T) {
		detail, err := client.CollectionInfo(ctx, "kb")
		require.NoError(t, err)
		assert.Equal(t, "kb", detail.Name)
		require.Contains(t, detail.VectorsConfig, DefaultVectorName)
		assert.Equal(t, uint64(4), detail.VectorsConfig[DefaultVectorName].Size)
		assert.Equal(t, "Cosine", detail.VectorsConfig[DefaultVectorName].Distance)

		summaries, err := client.ListCollections(ctx)
		require.NoError(t, err)
		names := make([]string, 0, len(summaries))
		for _, s := range summaries {
			names = append(names, s.Name)
		}
		assert.Contains(t, names, "kb")

		_, err = client.CollectionInfo(ctx, "does_not_exist")
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	require.NoError(t, app.Stop(ctx))
}

// TestQdrantMaintenanceOperations covers snapshots, optimization, and the
// aggregate reports against a live container.
func TestQdrantMaintenanceOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupQdrantContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	client, err := NewClient(Params{
		Config: containerConfig(containerInstance),
		Logger: nopLogger{},
	})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer func() { _ = client.Close() }()

	err = client.CreateCollection(ctx, CreateCollectionParams{
		Name: "maint", VectorSize: 4, Distance: "cosine",
		HnswM: 16, HnswEfConstruct: 100,
	})
	require.NoError(t, err)

	t.Run("Snapshots", func(t *testing.T) {
		created, err := client.CreateSnapshot(ctx, "maint")
		require.NoError(t, err)
		assert.NotEmpty(t, created.Name)

		snapshots, err := client.ListSnapshots(ctx, "maint")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(snapshots), 1)

		_, err = client.CreateSnapshot(ctx, "no_such_collection")
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("Optimize", func(t *testing.T) {
		report, err := client.Optimize(ctx, "maint", false)
		require.NoError(t, err)
		assert.True(t, report.Triggered)
		assert.False(t, report.Complete)
	})

	t.Run("UpdateCollection", func(t *testing.T) {
		m := uint64(32)
		err := client.UpdateCollection(ctx, UpdateCollectionParams{Name: "maint", HnswM: &m})
		require.NoError(t, err)

		detail, err := client.CollectionInfo(ctx, "maint")
		require.NoError(t, err)
		assert.Equal(t, uint64(32), detail.HnswConfig.M)
	})

	t.Run("ClusterInfoAndHealth", func(t *testing.T) {
		cluster, err := client.ClusterInfo(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "unknown", cluster.Version)
		assert.GreaterOrEqual(t, cluster.CollectionsCount, 1)

		health := client.Health(ctx)
		assert.Equal(t, "healthy", health.Status)
		assert.True(t, health.HTTPOk)
		assert.True(t, health.APIOk)
		assert.NotEmpty(t, health.Timestamp)
	})

	t.Run("DeleteCollection", func(t *testing.T) {
		_, err := client.UpsertPoints(ctx, "maint", []PointInput{
			{ID: "x", Dense: []float32{0, 1, 0, 0}},
		}, true)
		require.NoError(t, err)

		deleted, err := client.DeleteCollection(ctx, "maint")
		require.NoError(t, err)
		assert.Equal(t, uint64(1), deleted)

		_, err = client.DeleteCollection(ctx, "maint")
		require.Error(t, err)
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}
