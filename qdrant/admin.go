package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/timestamppb"
)

//
// ──────────────────────────────────────────────────────────────
//   MAINTENANCE OPERATIONS
// ──────────────────────────────────────────────────────────────
//

const (
	// optimizePollInterval is the default interval at which the
	// optimizer status is checked while waiting for a round to settle.
	optimizePollInterval = 2 * time.Second

	// optimizeWaitDeadline is the default bound on the wait. Hitting it
	// is not a failure: the report says so and the optimizer keeps
	// running.
	optimizeWaitDeadline = 60 * time.Second

	// healthProbeTimeout caps each of the two health probes.
	healthProbeTimeout = 5 * time.Second
)

// Optimize forces an optimization round by dropping the indexing
// threshold to zero, then optionally waits (bounded) for the optimizer to
// settle. A deadline hit reports in-progress, never an error.
func (c *Client) Optimize(ctx context.Context, collection string, wait bool) (*OptimizeReport, error) {
	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(opctx, collection)
	if err != nil {
		return nil, backendError("optimize collection", collection, err)
	}
	if !exists {
		return nil, NotFoundf("collection %q does not exist", collection)
	}

	report := &OptimizeReport{Collection: collection}
	if info, infoErr := c.api.GetCollectionInfo(opctx, collection); infoErr == nil {
		report.SegmentsBefore = info.GetSegmentsCount()
	}

	err = c.api.UpdateCollection(opctx, &qdrant.UpdateCollection{
		CollectionName: collection,
		OptimizersConfig: &qdrant.OptimizersConfigDiff{
			IndexingThreshold: qdrant.PtrOf(uint64(0)),
		},
	})
	if err != nil {
		return nil, backendError("optimize collection", collection, err)
	}
	report.Triggered = true

	if !wait {
		report.Message = "optimization triggered, not waiting for completion"
		return report, nil
	}

	pollCtx, pollCancel := context.WithTimeout(ctx, c.optimizeDeadline)
	defer pollCancel()

	ticker := time.NewTicker(c.optimizePoll)
	defer ticker.Stop()

	for {
		select {
		case <-pollCtx.Done():
			report.Message = "optimization still in progress after wait deadline"
			c.log.Warn("optimizer did not settle within deadline", nil, map[string]interface{}{
				"collection": collection,
			})
			return report, nil
		case <-ticker.C:
			info, infoErr := c.api.GetCollectionInfo(pollCtx, collection)
			if infoErr != nil {
				continue
			}
			if optimizerSettled(info) {
				report.Complete = true
				report.SegmentsAfter = qdrant.PtrOf(info.GetSegmentsCount())
				report.Message = "optimization complete"
				return report, nil
			}
		}
	}
}

// CreateSnapshot takes a snapshot of one collection. The backend may
// report the snapshot before assigning its final name; that state
// surfaces as the name "pending".
func (c *Client) CreateSnapshot(ctx context.Context, collection string) (*SnapshotInfo, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, collection)
	if err != nil {
		return nil, backendError("create snapshot", collection, err)
	}
	if !exists {
		return nil, NotFoundf("collection %q does not exist", collection)
	}

	desc, err := c.api.CreateSnapshot(ctx, collection)
	if err != nil {
		return nil, backendError("create snapshot", collection, err)
	}

	info := snapshotInfo(desc)
	c.log.Info("snapshot created", nil, map[string]interface{}{
		"collection": collection,
		"snapshot":   info.Name,
	})
	return &info, nil
}

// ListSnapshots returns the snapshots of one collection.
func (c *Client) ListSnapshots(ctx context.Context, collection string) ([]SnapshotInfo, error) {
	ctx, cancel := c.opCtx(ctx)
	defer cancel()

	exists, err := c.api.CollectionExists(ctx, collection)
	if err != nil {
		return nil, backendError("list snapshots", collection, err)
	}
	if !exists {
		return nil, NotFoundf("collection %q does not exist", collection)
	}

	descs, err := c.api.ListSnapshots(ctx, collection)
	if err != nil {
		return nil, backendError("list snapshots", collection, err)
	}

	snapshots := make([]SnapshotInfo, 0, len(descs))
	for _, desc := range descs {
		snapshots = append(snapshots, snapshotInfo(desc))
	}
	return snapshots, nil
}

func snapshotInfo(desc *qdrant.SnapshotDescription) SnapshotInfo {
	info := SnapshotInfo{
		Name:         "pending",
		SizeBytes:    desc.GetSize(),
		CreationTime: formatSnapshotTime(desc.GetCreationTime()),
	}
	if name := desc.GetName(); name != "" {
		info.Name = name
	}
	return info
}

func formatSnapshotTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().UTC().Format(time.RFC3339)
}

// instanceMeta is the identification payload served at the REST root.
type instanceMeta struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

// ClusterInfo aggregates instance identification with per-collection
// summaries. Both halves degrade independently: an unreachable REST root
// yields "unknown" identification, a failed collection lookup yields a
// per-entry "error" status. Neither failure aborts the report.
func (c *Client) ClusterInfo(ctx context.Context) (*ClusterReport, error) {
	report := &ClusterReport{
		URL:     c.cfg.RestURL,
		Title:   unknownField,
		Version: unknownField,
	}

	if meta, err := c.probeRoot(ctx); err == nil {
		report.Title = meta.Title
		report.Version = meta.Version
	} else {
		c.log.Warn("instance root probe failed", err, nil)
	}

	opctx, cancel := c.opCtx(ctx)
	defer cancel()

	names, err := c.api.ListCollections(opctx)
	if err != nil {
		return nil, backendError("cluster info", "", err)
	}
	report.CollectionsCount = len(names)
	report.Collections = make([]CollectionSummary, len(names))

	g, gctx := errgroup.WithContext(opctx)
	g.SetLimit(listDetailConcurrency)
	for i, name := range names {
		g.Go(func() error {
			info, infoErr := c.api.GetCollectionInfo(gctx, name)
			if infoErr != nil {
				report.Collections[i] = CollectionSummary{Name: name, Status: "error"}
				return nil
			}
			report.Collections[i] = collectionSummary(name, info)
			return nil
		})
	}
	_ = g.Wait()

	for _, summary := range report.Collections {
		report.TotalPoints += summary.PointsCount
		report.TotalVectors += summary.VectorsCount
	}
	return report, nil
}

// Health runs two independent probes: raw HTTP reachability of the REST
// root and a gRPC API health check, each timed. The overall status is
// healthy only when both succeed, degraded when exactly one does, and
// unhealthy when neither does. An unhealthy backend is a report, not an
// operation failure.
func (c *Client) Health(ctx context.Context) *HealthReport {
	report := &HealthReport{
		URL:       c.cfg.RestURL,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	httpStart := time.Now()
	httpCtx, httpCancel := context.WithTimeout(ctx, healthProbeTimeout)
	_, httpErr := c.probeRoot(httpCtx)
	httpCancel()
	report.HTTPLatencyMs = msSince(httpStart)
	report.HTTPOk = httpErr == nil

	apiStart := time.Now()
	apiCtx, apiCancel := context.WithTimeout(ctx, healthProbeTimeout)
	_, apiErr := c.api.ListCollections(apiCtx)
	apiCancel()
	report.APILatencyMs = msSince(apiStart)
	report.APIOk = apiErr == nil

	switch {
	case report.HTTPOk && report.APIOk:
		report.Status = "healthy"
	case report.HTTPOk || report.APIOk:
		report.Status = "degraded"
	default:
		report.Status = "unhealthy"
	}

	if httpErr != nil {
		report.Error = backendMessage(httpErr)
	} else if apiErr != nil {
		report.Error = backendMessage(apiErr)
	}
	return report
}

// probeRoot fetches the REST root endpoint and decodes the instance
// identification it serves.
func (c *Client) probeRoot(ctx context.Context) (*instanceMeta, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.RestURL, nil)
	if err != nil {
		return nil, err
	}
	if c.cfg.ApiKey != "" {
		req.Header.Set("api-key", c.cfg.ApiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	meta := &instanceMeta{Title: unknownField, Version: unknownField}
	if decodeErr := json.NewDecoder(resp.Body).Decode(meta); decodeErr != nil {
		return meta, nil
	}
	return meta, nil
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
