// Package qdrant provides a dependency-injected administrative client for
// the Qdrant vector database.
//
// The package wraps the official Go client behind a narrow API seam and
// exposes the higher-level operations the admin surface needs: collection
// management, point storage and retrieval, similarity and recommendation
// queries, and maintenance tasks such as optimization and snapshots. It
// integrates with the fx dependency injection framework and validates
// connectivity on construction.
//
// # Core Features
//
//   - Managed client lifecycle with Fx integration and fail-fast health check
//   - One shared handle, safe for unbounded concurrent use
//   - Deterministic caller-id to UUID normalization for point identifiers
//   - Local filter translation with validation before any backend call
//   - Discriminated error kinds (not_found, validation, precondition, backend)
//   - Degraded partial results for aggregate views instead of all-or-nothing
//
// # Basic Usage
//
//	client, err := qdrant.NewClient(qdrant.Params{
//	    Config: &qdrant.Config{
//	        Endpoint: "localhost",
//	        Port:     6334,
//	    },
//	    Logger: appLogger,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	summaries, err := client.ListCollections(ctx)
//
// # Fx Usage
//
//	app := fx.New(
//	    qdrant.FXModule,
//	    fx.Provide(func() *qdrant.Config { return qdrant.DefaultConfig() }),
//	)
//
// All operations accept a context and honor the configured shared timeout;
// there are no per-operation overrides.
package qdrant
