// Package logger provides structured logging for the service.
//
// It wraps Uber's Zap logger behind a small method set so callers log with
// a message, an optional error, and optional key-value field maps without
// touching Zap types directly. It integrates with the fx dependency
// injection framework for easy incorporation into the application.
//
// Core Features:
//   - Structured JSON logging with key-value pairs
//   - Configurable minimum level (debug, info, warning, error)
//   - Constant service name and pid fields on every entry
//   - ISO8601 timestamps, output to stderr
//   - Fx module with a flush hook on shutdown
//
// Basic Usage:
//
//	import "github.com/vectorops/qdrant-admin/logger"
//
//	log := logger.NewLogger(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "qdrant-admin",
//	})
//
//	log.Info("collection created", nil, map[string]interface{}{
//		"collection": "knowledge_base",
//	})
//
//	log.Error("backend call failed", err, nil)
//
// Fx Usage:
//
//	app := fx.New(
//		fx.Provide(func() logger.Config { ... }),
//		logger.FXModule,
//	)
package logger
