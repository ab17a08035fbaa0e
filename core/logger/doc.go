// Package logger builds slog loggers and provides attribute helpers for the
// fields the framework logs.
//
//	log := logger.New(
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(logger.Component("todo")),
//	)
//
//	log.Info("request completed",
//		logger.Method("GET"),
//		logger.Path("/todos"),
//		logger.StatusCode(200),
//		logger.Latency(time.Since(start)),
//	)
//
// Helpers that take an error or identifier return the empty slog.Attr for
// nil or empty input. slog drops empty attributes, so callers do not need
// nil checks:
//
//	log.Error("lookup failed", logger.Error(err), logger.RequestID(id))
package logger
