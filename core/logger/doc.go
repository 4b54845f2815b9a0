// Package logger builds structured loggers on top of the standard slog
// package, with environment presets and attribute helpers shared across the
// client SDK.
//
// Create a logger with a preset and override what you need:
//
//	log := logger.New(
//		logger.WithDevelopment("clientkit"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("request retried",
//		logger.Component("apiclient"),
//		logger.Path("/tournaments"),
//		logger.StatusCode(401),
//	)
//
// Development uses text output at debug level; production uses JSON at info
// level. Attribute helpers follow the empty-Attr pattern: passing a nil error
// or empty value yields an attribute slog silently drops, so call sites need
// no nil checks.
package logger
