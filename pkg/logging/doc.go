// Package logging provides the structured logging system for the data.gov
// MCP server.
//
// It is a thin layer over Go's standard slog package that adds a subsystem
// tag to every entry and a printf-style call surface, so call sites read as
//
//	logging.Info("Bootstrap", "Loaded configuration from %s", path)
//	logging.Error("CKAN", err, "Request for %s failed", action)
//
// # Log Levels
//
//   - Debug: request/response detail for troubleshooting
//   - Info: normal operational messages
//   - Warn: recoverable anomalies
//   - Error: failures, always with the causing error attached
//
// # Output Discipline
//
// The writer is chosen once at startup via Init. When the server runs with
// the stdio transport, stdout carries MCP protocol frames, so all logging
// must be directed to stderr (or discarded); the serve command takes care
// of this. Level filtering happens in the slog handler, so suppressed
// entries cost nothing.
//
// The package is safe for concurrent use from multiple goroutines.
package logging
