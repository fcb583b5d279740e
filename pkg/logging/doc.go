// Package logging provides structured logging utilities for cookpot binaries.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so the CLI, the API server, and the Lambda entrypoint all log the same way.
// It supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cookpotd", "v1.0.0")
//	    slog.Info("catalog loaded", "ingredients", catalog.Len())
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cookpot", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug cookpot simulate -i meat -i meat -i meat -i meat
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "cookpotd",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
