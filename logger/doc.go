// Package logger provides structured logging for problemkit applications
// using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
// Problem chains are logged as structured objects so every cause in the
// chain survives into the log stream:
//
//	log := logger.Get("importer")
//	log.Problem("import failed", p)
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
package logger
