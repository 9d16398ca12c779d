// Package log provides the logging abstraction used by uframe components.
//
// The Logger interface decouples the library from any particular logging
// backend. A zerolog adapter is provided for applications and a no-op
// logger for tests and for callers that do not care about diagnostics
// (the registry definitions watcher logs reloads through it, for example).
//
// Use the zerolog adapter:
//
//	logger := log.NewZerologAdapter()
//
// Or silence everything:
//
//	logger := log.NewNoopLogger()
package log
