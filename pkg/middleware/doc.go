// Package middleware provides HTTP middleware for outlet servers.
//
// This package includes:
//   - Tracing: an OpenTelemetry server span per request
//   - Logger: structured request logging with slog
//
// Both are plain func(http.Handler) http.Handler values and work with chi
// or net/http directly:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Logger(logger))
//	r.Use(middleware.Tracing(nil))
//
// # Tracing
//
// Spans are named "http.request" and carry http.method, http.route and
// http.status_code attributes. Responses with a 5xx status mark the span as
// an error. Pass nil to use the global tracer provider.
package middleware
