package router

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Router.
type Option func(*Router)

// WithAppTitle sets the prefix of every document title.
func WithAppTitle(title string) Option {
	return func(r *Router) {
		r.appTitle = title
	}
}

// WithRouteChange registers a callback invoked with the path after each
// successful mount.
func WithRouteChange(fn func(path string)) Option {
	return func(r *Router) {
		r.onRouteChange = fn
	}
}

// WithObserver registers a callback for every render-cycle event. It is
// invoked outside the router lock and may call back into the router.
func WithObserver(fn func(Event)) Option {
	return func(r *Router) {
		r.observers = append(r.observers, fn)
	}
}

// WithLogger sets the logger used to report navigation failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the tracer for render-cycle spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Router) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}
