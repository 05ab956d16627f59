package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

const tracerName = "github.com/vango-dev/outlet/pkg/router"

var (
	// ErrNilView is reported when a route factory returns neither a view
	// nor an error.
	ErrNilView = errors.New("router: route created a nil view")

	// ErrNilFactory is reported when a matched route has no Create.
	ErrNilFactory = errors.New("router: route has no factory")
)

// Router resolves paths against a route table and keeps exactly one view
// mounted in the outlet. Views are rendered and destroyed without the
// router lock held, so they may call Navigate, Current or Token.
type Router struct {
	outlet *dom.Node
	win    Window
	routes Routes

	appTitle      string
	onRouteChange func(path string)
	observers     []func(Event)
	logger        *slog.Logger
	tracer        trace.Tracer

	// mu guards everything below as well as the outlet's children.
	mu      sync.Mutex
	token   uint64
	current view.Mountable
	ctx     context.Context
	removes []func()

	inflight sync.WaitGroup
}

// New creates a router that renders into outlet. The route table is copied;
// later changes to routes do not affect the router.
func New(outlet *dom.Node, win Window, routes Routes, opts ...Option) *Router {
	r := &Router{
		outlet: outlet,
		win:    win,
		routes: routes.Clone(),
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start registers the popstate listener and renders the current location.
// ctx is handed to route factories. Start must be called at most once;
// a second call registers a second listener.
func (r *Router) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	remove := r.win.AddPopStateListener(r.handlePopState)

	r.mu.Lock()
	r.ctx = ctx
	r.removes = append(r.removes, remove)
	r.mu.Unlock()

	r.render()
}

// Stop removes the popstate listener, invalidates any in-flight render
// cycle, clears the outlet and destroys the current view.
func (r *Router) Stop() {
	r.mu.Lock()
	removes := r.removes
	r.removes = nil
	r.mu.Unlock()

	for _, remove := range removes {
		remove()
	}

	r.mu.Lock()
	r.token++
	token := r.token
	prev := r.current
	r.current = nil
	r.outlet.ReplaceChildren()
	r.mu.Unlock()

	r.destroy(prev)
	r.emit(Event{Kind: EventStopped, Token: token})
}

// Navigate pushes path onto the history when it differs from the current
// location and runs a render cycle. Navigating to the current path
// re-renders it. Navigate does not wait for the view to be created.
func (r *Router) Navigate(path string) {
	if r.win.Location() != path {
		r.win.PushState(path)
	}
	r.render()
}

// Wait blocks until every render cycle started so far has finished.
// It must not be called concurrently with Navigate or Start.
func (r *Router) Wait() {
	r.inflight.Wait()
}

// Inspect runs fn with the outlet while holding the router lock, so the
// outlet cannot change underneath it. fn must not call into the router.
func (r *Router) Inspect(fn func(outlet *dom.Node)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.outlet)
}

// Current returns the mounted view, or nil.
func (r *Router) Current() view.Mountable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Token returns the live navigation token.
func (r *Router) Token() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token
}

// Routes returns a copy of the route table.
func (r *Router) Routes() Routes {
	return r.routes.Clone()
}

func (r *Router) handlePopState() {
	r.render()
}

// title formats the document title for a route.
func (r *Router) title(routeTitle string) string {
	if r.appTitle == "" {
		return routeTitle
	}
	return r.appTitle + " - " + routeTitle
}

// render runs the synchronous half of a render cycle and hands creation to
// a goroutine.
func (r *Router) render() {
	r.mu.Lock()
	r.token++
	token := r.token
	path := r.win.Location()
	if path == "" {
		path = RootPath
	}

	resolved, ok := r.routes.Resolve(path)
	if !ok {
		prev := r.current
		r.current = nil
		r.outlet.ReplaceChildren()
		r.mu.Unlock()

		r.destroy(prev)
		r.emit(Event{Kind: EventUnmatched, Path: path, Token: token})
		return
	}

	// The title tracks the matched route even while content is loading.
	r.win.SetTitle(r.title(resolved.Route.Title))

	// The previous page disappears now, not when the next one is ready.
	prev := r.current
	r.current = nil
	r.outlet.ReplaceChildren()

	ctx := r.ctx
	r.inflight.Add(1)
	r.mu.Unlock()

	r.destroy(prev)

	started := time.Now()
	ctx, span := r.tracer.Start(ctx, "router.navigate", trace.WithAttributes(
		attribute.String("outlet.path", path),
		attribute.String("outlet.route", resolved.Key),
		attribute.Int64("outlet.token", int64(token)),
	))

	r.emit(Event{Kind: EventStarted, Path: path, Key: resolved.Key, Token: token})

	go r.load(ctx, span, cycle{token: token, path: path, key: resolved.Key, route: resolved.Route, started: started})
}

type cycle struct {
	token   uint64
	path    string
	key     string
	route   Route
	started time.Time
}

// load runs the route factory and, if the cycle is still current, mounts
// the result. The view renders into a detached fragment without the router
// lock held, so Render and cleanup callbacks may call back into the router.
// The fragment is moved into the outlet only if the cycle is still current.
func (r *Router) load(ctx context.Context, span trace.Span, c cycle) {
	defer r.inflight.Done()
	defer span.End()

	v, err := create(ctx, c.route)

	staging := dom.NewFragment()
	if err == nil && !r.stale(c.token) {
		if err = mount(v, staging); err != nil {
			r.destroy(v)
			v = nil
		}
	}

	r.mu.Lock()
	if c.token != r.token {
		r.mu.Unlock()
		r.destroy(v)
		span.SetAttributes(attribute.String("outlet.outcome", EventDiscarded.String()))
		r.emit(Event{Kind: EventDiscarded, Path: c.path, Key: c.key, Token: c.token, Err: err, Duration: time.Since(c.started)})
		return
	}

	if err != nil {
		r.outlet.ReplaceChildren()
		r.mu.Unlock()

		r.logger.Error("failed to load route", "path", c.path, "route", c.key, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("outlet.outcome", EventFailed.String()))
		r.emit(Event{Kind: EventFailed, Path: c.path, Key: c.key, Token: c.token, Err: err, Duration: time.Since(c.started)})
		return
	}

	r.outlet.ReplaceChildren(staging)
	r.current = v
	r.mu.Unlock()

	span.SetAttributes(attribute.String("outlet.outcome", EventMounted.String()))
	if r.onRouteChange != nil {
		r.onRouteChange(c.path)
	}
	r.emit(Event{Kind: EventMounted, Path: c.path, Key: c.key, Token: c.token, Duration: time.Since(c.started)})
}

// stale reports whether a newer render cycle or Stop has superseded token.
func (r *Router) stale(token uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return token != r.token
}

// destroy tears v down, logging instead of propagating a panic from its
// cleanup callbacks.
func (r *Router) destroy(v view.Mountable) {
	if v == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("view destroy panicked", "panic", fmt.Sprint(p))
		}
	}()
	v.Destroy()
}

// mount mounts v into parent, turning a panic in Render into an error.
func mount(v view.Mountable, parent *dom.Node) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("router: view render panicked: %v", p)
		}
	}()
	return v.Mount(parent)
}

// create calls the route factory, turning a panic into an error so that a
// broken page cannot take the process down.
func create(ctx context.Context, route Route) (v view.Mountable, err error) {
	if route.Create == nil {
		return nil, ErrNilFactory
	}
	defer func() {
		if p := recover(); p != nil {
			v = nil
			err = fmt.Errorf("router: route factory panicked: %v", p)
		}
	}()

	v, err = route.Create(ctx)
	if err != nil {
		if v != nil && !isNil(v) {
			v.Destroy()
		}
		return nil, err
	}
	if v == nil || isNil(v) {
		return nil, ErrNilView
	}
	return v, nil
}

func (r *Router) emit(e Event) {
	for _, fn := range r.observers {
		fn(e)
	}
}

// isNil reports whether v holds a typed nil pointer.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
