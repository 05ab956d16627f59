package router

import (
	"context"
	"maps"
	"sort"

	"github.com/vango-dev/outlet/pkg/view"
)

// NotFoundKey is the reserved key of the fallback route.
const NotFoundKey = "/404"

// RootPath is used when the window reports an empty location.
const RootPath = "/"

// Factory creates a new view for a route. It may block, e.g. while loading
// content; the router calls it off the caller's goroutine.
type Factory func(ctx context.Context) (view.Mountable, error)

// Route binds a title and a view factory to a path. Routes are never
// mutated by the router.
type Route struct {
	Title  string
	Create Factory
}

// Routes maps exact paths to routes.
type Routes map[string]Route

// Resolved is the result of a successful lookup.
type Resolved struct {
	// Key is the table key that matched: the path itself or NotFoundKey.
	Key   string
	Route Route
}

// Resolve looks up path. An exact match wins; otherwise the NotFoundKey
// route is returned. ok is false when neither exists.
func (rs Routes) Resolve(path string) (res Resolved, ok bool) {
	if route, found := rs[path]; found {
		return Resolved{Key: path, Route: route}, true
	}
	if route, found := rs[NotFoundKey]; found {
		return Resolved{Key: NotFoundKey, Route: route}, true
	}
	return Resolved{}, false
}

// Paths returns the route keys in sorted order.
func (rs Routes) Paths() []string {
	out := make([]string, 0, len(rs))
	for p := range rs {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Clone returns a shallow copy of the table.
func (rs Routes) Clone() Routes {
	return maps.Clone(rs)
}

// Sync adapts a constructor that cannot fail or block.
func Sync(fn func() view.Mountable) Factory {
	return func(context.Context) (view.Mountable, error) {
		return fn(), nil
	}
}

// SyncErr adapts a constructor that can fail synchronously, such as a view
// validating its configuration.
func SyncErr[V view.Mountable](fn func() (V, error)) Factory {
	return func(context.Context) (view.Mountable, error) {
		v, err := fn()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
