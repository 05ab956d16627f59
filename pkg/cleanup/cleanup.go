// Package cleanup provides an ordered registry of teardown callbacks.
//
// Views register a callback for every resource they acquire while
// rendering: child views, timers, subscriptions. Running the registry
// invokes the callbacks in registration order and forgets them, so a
// second Run does nothing.
package cleanup

// Registry is an ordered list of zero-argument teardown callbacks.
// The zero value is ready to use. A Registry is not safe for concurrent use;
// it belongs to exactly one view.
type Registry struct {
	fns []func()
}

// Add registers fn to run on the next Run. Nil callbacks are ignored.
func (r *Registry) Add(fn func()) {
	if fn == nil {
		return
	}
	r.fns = append(r.fns, fn)
}

// Run invokes every registered callback in registration order and then
// empties the registry. Callbacks added while Run is in progress are kept
// for the next Run.
func (r *Registry) Run() {
	if len(r.fns) == 0 {
		return
	}
	fns := r.fns
	r.fns = nil
	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of pending callbacks.
func (r *Registry) Len() int {
	return len(r.fns)
}
