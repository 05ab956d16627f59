package router

// Window is the browser surface the router drives: the current location,
// session history, the document title and back/forward notifications.
type Window interface {
	// Location returns the current path. Empty means "/".
	Location() string

	// PushState adds a history entry without reloading.
	PushState(path string)

	// SetTitle sets the document title.
	SetTitle(title string)

	// AddPopStateListener registers fn for back/forward navigation and
	// returns a function that removes the registration.
	AddPopStateListener(fn func()) (remove func())
}
