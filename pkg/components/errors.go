package components

import "github.com/vango-dev/outlet/internal/errors"

var (
	// ErrEmptyLabel is returned by NewButton for a blank label.
	ErrEmptyLabel = errors.New("E202").WithDetail("Button label must not be empty.")

	// ErrMissingHref is returned by NewButton for an anchor without href.
	ErrMissingHref = errors.New("E204")

	// ErrNoImages is returned by NewGallery for an empty image list.
	ErrNoImages = errors.New("E201").WithDetail("A gallery needs at least one image.")

	// ErrNoSources is returned by NewLazyVideo for an empty source list.
	ErrNoSources = errors.New("E205")
)
