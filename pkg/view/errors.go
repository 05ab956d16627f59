package view

import "github.com/vango-dev/outlet/internal/errors"

// ErrNilRenderer is returned when a view was constructed without a Renderer.
var ErrNilRenderer = errors.New("E203")
