package content

import (
	"context"
	"io/fs"

	"github.com/vango-dev/outlet/internal/errors"
)

var (
	// ErrNotFound is returned when no content exists for a key.
	ErrNotFound = errors.New("E301")

	// ErrInvalidKey is returned for keys that are not clean relative paths.
	ErrInvalidKey = errors.New("E302")
)

// Source loads content by key.
type Source interface {
	Load(ctx context.Context, key string) ([]byte, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, key string) ([]byte, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context, key string) ([]byte, error) {
	return f(ctx, key)
}

// ValidKey reports whether key is a clean relative path.
func ValidKey(key string) bool {
	return key != "." && fs.ValidPath(key)
}

func checkKey(key string) error {
	if !ValidKey(key) {
		return errors.New("E302").WithDetail("key " + key + " is not a clean relative path")
	}
	return nil
}
