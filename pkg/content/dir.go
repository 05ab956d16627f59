package content

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
)

// DirSource serves content from files under a root directory.
type DirSource struct {
	root string
	fsys fs.FS
}

// NewDirSource returns a source rooted at dir. The directory must exist.
func NewDirSource(dir string) (*DirSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir: %s is not a directory", dir)
	}
	return &DirSource{root: dir, fsys: os.DirFS(dir)}, nil
}

// Root returns the directory the source reads from.
func (s *DirSource) Root() string {
	return s.root
}

// Load reads the file named by key.
func (s *DirSource) Load(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, key)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", key, err)
	}
	return data, nil
}
