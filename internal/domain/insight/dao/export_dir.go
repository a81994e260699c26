package dao

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vadim/neo-insights/internal/domain/insight/entity"
)

// DirSource reads export documents from a local directory (e.g. docs/data)
type DirSource struct {
	root string
}

// NewDirSource creates a new directory export source
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

// Fetch reads root/name. Names containing path separators are rejected.
func (s *DirSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid document name %q: %w", name, entity.ErrSourceNotFound)
	}

	body, err := os.ReadFile(filepath.Join(s.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, entity.ErrSourceNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return body, nil
}
