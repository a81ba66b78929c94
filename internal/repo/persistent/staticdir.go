package persistent

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kalaconnect/craft-backend/internal/repo"
)

// StaticDirRepo writes generated images into the directory that the HTTP
// server exposes at /static.
type StaticDirRepo struct {
	dir string
}

var _ repo.FileRepo = (*StaticDirRepo)(nil)

func NewStaticDirRepo(dir string) (*StaticDirRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("StaticDirRepo - NewStaticDirRepo - os.MkdirAll: %w", err)
	}

	return &StaticDirRepo{dir: dir}, nil
}

func (r *StaticDirRepo) Save(_ context.Context, filename string, data []byte) error {
	// filenames are generated server-side; Base guards against separators anyway
	path := filepath.Join(r.dir, filepath.Base(filename))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("StaticDirRepo - Save - os.WriteFile: %w", err)
	}

	return nil
}
