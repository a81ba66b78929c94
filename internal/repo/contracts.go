package repo

import (
	"context"
)

type (
	// StoryRepo stores and retrieves opaque story documents. Implementations
	// signal a disabled backend with errs.ErrStoreUnavailable and a missing
	// document with errs.ErrRecordNotFound.
	StoryRepo interface {
		Save(ctx context.Context, content map[string]interface{}) (string, error)
		GetByID(ctx context.Context, id string) (map[string]interface{}, error)
	}

	// FileRepo writes generated images into the static-serving directory.
	FileRepo interface {
		Save(ctx context.Context, filename string, data []byte) error
	}
)
