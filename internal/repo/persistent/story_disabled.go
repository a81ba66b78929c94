package persistent

import (
	"context"

	"github.com/kalaconnect/craft-backend/internal/repo"
	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

// DisabledStoryRepo stands in when Firebase credentials are absent. Every
// operation reports the store as unavailable; callers degrade rather than fail.
type DisabledStoryRepo struct {
}

var _ repo.StoryRepo = (*DisabledStoryRepo)(nil)

func NewDisabledStoryRepo() *DisabledStoryRepo {
	return &DisabledStoryRepo{}
}

func (r *DisabledStoryRepo) Save(_ context.Context, _ map[string]interface{}) (string, error) {
	return "", errs.ErrStoreUnavailable
}

func (r *DisabledStoryRepo) GetByID(_ context.Context, _ string) (map[string]interface{}, error) {
	return nil, errs.ErrStoreUnavailable
}
