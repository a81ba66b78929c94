package persistent

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kalaconnect/craft-backend/internal/repo"
	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

// StoryRepo persists story documents in a Firestore collection with
// store-assigned ids.
type StoryRepo struct {
	client     *firestore.Client
	collection string
}

var _ repo.StoryRepo = (*StoryRepo)(nil)

func NewStoryRepo(ctx context.Context, projectID string, credentialsJSON []byte, collection string) (*StoryRepo, error) {
	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("StoryRepo - NewStoryRepo - firestore.NewClient: %w", err)
	}

	return &StoryRepo{client: client, collection: collection}, nil
}

func (r *StoryRepo) Save(ctx context.Context, content map[string]interface{}) (string, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, content)
	if err != nil {
		return "", fmt.Errorf("StoryRepo - Save - r.client.Collection.Add: %w", err)
	}

	return ref.ID, nil
}

func (r *StoryRepo) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("StoryRepo - GetByID: %w", errs.ErrRecordNotFound)
		}

		return nil, fmt.Errorf("StoryRepo - GetByID - r.client.Collection.Doc.Get: %w", err)
	}

	return doc.Data(), nil
}

func (r *StoryRepo) Close() error {
	return r.client.Close()
}
