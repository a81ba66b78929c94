package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/kalaconnect/craft-backend/internal/entity"
	"github.com/kalaconnect/craft-backend/internal/infrastructure"
	"github.com/kalaconnect/craft-backend/internal/prompt"
	"github.com/kalaconnect/craft-backend/internal/repo"
	"github.com/kalaconnect/craft-backend/pkg/logger"
	"github.com/kalaconnect/craft-backend/pkg/modeljson"
)

type UseCase struct {
	text    infrastructure.TextGenerator
	stories repo.StoryRepo

	logger logger.Interface
}

func New(text infrastructure.TextGenerator, stories repo.StoryRepo, l logger.Interface) *UseCase {
	return &UseCase{
		text:    text,
		stories: stories,
		logger:  l,
	}
}

// Analyze sends the craft photo to the vision model and returns the raw
// analysis text (description plus interview questions). The reply is not
// JSON-parsed here; the frontend consumes it as-is.
func (uc *UseCase) Analyze(ctx context.Context, image []byte, mimeType, category string) (string, error) {
	p, err := prompt.VisionAnalysis.Render(map[string]string{"category": category})
	if err != nil {
		return "", fmt.Errorf("StoryUseCase - Analyze - prompt.VisionAnalysis.Render: %w", err)
	}

	analysis, err := uc.text.GenerateVision(ctx, p, infrastructure.ImageInput{Data: image, MimeType: mimeType})
	if err != nil {
		return "", fmt.Errorf("StoryUseCase - Analyze - uc.text.GenerateVision: %w", err)
	}

	return analysis, nil
}

// Complete generates the final marketing package and persists it best-effort:
// a failed store write degrades to a story without an id, never to a caller
// error. A reply that does not parse as JSON is fatal to the call.
func (uc *UseCase) Complete(ctx context.Context, description string, answers []string) (*entity.Story, error) {
	p, err := prompt.MasterStoryteller.Render(map[string]string{
		"description": description,
		"answers":     strings.Join(answers, "\n- "),
	})
	if err != nil {
		return nil, fmt.Errorf("StoryUseCase - Complete - prompt.MasterStoryteller.Render: %w", err)
	}

	raw, err := uc.text.GenerateText(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("StoryUseCase - Complete - uc.text.GenerateText: %w", err)
	}

	content, err := modeljson.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("StoryUseCase - Complete - modeljson.Extract: %w", err)
	}

	story := &entity.Story{Content: content}

	id, err := uc.stories.Save(ctx, content)
	if err != nil {
		uc.logger.Warn("StoryUseCase - Complete - story not persisted: %v", err)

		return story, nil
	}

	story.ID = id

	return story, nil
}

// Fetch retrieves a stored story document by id.
func (uc *UseCase) Fetch(ctx context.Context, id string) (map[string]interface{}, error) {
	content, err := uc.stories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("StoryUseCase - Fetch - uc.stories.GetByID: %w", err)
	}

	return content, nil
}
