package usecase

import (
	"context"

	"github.com/kalaconnect/craft-backend/internal/entity"
)

type (
	// StoryUseCase covers the craft storytelling pipeline: image analysis,
	// final story generation with best-effort persistence, and retrieval.
	StoryUseCase interface {
		Analyze(ctx context.Context, image []byte, mimeType, category string) (string, error)
		Complete(ctx context.Context, description string, answers []string) (*entity.Story, error)
		Fetch(ctx context.Context, id string) (map[string]interface{}, error)
	}

	// AdvisorUseCase covers the text-only assists: pricing, translation, and
	// the provider smoke test.
	AdvisorUseCase interface {
		Pricing(ctx context.Context, description, category string, hours int) (string, error)
		Translate(ctx context.Context, text, targetLanguage, usageContext string) (string, error)
		SmokeTest(ctx context.Context) (string, error)
	}

	// StudioUseCase produces files in the static directory: scene mockups and
	// QR codes.
	StudioUseCase interface {
		Mockup(ctx context.Context, image []byte, mimeType, sceneContext string) (entity.GeneratedFile, error)
		QR(ctx context.Context, url string, size, border int) (entity.GeneratedFile, error)
	}
)
