package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kalaconnect/craft-backend/config"
	"github.com/kalaconnect/craft-backend/internal/usecase"
	"github.com/kalaconnect/craft-backend/pkg/logger"
)

func NewCraftRoutes(
	root fiber.Router,
	story usecase.StoryUseCase,
	advisor usecase.AdvisorUseCase,
	studio usecase.StudioUseCase,
	cfg *config.Config,
	l logger.Interface,
) {
	r := &V1{story: story, advisor: advisor, studio: studio, cfg: cfg, logger: l}

	{
		// Service
		root.Get("/", r.health)
		root.Get("/status", r.status)
		root.Get("/test-ai", r.testAI)

		// Story pipeline
		root.Post("/generate-story", r.generateStory)
		root.Post("/complete-story", r.completeStory)
		root.Get("/story/:id", r.getStory)

		// Assists
		root.Post("/get-pricing", r.getPricing)
		root.Post("/translate", r.translate)

		// Studio
		root.Post("/generate-mockup", r.generateMockup)
		root.Post("/generate-qr", r.generateQR)
	}
}
