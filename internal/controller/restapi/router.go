package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/kalaconnect/craft-backend/config"
	v1 "github.com/kalaconnect/craft-backend/internal/controller/restapi/v1"
	"github.com/kalaconnect/craft-backend/internal/usecase"
	"github.com/kalaconnect/craft-backend/pkg/logger"
)

// NewRouter mounts CORS, the static file directory, and all API routes on the
// app root. The frontend fetches generated files straight from /static.
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	story usecase.StoryUseCase,
	advisor usecase.AdvisorUseCase,
	studio usecase.StudioUseCase,
	l logger.Interface,
) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigin,
		AllowMethods: "GET,POST,OPTIONS",
	}))

	app.Static("/static", cfg.Static.Dir)

	v1.NewCraftRoutes(app, story, advisor, studio, cfg, l)
}
