package v1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kalaconnect/craft-backend/config"
	"github.com/kalaconnect/craft-backend/internal/controller/restapi/v1/response"
	"github.com/kalaconnect/craft-backend/internal/usecase"
	"github.com/kalaconnect/craft-backend/pkg/logger"
)

type V1 struct {
	story   usecase.StoryUseCase
	advisor usecase.AdvisorUseCase
	studio  usecase.StudioUseCase

	cfg    *config.Config
	logger logger.Interface
}

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// pipelineError reports a failure inside a use-case pipeline. The transport
// contract keeps these at HTTP 200 with a parseable error body; only upload
// validation maps to non-success status codes.
func (r *V1) pipelineError(ctx *fiber.Ctx, where string, err error) error {
	r.logger.Error(err, where)

	return ctx.Status(fiber.StatusOK).JSON(response.Error{Error: "An error occurred: " + err.Error()})
}
