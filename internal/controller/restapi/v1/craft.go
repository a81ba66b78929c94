package v1

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/kalaconnect/craft-backend/internal/controller/restapi/v1/response"
	"github.com/kalaconnect/craft-backend/internal/controller/restapi/v1/validate"
	"github.com/kalaconnect/craft-backend/internal/dto"
	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

func (r *V1) health(ctx *fiber.Ctx) error {
	return ctx.Status(http.StatusOK).JSON(response.Health{Status: "KalaConnect backend is online"})
}

func (r *V1) status(ctx *fiber.Ctx) error {
	_, statErr := os.Stat(r.cfg.Static.Dir)

	return ctx.Status(http.StatusOK).JSON(response.Status{
		GeminiConfigured:     r.cfg.Gemini.APIKey != "",
		OpenRouterConfigured: r.cfg.OpenRouter.APIKey != "",
		FirebaseConfigured:   r.cfg.Firebase.Available(),
		StaticDirPresent:     statErr == nil,
	})
}

func (r *V1) testAI(ctx *fiber.Ctx) error {
	reply, err := r.advisor.SmokeTest(ctx.UserContext())
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - testAI", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.AITest{AIResponse: reply})
}

// readUpload validates a multipart image against the guard and reads it fully
// into memory. The guard runs before any bytes are read, so oversized and
// mistyped uploads never reach a provider.
func readUpload(file *multipart.FileHeader) ([]byte, string, error) {
	contentType := file.Header.Get("Content-Type")

	if err := validate.File(file.Size, file.Filename, contentType); err != nil {
		return nil, "", err
	}

	reader, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", err
	}

	return data, contentType, nil
}

func guardResponse(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, errs.ErrFileTooLarge) {
		return errorResponse(ctx, http.StatusRequestEntityTooLarge, err.Error())
	}

	return errorResponse(ctx, http.StatusUnsupportedMediaType, err.Error())
}

func (r *V1) generateStory(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "image is required")
	}

	category := ctx.FormValue("category")
	if category == "" {
		return errorResponse(ctx, http.StatusBadRequest, "category is required")
	}

	data, contentType, err := readUpload(file)
	if err != nil {
		if errors.Is(err, errs.ErrFileTooLarge) || errors.Is(err, errs.ErrUnsupportedFileType) {
			return guardResponse(ctx, err)
		}

		return r.pipelineError(ctx, "restapi - v1 - generateStory", err)
	}

	analysis, err := r.story.Analyze(ctx.UserContext(), data, contentType, category)
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - generateStory", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.Analysis{AIAnalysis: analysis})
}

func (r *V1) completeStory(ctx *fiber.Ctx) error {
	var body dto.StoryData

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	story, err := r.story.Complete(ctx.UserContext(), body.InitialDescription, body.ArtisanAnswers)
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - completeStory", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.CompletedStory{
		StoryID:      story.ID,
		FinalContent: story.Content,
	})
}

func (r *V1) getPricing(ctx *fiber.Ctx) error {
	var body dto.PricingRequest

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	suggestion, err := r.advisor.Pricing(ctx.UserContext(), body.Description, body.Category, body.TimeTakenHours)
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - getPricing", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.Pricing{PricingSuggestion: suggestion})
}

func (r *V1) translate(ctx *fiber.Ctx) error {
	var body dto.TranslateRequest

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	translated, err := r.advisor.Translate(ctx.UserContext(), body.TextToTranslate, body.TargetLanguage, body.Context)
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - translate", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.Translation{TranslatedText: translated})
}

func (r *V1) getStory(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	content, err := r.story.Fetch(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.ErrStoreUnavailable) {
			return errorResponse(ctx, http.StatusNotFound, "story store is not configured")
		}
		if errors.Is(err, errs.ErrRecordNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "story not found")
		}
		r.logger.Error(err, "restapi - v1 - getStory")

		return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
	}

	return ctx.Status(http.StatusOK).JSON(content)
}
