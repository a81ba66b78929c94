package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kalaconnect/craft-backend/internal/controller/restapi/v1/response"
	"github.com/kalaconnect/craft-backend/internal/controller/restapi/v1/validate"
	"github.com/kalaconnect/craft-backend/internal/dto"
	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

func (r *V1) generateMockup(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "image is required")
	}

	sceneContext := ctx.FormValue("context")
	if sceneContext == "" {
		return errorResponse(ctx, http.StatusBadRequest, "context is required")
	}

	data, contentType, err := readUpload(file)
	if err != nil {
		if errors.Is(err, errs.ErrFileTooLarge) || errors.Is(err, errs.ErrUnsupportedFileType) {
			return guardResponse(ctx, err)
		}

		return r.pipelineError(ctx, "restapi - v1 - generateMockup", err)
	}

	generated, err := r.studio.Mockup(ctx.UserContext(), data, contentType, sceneContext)
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - generateMockup", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.Mockup{
		Status:   "Mockup generated and saved successfully",
		Filename: generated.Filename,
		URL:      generated.URL,
	})
}

func (r *V1) generateQR(ctx *fiber.Ctx) error {
	var body dto.QRRequest

	if err := ctx.BodyParser(&body); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	if body.URL == "" {
		return errorResponse(ctx, http.StatusBadRequest, "url is required")
	}

	size := 0
	if body.Size != nil {
		size = *body.Size
		if size < validate.MinQRSize || size > validate.MaxQRSize {
			return errorResponse(ctx, http.StatusBadRequest,
				fmt.Sprintf("size must be between %d and %d", validate.MinQRSize, validate.MaxQRSize))
		}
	}

	border := -1
	if body.Border != nil {
		border = *body.Border
		if border < 0 || border > validate.MaxQRBorder {
			return errorResponse(ctx, http.StatusBadRequest,
				fmt.Sprintf("border must be between 0 and %d", validate.MaxQRBorder))
		}
	}

	generated, err := r.studio.QR(ctx.UserContext(), body.URL, size, border)
	if err != nil {
		return r.pipelineError(ctx, "restapi - v1 - generateQR", err)
	}

	return ctx.Status(http.StatusOK).JSON(response.QR{
		Status:   "QR code generated successfully",
		Filename: generated.Filename,
		URL:      generated.URL,
		QRData:   body.URL,
	})
}
