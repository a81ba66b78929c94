package studio

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/kalaconnect/craft-backend/internal/entity"
	"github.com/kalaconnect/craft-backend/internal/infrastructure"
	"github.com/kalaconnect/craft-backend/internal/prompt"
	"github.com/kalaconnect/craft-backend/internal/repo"
	"github.com/kalaconnect/craft-backend/pkg/logger"
)

const (
	defaultQRBoxSize = 10
	defaultQRBorder  = 4

	// pixels per box-size unit for the rendered PNG
	qrPixelsPerUnit = 32
)

type UseCase struct {
	image    infrastructure.ImageGenerator
	preparer infrastructure.ImagePreparer
	files    repo.FileRepo

	logger logger.Interface
}

func New(image infrastructure.ImageGenerator, preparer infrastructure.ImagePreparer, files repo.FileRepo, l logger.Interface) *UseCase {
	return &UseCase{
		image:    image,
		preparer: preparer,
		files:    files,
		logger:   l,
	}
}

// Mockup composites the uploaded craft into a generated scene and writes the
// result into the static dir under a fresh UUID-based name, so concurrent
// requests never collide on caller-controlled filenames.
func (uc *UseCase) Mockup(ctx context.Context, image []byte, mimeType, sceneContext string) (entity.GeneratedFile, error) {
	p, err := prompt.Mockup.Render(map[string]string{"context": sceneContext})
	if err != nil {
		return entity.GeneratedFile{}, fmt.Errorf("StudioUseCase - Mockup - prompt.Mockup.Render: %w", err)
	}

	prepared := uc.preparer.PrepareJPEG(infrastructure.ImageInput{Data: image, MimeType: mimeType})

	data, err := uc.image.GenerateImage(ctx, p, prepared)
	if err != nil {
		return entity.GeneratedFile{}, fmt.Errorf("StudioUseCase - Mockup - uc.image.GenerateImage: %w", err)
	}

	filename := fmt.Sprintf("mockup_%s.png", uuid.New())
	if err := uc.files.Save(ctx, filename, data); err != nil {
		return entity.GeneratedFile{}, fmt.Errorf("StudioUseCase - Mockup - uc.files.Save: %w", err)
	}

	return entity.GeneratedFile{Filename: filename, URL: "/static/" + filename}, nil
}

// QR renders the target URL as a PNG in the static dir. Size is the box-size
// scale and border toggles the quiet zone, mirroring the upstream API's knobs.
func (uc *UseCase) QR(ctx context.Context, url string, size, border int) (entity.GeneratedFile, error) {
	if size <= 0 {
		size = defaultQRBoxSize
	}
	if border < 0 {
		border = defaultQRBorder
	}

	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return entity.GeneratedFile{}, fmt.Errorf("StudioUseCase - QR - qrcode.New: %w", err)
	}
	code.DisableBorder = border == 0

	png, err := code.PNG(size * qrPixelsPerUnit)
	if err != nil {
		return entity.GeneratedFile{}, fmt.Errorf("StudioUseCase - QR - code.PNG: %w", err)
	}

	filename := fmt.Sprintf("qr_%s.png", uuid.New())
	if err := uc.files.Save(ctx, filename, png); err != nil {
		return entity.GeneratedFile{}, fmt.Errorf("StudioUseCase - QR - uc.files.Save: %w", err)
	}

	return entity.GeneratedFile{Filename: filename, URL: "/static/" + filename}, nil
}
