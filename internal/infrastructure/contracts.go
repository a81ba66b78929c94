package infrastructure

import (
	"context"
)

// ImageInput is an inline image handed to a provider.
type ImageInput struct {
	Data     []byte
	MimeType string
}

type (
	// TextGenerator is the text/vision model provider.
	TextGenerator interface {
		GenerateText(ctx context.Context, prompt string) (string, error)
		GenerateVision(ctx context.Context, prompt string, image ImageInput) (string, error)
	}

	// ImageGenerator is the image-generation provider. The returned bytes are
	// the decoded image, never a data URI.
	ImageGenerator interface {
		GenerateImage(ctx context.Context, prompt string, image ImageInput) ([]byte, error)
	}

	// ImagePreparer normalizes an upload before provider submission.
	ImagePreparer interface {
		PrepareJPEG(image ImageInput) ImageInput
	}
)
