package processor

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/kalaconnect/craft-backend/internal/infrastructure"
)

const jpegQuality = 90

type ImageProcessor struct {
}

var _ infrastructure.ImagePreparer = (*ImageProcessor)(nil)

func New() *ImageProcessor {
	return &ImageProcessor{}
}

// PrepareJPEG re-encodes an upload to JPEG so the data URI header sent to the
// image provider matches the payload. Best-effort: formats the codec cannot
// decode (e.g. webp) pass through with their original bytes and mime type.
func (p *ImageProcessor) PrepareJPEG(in infrastructure.ImageInput) infrastructure.ImageInput {
	img, err := decodeImage(in.Data)
	if err != nil {
		return in
	}

	data, err := encodeJPEG(img)
	if err != nil {
		return in
	}

	return infrastructure.ImageInput{Data: data, MimeType: "image/jpeg"}
}

func decodeImage(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - decodeImage - imaging.Decode: %w", err)
	}

	return img, nil
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		return nil, fmt.Errorf("ImageProcessor - encodeJPEG - imaging.Encode: %w", err)
	}

	return buf.Bytes(), nil
}
