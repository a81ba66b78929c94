package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

const (
	MaxFileSize int64 = 10 * 1024 * 1024

	MinQRSize = 1
	MaxQRSize = 40

	MaxQRBorder = 20
)

var (
	AllowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	AllowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
)

// File checks an upload against the size cap and both allow-lists before any
// processing. Extension and declared content type must each pass on their own;
// a match on only one of them is rejected. Purely evaluative, no side effects.
func File(size int64, filename, contentType string) error {
	if size > MaxFileSize {
		return fmt.Errorf("file size cant be more than %d bytes: %w", MaxFileSize, errs.ErrFileTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if filename == "" || !AllowedExtensions[ext] {
		return fmt.Errorf("allowed extensions: .jpg, .jpeg, .png, .gif, .webp: %w", errs.ErrUnsupportedFileType)
	}

	if !AllowedContentTypes[contentType] {
		return fmt.Errorf("allowed content types: image/jpeg, image/png, image/gif, image/webp: %w", errs.ErrUnsupportedFileType)
	}

	return nil
}
