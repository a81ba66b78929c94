package errs

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrStoreUnavailable = errors.New("story store is not configured")

	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	ErrMissingField = errors.New("missing template field")

	ErrInvalidJSON        = errors.New("model output is not valid JSON")
	ErrNoImageData        = errors.New("provider reply has no image data")
	ErrMalformedImageData = errors.New("malformed image data URI")

	ErrProviderTimeout = errors.New("provider request timed out")
)

// ProviderError is a non-success transport response from an external AI API.
type ProviderError struct {
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.Status, e.Body)
}
