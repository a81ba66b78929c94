package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

func TestFile_Accepts(t *testing.T) {
	for _, tc := range []struct {
		filename    string
		contentType string
	}{
		{"craft.jpg", "image/jpeg"},
		{"craft.JPEG", "image/jpeg"},
		{"photo.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"modern.webp", "image/webp"},
	} {
		assert.NoError(t, File(1024, tc.filename, tc.contentType), "%s/%s", tc.filename, tc.contentType)
	}
}

func TestFile_SizeLimit(t *testing.T) {
	err := File(MaxFileSize+1, "craft.jpg", "image/jpeg")
	assert.True(t, errors.Is(err, errs.ErrFileTooLarge))

	// exactly at the cap is fine
	assert.NoError(t, File(MaxFileSize, "craft.jpg", "image/jpeg"))
}

func TestFile_BothListsRequired(t *testing.T) {
	// extension allowed, content type not
	err := File(10, "craft.jpg", "text/plain")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFileType))

	// content type allowed, extension not
	err = File(10, "craft.txt", "image/jpeg")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFileType))

	// neither
	err = File(10, "craft.txt", "text/plain")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFileType))
}

func TestFile_EmptyFilename(t *testing.T) {
	err := File(10, "", "image/jpeg")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFileType))
}

func TestFile_ExtensionSpoofing(t *testing.T) {
	// double extension only counts the last one
	err := File(10, "craft.jpg.exe", "image/jpeg")
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFileType))
}
