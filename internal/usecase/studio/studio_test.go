package studio

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaconnect/craft-backend/internal/infrastructure"
	"github.com/kalaconnect/craft-backend/pkg/logger"
)

type stubImageGenerator struct {
	data       []byte
	err        error
	calls      int
	lastPrompt string
	lastInput  infrastructure.ImageInput
}

func (s *stubImageGenerator) GenerateImage(_ context.Context, prompt string, image infrastructure.ImageInput) ([]byte, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastInput = image

	return s.data, s.err
}

type passthroughPreparer struct{}

func (passthroughPreparer) PrepareJPEG(in infrastructure.ImageInput) infrastructure.ImageInput {
	return in
}

type memFileRepo struct {
	files   map[string][]byte
	saveErr error
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{files: map[string][]byte{}}
}

func (r *memFileRepo) Save(_ context.Context, filename string, data []byte) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	r.files[filename] = data

	return nil
}

func TestMockup(t *testing.T) {
	gen := &stubImageGenerator{data: []byte("generated-png")}
	files := newMemFileRepo()
	uc := New(gen, passthroughPreparer{}, files, logger.New("error"))

	out, err := uc.Mockup(context.Background(), []byte{0x01}, "image/png", "on a rustic wooden shelf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Filename, "mockup_"))
	assert.True(t, strings.HasSuffix(out.Filename, ".png"))
	assert.Equal(t, "/static/"+out.Filename, out.URL)
	assert.Equal(t, []byte("generated-png"), files.files[out.Filename])
	assert.Contains(t, gen.lastPrompt, "'on a rustic wooden shelf'")
}

func TestMockup_UniqueFilenames(t *testing.T) {
	gen := &stubImageGenerator{data: []byte("x")}
	files := newMemFileRepo()
	uc := New(gen, passthroughPreparer{}, files, logger.New("error"))

	a, err := uc.Mockup(context.Background(), nil, "image/png", "c")
	require.NoError(t, err)
	b, err := uc.Mockup(context.Background(), nil, "image/png", "c")
	require.NoError(t, err)

	assert.NotEqual(t, a.Filename, b.Filename)
}

func TestMockup_ProviderFailureWritesNothing(t *testing.T) {
	gen := &stubImageGenerator{err: errors.New("no image")}
	files := newMemFileRepo()
	uc := New(gen, passthroughPreparer{}, files, logger.New("error"))

	_, err := uc.Mockup(context.Background(), nil, "image/png", "c")

	require.Error(t, err)
	assert.Empty(t, files.files)
}

func TestQR(t *testing.T) {
	files := newMemFileRepo()
	uc := New(&stubImageGenerator{}, passthroughPreparer{}, files, logger.New("error"))

	out, err := uc.QR(context.Background(), "https://example.com", 10, 4)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Filename, "qr_"))
	assert.True(t, strings.HasSuffix(out.Filename, ".png"))
	assert.Equal(t, "/static/"+out.Filename, out.URL)

	img, err := png.Decode(bytes.NewReader(files.files[out.Filename]))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
}

func TestQR_DefaultsApplied(t *testing.T) {
	files := newMemFileRepo()
	uc := New(&stubImageGenerator{}, passthroughPreparer{}, files, logger.New("error"))

	out, err := uc.QR(context.Background(), "https://example.com", 0, -1)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(files.files[out.Filename]))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
}
