package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaconnect/craft-backend/internal/infrastructure"
)

type stubTextGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (s *stubTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt

	return s.reply, s.err
}

func (s *stubTextGenerator) GenerateVision(_ context.Context, prompt string, _ infrastructure.ImageInput) (string, error) {
	s.lastPrompt = prompt

	return s.reply, s.err
}

func TestPricing_PassesReplyThroughUnparsed(t *testing.T) {
	const stubbed = `{"price_range_inr":"₹1000-₹2000","price_range_usd":"$12-$24"}`
	gen := &stubTextGenerator{reply: stubbed}
	uc := New(gen)

	out, err := uc.Pricing(context.Background(), "wooden bowl", "woodwork", 5)
	require.NoError(t, err)

	// raw text, not a parsed object
	assert.Equal(t, stubbed, out)
	assert.Contains(t, gen.lastPrompt, "Category: woodwork")
	assert.Contains(t, gen.lastPrompt, "Hours to make: 5")
}

func TestTranslate(t *testing.T) {
	gen := &stubTextGenerator{reply: "texto adaptado"}
	uc := New(gen)

	out, err := uc.Translate(context.Background(), "handmade with love", "Spanish", "Instagram post")
	require.NoError(t, err)

	assert.Equal(t, "texto adaptado", out)
	assert.Contains(t, gen.lastPrompt, "into Spanish")
	assert.Contains(t, gen.lastPrompt, `"Instagram post"`)
	assert.Contains(t, gen.lastPrompt, "handmade with love")
}

func TestPricing_ProviderError(t *testing.T) {
	uc := New(&stubTextGenerator{err: errors.New("upstream down")})

	_, err := uc.Pricing(context.Background(), "d", "c", 1)
	assert.Error(t, err)
}

func TestSmokeTest(t *testing.T) {
	gen := &stubTextGenerator{reply: "they carry a human story"}
	uc := New(gen)

	out, err := uc.SmokeTest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "they carry a human story", out)
	assert.Contains(t, gen.lastPrompt, "handmade crafts")
}
