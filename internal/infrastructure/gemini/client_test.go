package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaconnect/craft-backend/internal/infrastructure"
	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Options{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		TextModel:   "text-model",
		VisionModel: "vision-model",
		HTTPClient:  srv.Client(),
	})
}

func candidateReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateText(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateContentRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("content-type", "application/json")
		_, _ = w.Write([]byte(candidateReply("a fine bowl")))
	})

	text, err := c.GenerateText(context.Background(), "describe the bowl")
	require.NoError(t, err)

	assert.Equal(t, "a fine bowl", text)
	assert.Equal(t, "/v1beta/models/text-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "describe the bowl", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateVision_AttachesInlineData(t *testing.T) {
	var gotBody generateContentRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		_, _ = w.Write([]byte(candidateReply("ok")))
	})

	_, err := c.GenerateVision(context.Background(), "analyze", infrastructure.ImageInput{
		Data:     []byte{0xFF, 0xD8},
		MimeType: "image/jpeg",
	})
	require.NoError(t, err)

	require.Len(t, gotBody.Contents, 1)
	parts := gotBody.Contents[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, "analyze", parts[0].Text)
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MimeType)
	assert.Equal(t, "/9g=", parts[1].InlineData.Data)
}

func TestGenerateText_ProviderError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	})

	_, err := c.GenerateText(context.Background(), "p")
	require.Error(t, err)

	var pErr *errs.ProviderError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, http.StatusForbidden, pErr.Status)
	assert.Contains(t, pErr.Body, "bad key")
}

func TestGenerateText_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// drain the body so the server notices the client disconnect and
		// cancels r.Context(); otherwise srv.Close hangs forever
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	c := New(Options{
		BaseURL:    srv.URL,
		TextModel:  "m",
		Timeout:    20 * time.Millisecond,
		HTTPClient: srv.Client(),
	})

	_, err := c.GenerateText(context.Background(), "p")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrProviderTimeout))
}

func TestGenerateText_EmptyReply(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.GenerateText(context.Background(), "p")
	assert.Error(t, err)
}
