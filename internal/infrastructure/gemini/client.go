// Package gemini is a thin client for the generateContent REST endpoint of the
// Google text/vision models.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kalaconnect/craft-backend/internal/infrastructure"
	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

type Options struct {
	APIKey      string
	BaseURL     string
	APIVersion  string
	TextModel   string
	VisionModel string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

type Client struct {
	apiKey      string
	baseURL     string
	apiVersion  string
	textModel   string
	visionModel string
	timeout     time.Duration
	httpClient  *http.Client
}

var _ infrastructure.TextGenerator = (*Client)(nil)

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = "v1beta"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:      opts.APIKey,
		baseURL:     baseURL,
		apiVersion:  apiVersion,
		textModel:   opts.TextModel,
		visionModel: opts.VisionModel,
		timeout:     opts.Timeout,
		httpClient:  httpClient,
	}
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}

	return c.generateContent(ctx, c.textModel, req)
}

func (c *Client) GenerateVision(ctx context.Context, prompt string, image infrastructure.ImageInput) (string, error) {
	req := generateContentRequest{
		Contents: []content{
			{
				Role: "user",
				Parts: []part{
					{Text: prompt},
					{InlineData: &blob{
						Data:     base64.StdEncoding.EncodeToString(image.Data),
						MimeType: image.MimeType,
					}},
				},
			},
		},
	}

	return c.generateContent(ctx, c.visionModel, req)
}

func (c *Client) generateContent(ctx context.Context, model string, payload generateContentRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("gemini - generateContent - json.Marshal: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent", c.baseURL, c.apiVersion, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini - generateContent - http.NewRequestWithContext: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("gemini - generateContent: %w", errs.ErrProviderTimeout)
		}

		return "", fmt.Errorf("gemini - generateContent - c.httpClient.Do: %w", err)
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini - generateContent - io.ReadAll: %w", err)
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("gemini - generateContent: %w",
			&errs.ProviderError{Status: httpResp.StatusCode, Body: strings.TrimSpace(string(rawBody))})
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return "", fmt.Errorf("gemini - generateContent - json.Unmarshal: %w", err)
	}

	text := extractText(decoded)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini - generateContent: empty model reply")
	}

	return text, nil
}

func extractText(resp generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}

	return b.String()
}
