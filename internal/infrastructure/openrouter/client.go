// Package openrouter is a chat-completions client used for image generation.
// Different models behind OpenRouter return their image in different places in
// the reply; the client normalizes them through an ordered list of shape
// matchers (see shapes.go).
package openrouter

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
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

var _ infrastructure.ImageGenerator = (*Client)(nil)

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		apiKey:     opts.APIKey,
		baseURL:    baseURL,
		model:      opts.Model,
		timeout:    opts.Timeout,
		httpClient: httpClient,
	}
}

func (c *Client) GenerateImage(ctx context.Context, prompt string, image infrastructure.ImageInput) ([]byte, error) {
	imageURI := fmt.Sprintf("data:%s;base64,%s", image.MimeType, base64.StdEncoding.EncodeToString(image.Data))

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &imageURL{URL: imageURI}},
				},
			},
		},
	}

	reply, err := c.complete(ctx, payload)
	if err != nil {
		return nil, err
	}

	dataURI, err := ExtractImageDataURI(reply)
	if err != nil {
		return nil, fmt.Errorf("openrouter - GenerateImage: %w", err)
	}

	data, err := DecodeDataURI(dataURI)
	if err != nil {
		return nil, fmt.Errorf("openrouter - GenerateImage: %w", err)
	}

	return data, nil
}

func (c *Client) complete(ctx context.Context, payload chatRequest) (replyMessage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return replyMessage{}, fmt.Errorf("openrouter - complete - json.Marshal: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return replyMessage{}, fmt.Errorf("openrouter - complete - http.NewRequestWithContext: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return replyMessage{}, fmt.Errorf("openrouter - complete: %w", errs.ErrProviderTimeout)
		}

		return replyMessage{}, fmt.Errorf("openrouter - complete - c.httpClient.Do: %w", err)
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return replyMessage{}, fmt.Errorf("openrouter - complete - io.ReadAll: %w", err)
	}

	if httpResp.StatusCode >= http.StatusBadRequest {
		return replyMessage{}, fmt.Errorf("openrouter - complete: %w",
			&errs.ProviderError{Status: httpResp.StatusCode, Body: strings.TrimSpace(string(rawBody))})
	}

	var decoded chatResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return replyMessage{}, fmt.Errorf("openrouter - complete - json.Unmarshal: %w", err)
	}

	if len(decoded.Choices) == 0 {
		return replyMessage{}, fmt.Errorf("openrouter - complete: %w", errs.ErrNoImageData)
	}

	return decoded.Choices[0].Message, nil
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message replyMessage `json:"message"`
}

// replyMessage keeps Content raw: depending on the model it is either a plain
// string or a list of typed parts.
type replyMessage struct {
	Content json.RawMessage `json:"content"`
	Images  []replyImage    `json:"images"`
}

type replyImage struct {
	ImageURL imageURL `json:"image_url"`
}
