package openrouter

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

// shapeMatcher probes one known reply layout for an image data URI. Matchers
// run in declaration order; the first hit wins.
type shapeMatcher struct {
	name  string
	match func(replyMessage) (string, bool)
}

var imageShapes = []shapeMatcher{
	{name: "images field", match: matchImagesField},
	{name: "content list", match: matchContentList},
	{name: "content data URI", match: matchContentDataURI},
}

// ExtractImageDataURI normalizes the heterogeneous reply layouts into a single
// data URI, or fails naming the reply unrecognized.
func ExtractImageDataURI(msg replyMessage) (string, error) {
	for _, shape := range imageShapes {
		if uri, ok := shape.match(msg); ok {
			return uri, nil
		}
	}

	return "", errs.ErrNoImageData
}

// matchImagesField reads the dedicated top-level "images" list.
func matchImagesField(msg replyMessage) (string, bool) {
	for _, img := range msg.Images {
		if img.ImageURL.URL != "" {
			return img.ImageURL.URL, true
		}
	}

	return "", false
}

// matchContentList reads a list-typed content field containing an image entry.
func matchContentList(msg replyMessage) (string, bool) {
	var parts []struct {
		Type     string    `json:"type"`
		ImageURL *imageURL `json:"image_url"`
	}
	if err := json.Unmarshal(msg.Content, &parts); err != nil {
		return "", false
	}

	for _, p := range parts {
		if p.Type == "image_url" && p.ImageURL != nil && p.ImageURL.URL != "" {
			return p.ImageURL.URL, true
		}
	}

	return "", false
}

// matchContentDataURI reads a string content value that is itself a data URI.
func matchContentDataURI(msg replyMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(msg.Content, &s); err != nil {
		return "", false
	}

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:image") {
		return s, true
	}

	return "", false
}

// DecodeDataURI strips the `<header>,` prefix and decodes the base64 payload.
func DecodeDataURI(uri string) ([]byte, error) {
	idx := strings.IndexByte(uri, ',')
	if idx < 0 {
		return nil, errs.ErrMalformedImageData
	}

	data, err := base64.StdEncoding.DecodeString(uri[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrMalformedImageData, err)
	}

	return data, nil
}
