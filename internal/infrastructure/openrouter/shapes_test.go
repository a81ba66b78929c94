package openrouter

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

func TestExtractImageDataURI_ImagesField(t *testing.T) {
	msg := replyMessage{
		Images: []replyImage{{ImageURL: imageURL{URL: "data:image/png;base64,AAAA"}}},
	}

	uri, err := ExtractImageDataURI(msg)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", uri)
}

func TestExtractImageDataURI_ContentList(t *testing.T) {
	msg := replyMessage{
		Content: json.RawMessage(`[{"type":"text","text":"here"},{"type":"image_url","image_url":{"url":"data:image/png;base64,BBBB"}}]`),
	}

	uri, err := ExtractImageDataURI(msg)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,BBBB", uri)
}

func TestExtractImageDataURI_ContentString(t *testing.T) {
	msg := replyMessage{
		Content: json.RawMessage(`"data:image/jpeg;base64,CCCC"`),
	}

	uri, err := ExtractImageDataURI(msg)
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,CCCC", uri)
}

func TestExtractImageDataURI_ImagesFieldWinsOverContentList(t *testing.T) {
	// ambiguous reply carrying both shapes: the dedicated field takes precedence
	msg := replyMessage{
		Images:  []replyImage{{ImageURL: imageURL{URL: "data:image/png;base64,FIRST"}}},
		Content: json.RawMessage(`[{"type":"image_url","image_url":{"url":"data:image/png;base64,SECOND"}}]`),
	}

	uri, err := ExtractImageDataURI(msg)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,FIRST", uri)
}

func TestExtractImageDataURI_PlainTextContent(t *testing.T) {
	msg := replyMessage{Content: json.RawMessage(`"I cannot generate that image."`)}

	_, err := ExtractImageDataURI(msg)
	assert.True(t, errors.Is(err, errs.ErrNoImageData))
}

func TestExtractImageDataURI_EmptyReply(t *testing.T) {
	_, err := ExtractImageDataURI(replyMessage{})
	assert.True(t, errors.Is(err, errs.ErrNoImageData))
}

func TestDecodeDataURI(t *testing.T) {
	data, err := DecodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeDataURI_NoComma(t *testing.T) {
	_, err := DecodeDataURI("data:image/png;base64aGVsbG8=")
	assert.True(t, errors.Is(err, errs.ErrMalformedImageData))
}

func TestDecodeDataURI_BadBase64(t *testing.T) {
	_, err := DecodeDataURI("data:image/png;base64,!!!not-base64!!!")
	assert.True(t, errors.Is(err, errs.ErrMalformedImageData))
}
