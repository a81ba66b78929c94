// Package modeljson normalizes free-form model output into parsed JSON objects.
// Models regularly wrap the JSON they were asked for in a markdown code fence,
// sometimes with a language hint; Extract removes one such layer before parsing.
package modeljson

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

const fence = "```"

// Extract parses raw model text as a JSON object after stripping surrounding
// whitespace and at most one layer of code-fence wrapping.
func Extract(raw string) (map[string]interface{}, error) {
	cleaned := StripFences(raw)

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, fmt.Errorf("modeljson - Extract - json.Unmarshal: %w: %v", errs.ErrInvalidJSON, err)
	}

	return obj, nil
}

// StripFences removes exactly one layer of triple-backtick fencing, whether the
// opening fence carries a language hint or not. Unfenced input passes through
// untouched, so the function is idempotent on clean JSON.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, fence) {
		return s
	}

	s = strings.TrimPrefix(s, fence)

	// drop the language hint ("json", "JSON", ...) on the opening fence line
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		if isLanguageHint(strings.TrimSpace(s[:nl])) {
			s = s[nl+1:]
		}
	}

	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, fence)

	return strings.TrimSpace(s)
}

func isLanguageHint(line string) bool {
	if line == "" {
		return true
	}

	for _, r := range line {
		isLetter := r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
		if !isLetter {
			return false
		}
	}

	return true
}
