package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalaconnect/craft-backend/pkg/types/errs"
)

func TestRender_AllFieldsSubstituted(t *testing.T) {
	out, err := PricingEstimate.Render(map[string]string{
		"category":    "woodwork",
		"description": "wooden bowl",
		"hours":       "5",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Category: woodwork")
	assert.Contains(t, out, "Description: wooden bowl")
	assert.Contains(t, out, "Hours to make: 5")
	assert.NotContains(t, out, "{category}")
	assert.NotContains(t, out, "{description}")
	assert.NotContains(t, out, "{hours}")
}

func TestRender_MissingField(t *testing.T) {
	_, err := MasterStoryteller.Render(map[string]string{
		"description": "a pottery bowl",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMissingField))
	assert.Contains(t, err.Error(), "answers")
}

func TestRender_EmptyValueIsAllowed(t *testing.T) {
	out, err := Mockup.Render(map[string]string{"context": ""})

	require.NoError(t, err)
	assert.NotContains(t, out, "{context}")
}

func TestRender_LiteralBracesInTemplateSurvive(t *testing.T) {
	// the pricing example object is template text, not a placeholder
	out, err := PricingEstimate.Render(map[string]string{
		"category":    "c",
		"description": "d",
		"hours":       "1",
	})
	require.NoError(t, err)

	assert.Contains(t, out, `{"price_range_inr": "₹2500 - ₹4000", "price_range_usd": "$30 - $50"}`)
}

func TestRender_CallerBracesPassThrough(t *testing.T) {
	out, err := Translation.Render(map[string]string{
		"target_language": "Hindi",
		"context":         "Instagram post",
		"text":            "price is {negotiable}",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "price is {negotiable}")
}

func TestRender_DeclaredTokenInCallerValueStaysLiteral(t *testing.T) {
	// substitution never rescans inserted values
	out, err := Translation.Render(map[string]string{
		"target_language": "Hindi",
		"context":         "product listing",
		"text":            "see {context} above",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "see {context} above")
}

func TestTemplates_DeclareEveryPlaceholder(t *testing.T) {
	for _, tmpl := range []Template{VisionAnalysis, MasterStoryteller, PricingEstimate, Translation, Mockup} {
		fields := make(map[string]string, len(tmpl.Fields))
		for _, f := range tmpl.Fields {
			assert.Contains(t, tmpl.Text, "{"+f+"}", "%s: field %q unused", tmpl.Name, f)
			fields[f] = "x"
		}

		out, err := tmpl.Render(fields)
		require.NoError(t, err)

		for _, f := range tmpl.Fields {
			assert.False(t, strings.Contains(out, "{"+f+"}"), "%s: %q not substituted", tmpl.Name, f)
		}
	}
}
