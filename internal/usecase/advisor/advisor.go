package advisor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kalaconnect/craft-backend/internal/infrastructure"
	"github.com/kalaconnect/craft-backend/internal/prompt"
)

// UseCase answers the text-only assists. Replies are forwarded unparsed:
// pricing is expected to be a two-key JSON object, but the contract leaves
// parsing to the caller.
type UseCase struct {
	text infrastructure.TextGenerator
}

func New(text infrastructure.TextGenerator) *UseCase {
	return &UseCase{text: text}
}

func (uc *UseCase) Pricing(ctx context.Context, description, category string, hours int) (string, error) {
	p, err := prompt.PricingEstimate.Render(map[string]string{
		"category":    category,
		"description": description,
		"hours":       strconv.Itoa(hours),
	})
	if err != nil {
		return "", fmt.Errorf("AdvisorUseCase - Pricing - prompt.PricingEstimate.Render: %w", err)
	}

	suggestion, err := uc.text.GenerateText(ctx, p)
	if err != nil {
		return "", fmt.Errorf("AdvisorUseCase - Pricing - uc.text.GenerateText: %w", err)
	}

	return suggestion, nil
}

func (uc *UseCase) Translate(ctx context.Context, text, targetLanguage, usageContext string) (string, error) {
	p, err := prompt.Translation.Render(map[string]string{
		"target_language": targetLanguage,
		"context":         usageContext,
		"text":            text,
	})
	if err != nil {
		return "", fmt.Errorf("AdvisorUseCase - Translate - prompt.Translation.Render: %w", err)
	}

	translated, err := uc.text.GenerateText(ctx, p)
	if err != nil {
		return "", fmt.Errorf("AdvisorUseCase - Translate - uc.text.GenerateText: %w", err)
	}

	return translated, nil
}

func (uc *UseCase) SmokeTest(ctx context.Context) (string, error) {
	reply, err := uc.text.GenerateText(ctx, prompt.SmokeTest)
	if err != nil {
		return "", fmt.Errorf("AdvisorUseCase - SmokeTest - uc.text.GenerateText: %w", err)
	}

	return reply, nil
}
