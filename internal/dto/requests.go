package dto

type StoryData struct {
	InitialDescription string   `json:"initial_description"`
	ArtisanAnswers     []string `json:"artisan_answers"`
}

type PricingRequest struct {
	Description    string `json:"description"`
	Category       string `json:"category"`
	TimeTakenHours int    `json:"time_taken_hours"`
}

type TranslateRequest struct {
	TextToTranslate string `json:"text_to_translate"`
	TargetLanguage  string `json:"target_language"`
	Context         string `json:"context"`
}

type QRRequest struct {
	URL    string `json:"url"`
	Size   *int   `json:"size,omitempty"`
	Border *int   `json:"border,omitempty"`
}
