package response

type Error struct {
	Error string `json:"error"`
}

type Health struct {
	Status string `json:"status"`
}

type Status struct {
	GeminiConfigured     bool `json:"gemini_configured"`
	OpenRouterConfigured bool `json:"openrouter_configured"`
	FirebaseConfigured   bool `json:"firebase_configured"`
	StaticDirPresent     bool `json:"static_dir_present"`
}

type AITest struct {
	AIResponse string `json:"ai_response"`
}

type Analysis struct {
	AIAnalysis string `json:"ai_analysis"`
}

type CompletedStory struct {
	StoryID      string                 `json:"story_id,omitempty"`
	FinalContent map[string]interface{} `json:"final_content"`
}

type Pricing struct {
	PricingSuggestion string `json:"pricing_suggestion"`
}

type Translation struct {
	TranslatedText string `json:"translated_text"`
}

type Mockup struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type QR struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	QRData   string `json:"qr_data"`
}
