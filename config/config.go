package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Config struct {
		HTTP       HTTP
		Log        Log
		Gemini     Gemini
		OpenRouter OpenRouter
		Firebase   Firebase
		Static     Static
		CORS       CORS
	}

	HTTP struct {
		Port           string `env:"HTTP_PORT" envDefault:"8000"`
		UsePreforkMode bool   `env:"HTTP_USE_PREFORK_MODE" envDefault:"false"`
	}

	Log struct {
		Level string `env:"LOG_LEVEL" envDefault:"info"`
	}

	// Gemini credentials are not validated at startup; a missing key surfaces
	// as a per-request provider failure.
	Gemini struct {
		APIKey      string        `env:"GOOGLE_API_KEY"`
		BaseURL     string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
		APIVersion  string        `env:"GEMINI_API_VERSION" envDefault:"v1beta"`
		TextModel   string        `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.5-flash-lite"`
		VisionModel string        `env:"GEMINI_VISION_MODEL" envDefault:"gemini-2.5-flash-lite"`
		Timeout     time.Duration `env:"GEMINI_TIMEOUT" envDefault:"90s"`
	}

	OpenRouter struct {
		APIKey     string        `env:"OPENROUTER_API_KEY"`
		BaseURL    string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
		ImageModel string        `env:"OPENROUTER_IMAGE_MODEL" envDefault:"google/gemini-2.5-flash-image-preview"`
		Timeout    time.Duration `env:"OPENROUTER_TIMEOUT" envDefault:"120s"`
	}

	Firebase struct {
		Type            string `env:"FIREBASE_TYPE" envDefault:"service_account"`
		ProjectID       string `env:"FIREBASE_PROJECT_ID"`
		PrivateKeyID    string `env:"FIREBASE_PRIVATE_KEY_ID"`
		PrivateKey      string `env:"FIREBASE_PRIVATE_KEY"`
		ClientEmail     string `env:"FIREBASE_CLIENT_EMAIL"`
		ClientID        string `env:"FIREBASE_CLIENT_ID"`
		AuthURI         string `env:"FIREBASE_AUTH_URI" envDefault:"https://accounts.google.com/o/oauth2/auth"`
		TokenURI        string `env:"FIREBASE_TOKEN_URI" envDefault:"https://oauth2.googleapis.com/token"`
		AuthProviderURL string `env:"FIREBASE_AUTH_PROVIDER_X509_CERT_URL" envDefault:"https://www.googleapis.com/oauth2/v1/certs"`
		ClientCertURL   string `env:"FIREBASE_CLIENT_X509_CERT_URL"`
		Collection      string `env:"FIREBASE_STORIES_COLLECTION" envDefault:"stories"`
	}

	Static struct {
		Dir string `env:"STATIC_DIR" envDefault:"static"`
	}

	CORS struct {
		AllowedOrigin string `env:"FRONTEND_ORIGIN" envDefault:"*"`
	}
)

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// Available reports whether the three required credential fields are present.
// Computed once at startup; persistence runs degraded when false.
func (f Firebase) Available() bool {
	return f.ProjectID != "" && f.PrivateKey != "" && f.ClientEmail != ""
}

// ServiceAccountJSON assembles the credentials document the Firestore client
// expects from the individual env fields. Literal `\n` sequences in the private
// key are unescaped, matching how deployment platforms pass multiline secrets.
func (f Firebase) ServiceAccountJSON() ([]byte, error) {
	creds := map[string]string{
		"type":                        f.Type,
		"project_id":                  f.ProjectID,
		"private_key_id":              f.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(f.PrivateKey, `\n`, "\n"),
		"client_email":                f.ClientEmail,
		"client_id":                   f.ClientID,
		"auth_uri":                    f.AuthURI,
		"token_uri":                   f.TokenURI,
		"auth_provider_x509_cert_url": f.AuthProviderURL,
		"client_x509_cert_url":        f.ClientCertURL,
	}

	b, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("config - ServiceAccountJSON - json.Marshal: %w", err)
	}

	return b, nil
}
