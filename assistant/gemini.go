package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fortio.org/log"
	"google.golang.org/genai"

	"github.com/colorsense/api/colors"
	"github.com/colorsense/api/models"
)

const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel    = "gemini-1.5-flash"

	geminiAPIVersion = "v1beta"
)

var ErrMissingAPIKey = errors.New("missing Gemini API key")

const systemPreamble = `You are ColorSense, an expert assistant about colors.
You explain color theory, accessibility (contrast guidance, WCAG pointers), palette suggestions, history/meaning, and creative descriptions.
When giving palettes, keep to concise bullet points and include HEX codes.
When asked for accessibility, mention contrast guidance in practical terms.
Detected color context (may be null): %s`

// GeminiClient answers chat conversations through the Gemini API.
type GeminiClient struct {
	APIKey     string
	Model      string
	Endpoint   string
	HTTPClient *http.Client
}

func NewGeminiClient(apiKey, model, endpoint string) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	if endpoint == "" {
		endpoint = DefaultGeminiEndpoint
	}
	return &GeminiClient{
		APIKey:     apiKey,
		Model:      model,
		Endpoint:   strings.TrimSuffix(endpoint, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// buildContents prefixes the conversation with the ColorSense preamble. Any role
// other than "user" is sent as "model".
func buildContents(messages []models.ChatMessage, detected *colors.ColorInfo) ([]*genai.Content, error) {
	detectedJSON, err := json.Marshal(detected)
	if err != nil {
		return nil, fmt.Errorf("error encoding detected color %v", err)
	}

	contents := []*genai.Content{{
		Role:  models.RoleUser,
		Parts: []*genai.Part{{Text: fmt.Sprintf(systemPreamble, detectedJSON)}},
	}}
	for _, m := range messages {
		role := models.RoleModel
		if m.Role == models.RoleUser {
			role = models.RoleUser
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []*genai.Part{{Text: m.Content}}})
	}
	return contents, nil
}

func (g *GeminiClient) newClient(ctx context.Context) (*genai.Client, error) {
	httpClient := g.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     g.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    g.Endpoint + "/",
			APIVersion: geminiAPIVersion,
		},
	})
}

// Reply sends the conversation to the model and returns the text of the first candidate.
func (g *GeminiClient) Reply(ctx context.Context, messages []models.ChatMessage, detected *colors.ColorInfo) (string, error) {
	if g == nil || g.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	contents, err := buildContents(messages, detected)
	if err != nil {
		return "", err
	}

	client, err := g.newClient(ctx)
	if err != nil {
		return "", fmt.Errorf("error creating Gemini client: %w", err)
	}

	generated, err := client.Models.GenerateContent(ctx, g.Model, contents, nil)
	if err != nil {
		log.Warnf("Gemini generateContent failed: %v", err)
		return "", fmt.Errorf("error calling Gemini: %w", err)
	}
	if len(generated.Candidates) == 0 || generated.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range generated.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	return text.String(), nil
}
