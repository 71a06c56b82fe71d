package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

// Recommendation is one suggested title with a short reason.
type Recommendation struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Client requests AI-generated recommendations from a generative-text API.
// Like the catalog client, it absorbs failures: a broken or unreachable
// service yields an empty list, and a missing API key yields a single
// placeholder entry explaining the setup instead of an error.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a recommendation client. Empty model and baseURL select
// the defaults.
func NewClient(apiKey, model, baseURL string, logger *slog.Logger) *Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// responseSchema constrains the model to a JSON array of {title, reason}.
var responseSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"title": {"type": "STRING"},
			"reason": {"type": "STRING"}
		},
		"required": ["title", "reason"]
	}
}`)

// Recommend asks for five titles similar to the given seen titles. An empty
// input yields an empty output without a network call.
func (c *Client) Recommend(ctx context.Context, seenTitles []string, language string) []Recommendation {
	if c.apiKey == "" {
		return []Recommendation{{
			Title:  "No API Key",
			Reason: "Configure the Gemini API key in the settings to use AI features.",
		}}
	}
	if len(seenTitles) == 0 {
		return nil
	}

	answerLanguage := "English"
	if language == "fr" {
		answerLanguage = "French"
	}
	prompt := fmt.Sprintf(`I have seen and liked these movies/shows: %s.
Recommend 5 distinct, similar movies or TV shows that I might like.
For each recommendation, provide the title and a very short, punchy reason why (max 10 words).
IMPORTANT: Respond in %s.`, strings.Join(seenTitles, ", "), answerLanguage)

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	text, err := c.generate(ctx, payload)
	if err != nil {
		c.logger.Warn("recommend.generate_failed", "error", err)
		return nil
	}
	if text == "" {
		return nil
	}

	var recommendations []Recommendation
	if err := json.Unmarshal([]byte(text), &recommendations); err != nil {
		c.logger.Warn("recommend.parse_failed", "error", err)
		return nil
	}
	return recommendations
}

func (c *Client) generate(ctx context.Context, payload generateRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generate failed: %s - %s", resp.Status, string(respBody))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
