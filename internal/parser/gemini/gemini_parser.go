package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mrpending/internal/config"
	"mrpending/internal/parser"
	"mrpending/internal/port"
)

const (
	apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
)

func init() {
	parser.RegisterProvider("gemini", func(cfg *config.ParserConfig) (port.StatementExtractor, error) {
		return NewExtractor(cfg), nil
	})
}

// Extractor implements port.StatementExtractor using Google's Gemini API.
// The API key is injected through config at construction time and never read
// from ambient process state.
type Extractor struct {
	apiKey          string
	model           string
	endpoint        string
	maxOutputTokens int
	client          *http.Client
}

// NewExtractor creates a Gemini-based statement extractor.
func NewExtractor(cfg *config.ParserConfig) *Extractor {
	return newExtractor(cfg, "")
}

// NewExtractorWithEndpoint creates an extractor pointing at a custom API endpoint (for testing).
func NewExtractorWithEndpoint(cfg *config.ParserConfig, endpoint string) *Extractor {
	return newExtractor(cfg, endpoint)
}

func newExtractor(cfg *config.ParserConfig, endpoint string) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.5-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens == 0 {
		maxTokens = 16384
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Extractor{
		apiKey:          cfg.APIKey,
		model:           model,
		endpoint:        endpoint,
		maxOutputTokens: maxTokens,
		client:          &http.Client{Timeout: timeout},
	}
}

// Extract sends the base64-encoded document with the extraction instructions
// and output schema, and returns the model's raw text response.
func (e *Extractor) Extract(ctx context.Context, input port.ExtractInput) (string, error) {
	if e.apiKey == "" {
		return "", &parser.ConfigurationError{Provider: "gemini"}
	}

	mimeType, err := toGeminiMimeType(input.ContentType)
	if err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)

	generationConfig := map[string]interface{}{
		"responseMimeType": "application/json",
		"maxOutputTokens":  e.maxOutputTokens,
	}
	if len(input.Schema) > 0 {
		generationConfig["responseJsonSchema"] = json.RawMessage(input.Schema)
	}

	reqBody := map[string]interface{}{
		"systemInstruction": map[string]interface{}{
			"parts": []map[string]interface{}{
				{"text": input.Instructions},
			},
		},
		"contents": []map[string]interface{}{
			{
				"role": "user",
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      encoded,
						},
					},
					{
						"text": parser.ExtractionRequestText,
					},
				},
			},
		},
		"generationConfig": generationConfig,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", &parser.TransportError{Err: fmt.Errorf("calling gemini API: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &parser.TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := parser.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", parser.NewRateLimitError("gemini", baseErr, retryAfter)
		}
		return "", baseErr
	}

	return responseText(respBody)
}

func toGeminiMimeType(contentType string) (string, error) {
	switch contentType {
	case "application/pdf":
		return "application/pdf", nil
	default:
		return "", fmt.Errorf("unsupported content type for extraction: %s", contentType)
	}
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func responseText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &parser.EmptyResponseError{}
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
