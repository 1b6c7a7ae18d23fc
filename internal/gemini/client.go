// Package gemini is a minimal client for the Google Gemini REST API.
// It performs exactly one HTTP round trip per operation: no retries, no
// caching, no explicit per-call deadline beyond the HTTP client timeout.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"munassist/internal/logging"
)

// Config holds client configuration. The API key is read once at startup;
// the client is immutable after construction and safe for concurrent use.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultBaseURL is the hosted Gemini API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client talks to the Gemini API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client from config, applying defaults for the
// base URL and timeout.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateContent issues a single models/{model}:generateContent call.
func (c *Client) GenerateContent(ctx context.Context, model string, req *GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()
	logging.APIDebug("GenerateContent: model=%s contents=%d", model, len(req.Contents))

	body, err := c.post(ctx, fmt.Sprintf("models/%s:generateContent", model), req)
	if err != nil {
		logging.APIError("GenerateContent: model=%s failed after %v: %v", model, time.Since(start), err)
		return nil, err
	}

	var resp GenerateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("API error: %s", resp.Error.Message)
	}

	logging.API("GenerateContent: model=%s completed in %v candidates=%d", model, time.Since(start), len(resp.Candidates))
	return &resp, nil
}

// GenerateImages issues a single models/{model}:predict call (Imagen).
func (c *Client) GenerateImages(ctx context.Context, model, prompt string, params ImagenParameters) (*ImagenResponse, error) {
	start := time.Now()
	logging.APIDebug("GenerateImages: model=%s prompt_len=%d", model, len(prompt))

	req := ImagenRequest{
		Instances:  []ImagenInstance{{Prompt: prompt}},
		Parameters: params,
	}
	body, err := c.post(ctx, fmt.Sprintf("models/%s:predict", model), req)
	if err != nil {
		logging.APIError("GenerateImages: model=%s failed after %v: %v", model, time.Since(start), err)
		return nil, err
	}

	var resp ImagenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("API error: %s", resp.Error.Message)
	}

	logging.API("GenerateImages: model=%s completed in %v predictions=%d", model, time.Since(start), len(resp.Predictions))
	return &resp, nil
}

// post marshals payload and performs one POST against the given endpoint.
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("API key not configured")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// Text concatenates the text parts of the first candidate. Returns an
// error when the response carries no completion at all.
func (r *GenerateResponse) Text() (string, error) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no completion returned")
	}
	var sb strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// FirstInlineData returns the first inline-data part of the first
// candidate, or nil when the response contains none.
func (r *GenerateResponse) FirstInlineData() *InlineData {
	if len(r.Candidates) == 0 {
		return nil
	}
	for _, part := range r.Candidates[0].Content.Parts {
		if part.InlineData != nil {
			return part.InlineData
		}
	}
	return nil
}

// GroundingChunks returns the grounding chunks of the first candidate,
// empty when the response carries no grounding metadata.
func (r *GenerateResponse) GroundingChunks() []GroundingChunk {
	if len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}
