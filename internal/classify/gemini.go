// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// geminiAPIBase is the Gemini generateContent endpoint prefix. Declared as a
// var so tests can substitute an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// ErrNotConfigured reports that the generative-text backend cannot be used
// because no API key is configured. This is an environment defect, not a
// per-record one.
var ErrNotConfigured = errors.New("generative-text backend not configured: API key required")

// TextBackend abstracts the generative-text API so tests can supply a mock.
// Implementations take a rendered prompt and return the model's raw reply text.
type TextBackend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiBackend calls the Gemini generateContent REST API.
type GeminiBackend struct {
	APIKey string
	Model  string
	Client *http.Client
}

// Gemini REST API JSON structures.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

// Generate sends the prompt as a single user turn and returns the
// concatenated text parts of the first candidate.
func (b *GeminiBackend) Generate(ctx context.Context, prompt string) (string, error) {
	if b.APIKey == "" {
		return "", ErrNotConfigured
	}

	model := b.Model
	if model == "" {
		model = DefaultModel
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, model, url.QueryEscape(b.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini API returned %d: %s", resp.StatusCode, string(body))
	}

	var gResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Gemini response: %w", err)
	}

	if len(gResp.Candidates) == 0 {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	var text string
	for _, part := range gResp.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}
