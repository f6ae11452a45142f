// file: gemini_client.go
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GeminiClient posts prompts to the generateContent endpoint. The response
// contract has three shapes the caller must distinguish: an error object, a
// candidate carrying text, or a body missing both.
type GeminiClient struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

func NewGeminiClient(baseURL, model, apiKey string) *GeminiClient {
	return &GeminiClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 25 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64 payload without the data-URL prefix
}

type geminiResponse struct {
	Error      *geminiError      `json:"error,omitempty"`
	Candidates []geminiCandidate `json:"candidates,omitempty"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

// UpstreamError carries the message of an error-shaped API response.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string { return "gemini error: " + e.Message }

// ErrNoCandidates — the response body had neither an error nor usable text.
var ErrNoCandidates = errors.New("no candidates in gemini response")

// textPart builds a plain text prompt part.
func textPart(text string) geminiPart { return geminiPart{Text: text} }

// imagePart converts a data-URL (as uploaded by the client) into an inline
// image part. Format: "data:<mime>;base64,<payload>".
func imagePart(dataURL string) (geminiPart, error) {
	head, payload, ok := strings.Cut(dataURL, ",")
	if !ok || payload == "" || !strings.HasPrefix(head, "data:") {
		return geminiPart{}, fmt.Errorf("malformed image data url")
	}
	mime := strings.TrimSuffix(strings.TrimPrefix(head, "data:"), ";base64")
	if mime == "" {
		return geminiPart{}, fmt.Errorf("missing image mime type")
	}
	return geminiPart{InlineData: &geminiInlineData{MimeType: mime, Data: payload}}, nil
}

// Generate posts the parts as a single user turn and returns the first text
// part of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, parts []geminiPart) (string, error) {
	body, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("marshal gemini req: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini call failed: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	// Error bodies come back on non-2xx statuses and occasionally on 200;
	// decode first and let the error shape win either way.
	var out geminiResponse
	if err := json.Unmarshal(data, &out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", fmt.Errorf("gemini non-2xx: %s, body: %s", resp.Status, string(data))
		}
		return "", fmt.Errorf("decode gemini resp: %w", err)
	}
	if out.Error != nil {
		return "", &UpstreamError{Message: out.Error.Message}
	}
	if len(out.Candidates) == 0 || out.Candidates[0].Content == nil || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
