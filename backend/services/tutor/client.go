// Package tutor talks to the external completion service on behalf of the
// AI-tutor page. The credential is supplied by the user per request and is
// only ever forwarded, never stored.
package tutor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"vidyabandhan/backend/config"
)

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrMissingKey    = errors.New("API key is required")
)

type Client struct {
	URL        string
	Model      string
	MaxTokens  int
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		URL:       cfg.CompletionURL,
		Model:     cfg.CompletionModel,
		MaxTokens: cfg.CompletionMaxTokens,
		// No timeout: the call is abandoned with the request context.
		HTTPClient: &http.Client{},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Ask sends one question and returns the answer text verbatim. Invalid input
// is rejected before any outbound request. When the response lacks the
// expected field the raw body is returned instead, so the caller can show
// the JSON dump as-is. No retry on failure.
func (c *Client) Ask(ctx context.Context, apiKey, question string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingKey
	}
	if question == "" {
		return "", ErrEmptyQuestion
	}

	body, err := json.Marshal(completionRequest{
		Model:     c.Model,
		Messages:  []message{{Role: "user", Content: question}},
		MaxTokens: c.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned %s: %s", resp.Status, raw)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return string(raw), nil
	}
	return parsed.Choices[0].Message.Content, nil
}
