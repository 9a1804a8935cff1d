// Package ai wraps the external AI services: the chat completion API
// behind the farming assistant and the text-to-speech API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultCompletionURL = "https://api.openai.com/v1"
	completionModel      = "gpt-3.5-turbo"
)

// AssistantClient calls the OpenAI chat completion endpoint.
type AssistantClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewAssistantClient builds a client with a bounded request timeout.
func NewAssistantClient(apiKey string) *AssistantClient {
	return &AssistantClient{
		apiKey:  apiKey,
		baseURL: defaultCompletionURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewAssistantClientWithBaseURL is used by tests to point at a stub server.
func NewAssistantClientWithBaseURL(apiKey, baseURL string) *AssistantClient {
	c := NewAssistantClient(apiKey)
	c.baseURL = baseURL
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the trimmed answer.
func (c *AssistantClient) Complete(ctx context.Context, systemPrompt, question string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model: completionModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
