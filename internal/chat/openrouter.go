package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

type OpenRouterClient struct {
	apiKey string
	model  string
	apiURL string
	client *http.Client
}

func NewOpenRouterClient() *OpenRouterClient {
	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = "openai/gpt-3.5-turbo"
	}

	return &OpenRouterClient{
		apiKey: os.Getenv("OPENROUTER_API_KEY"),
		model:  model,
		apiURL: openRouterURL,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (o *OpenRouterClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("missing OPENROUTER_API_KEY")
	}

	payload := map[string]any{
		"model":    o.model,
		"messages": messages,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		o.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat api returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("empty chat response")
	}

	return result.Choices[0].Message.Content, nil
}
