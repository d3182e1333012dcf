package speech

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

// WhisperClient calls a hosted Whisper model over the Hugging Face
// inference API. The model owns all audio understanding; this client
// only moves bytes and reports failures upward.
type WhisperClient struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewWhisperClient() *WhisperClient {
	model := os.Getenv("WHISPER_MODEL")
	if model == "" {
		model = "openai/whisper-small"
	}

	return &WhisperClient{
		token:   os.Getenv("HF_API_TOKEN"),
		baseURL: "https://router.huggingface.co/hf-inference/models/" + model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (w *WhisperClient) Transcribe(ctx context.Context, audio []byte) (string, error) {
	if w.token == "" {
		return "", errors.New("missing HF_API_TOKEN")
	}
	if len(audio) == 0 {
		return "", errors.New("empty audio clip")
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.baseURL,
		bytes.NewReader(audio),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+w.token)
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := w.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read whisper response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper api returned status %d: %s", resp.StatusCode, string(raw))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unexpected whisper response format: %w", err)
	}

	if result.Text == "" {
		return "", errors.New("empty whisper response")
	}

	return result.Text, nil
}
