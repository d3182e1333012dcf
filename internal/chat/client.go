package chat

import "context"

// Message is one chat turn sent to the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the chat-completion collaborator: messages in, reply out.
// Failures are descriptive error values; the caller never retries.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
