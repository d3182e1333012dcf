package chat

import (
	"context"
	"errors"

	"drivethru/internal/catalog"
)

type Service struct {
	client  Client
	catalog *catalog.Service
}

func NewService(client Client, catalogService *catalog.Service) *Service {
	return &Service{client: client, catalog: catalogService}
}

// Ask answers a free-text menu question. The current catalog is
// injected as context on every call so the assistant never answers
// from a stale menu.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", errors.New("question is required")
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return "", err
	}

	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: BuildMenuContext(items)},
		{Role: "user", Content: question},
	}

	return s.client.Complete(ctx, messages)
}
