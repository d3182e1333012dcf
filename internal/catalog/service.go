package catalog

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, name string) (*Item, error) {
	return s.repo.Get(ctx, strings.ToLower(strings.TrimSpace(name)))
}

// Save normalizes and validates a menu item before writing it.
// Canonical names and keywords are stored lower-case: the parser
// matches against lower-cased transcripts.
func (s *Service) Save(ctx context.Context, item Item) (*Item, error) {
	item.Name = strings.ToLower(strings.TrimSpace(item.Name))
	item.DisplayName = strings.TrimSpace(item.DisplayName)

	if item.Name == "" {
		return nil, errors.New("item name is required")
	}
	if item.DisplayName == "" {
		item.DisplayName = item.Name
	}
	if item.Price <= 0 {
		return nil, errors.New("price must be positive")
	}

	keywords := item.Keywords[:0]
	for _, k := range item.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		// An item is always reachable by its own canonical name.
		keywords = []string{item.Name}
	}
	item.Keywords = keywords

	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Remove(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, strings.ToLower(strings.TrimSpace(name)))
}

// EnsureSeeded writes the default menu when the catalog is empty, so a
// fresh database starts with the same menu the in-memory repository has.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	for _, item := range DefaultMenu() {
		if err := s.repo.Upsert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
