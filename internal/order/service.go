package order

import (
	"context"
	"fmt"
	"sort"

	"drivethru/internal/catalog"
	"drivethru/internal/parser"
)

// AddedItem reports one merge of recognized quantities into the cart.
type AddedItem struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Quantity    int    `json:"quantity"`
}

// Service merges parser output into a session order against the
// current catalog.
type Service struct {
	catalog *catalog.Service
}

func NewService(catalogService *catalog.Service) *Service {
	return &Service{catalog: catalogService}
}

// Extractor builds a parser from the current catalog. The catalog can
// change at runtime (manager edits), so callers build per transcript
// rather than holding a stale one.
func (s *Service) Extractor(ctx context.Context) (*parser.Extractor, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return parser.NewExtractor(items), nil
}

// AddItem looks up a catalog entry by canonical name and merges it
// into the order. Used by the UI's direct "add to cart" path.
func (s *Service) AddItem(ctx context.Context, o *Order, name string, quantity int) (*AddedItem, error) {
	item, err := s.catalog.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := o.AddItem(*item, quantity); err != nil {
		return nil, err
	}
	return &AddedItem{
		Name:        item.Name,
		DisplayName: item.DisplayName,
		Quantity:    quantity,
	}, nil
}

// ApplyTranscript runs the parser over a transcript and merges every
// recognized item into the order. Candidates that no longer match a
// catalog entry become per-item warnings; they never abort the batch.
// On error the order is left unmodified.
func (s *Service) ApplyTranscript(ctx context.Context, o *Order, transcript string) ([]AddedItem, []string, error) {
	extractor, err := s.Extractor(ctx)
	if err != nil {
		return nil, nil, err
	}
	return s.apply(ctx, o, extractor.Extract(transcript))
}

func (s *Service) apply(ctx context.Context, o *Order, recognized map[string]int) ([]AddedItem, []string, error) {
	if len(recognized) == 0 {
		return nil, nil, nil
	}

	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	var added []AddedItem
	matched := make(map[string]bool, len(recognized))

	// Catalog order keeps the merge deterministic.
	for _, item := range items {
		qty, ok := recognized[item.Name]
		if !ok {
			continue
		}
		matched[item.Name] = true
		if err := o.AddItem(item, qty); err != nil {
			return nil, nil, err
		}
		added = append(added, AddedItem{
			Name:        item.Name,
			DisplayName: item.DisplayName,
			Quantity:    qty,
		})
	}

	var warnings []string
	for name := range recognized {
		if !matched[name] {
			warnings = append(warnings, fmt.Sprintf("item %q tidak dikenali dalam menu", name))
		}
	}
	sort.Strings(warnings)

	return added, warnings, nil
}
