package catalog

import "context"

// Repository defines all data-access operations for the menu catalog.
// Implementations must preserve insertion order in List: the parser
// depends on a stable catalog order.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, name string) (*Item, error)
	Upsert(ctx context.Context, item Item) error
	Delete(ctx context.Context, name string) error
}
