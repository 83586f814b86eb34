package packing

import "context"

// Repository stores one independent category list per user. Category
// and item addresses are 0-based positions into the current list; any
// structural edit invalidates positions after it, so callers re-derive
// indices from fresh state instead of caching them.
type Repository interface {
	List(ctx context.Context, userID string) ([]Category, error)
	ToggleItem(ctx context.Context, userID string, categoryIndex, itemIndex int) (Item, error)
	AddItem(ctx context.Context, userID string, categoryIndex int, item Item) error
	DeleteItem(ctx context.Context, userID string, categoryIndex, itemIndex int) error
	AddCategory(ctx context.Context, userID string, category Category) error
	DeleteCategory(ctx context.Context, userID string, categoryIndex int) error
}
