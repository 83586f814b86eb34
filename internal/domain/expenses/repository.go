package expenses

import "context"

type Repository interface {
	// List returns all items in display order, most recent first.
	List(ctx context.Context) ([]Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	// Prepend inserts at the head so the newest item renders first.
	Prepend(ctx context.Context, expense Expense) error
	Delete(ctx context.Context, id string) (bool, error)
}
