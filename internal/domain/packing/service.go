package packing

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Service edits the acting user's own list only; there is no cross-user
// access at this layer or below.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, userID string) ([]Category, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) ToggleItem(ctx context.Context, userID string, categoryIndex, itemIndex int) (Item, error) {
	return s.repo.ToggleItem(ctx, userID, categoryIndex, itemIndex)
}

func (s *Service) AddItem(ctx context.Context, userID string, categoryIndex int, label string) (Item, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Item{}, ErrEmptyLabel
	}

	item := Item{
		ID:    uuid.NewString(),
		Label: label,
	}
	if err := s.repo.AddItem(ctx, userID, categoryIndex, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, userID string, categoryIndex, itemIndex int) error {
	return s.repo.DeleteItem(ctx, userID, categoryIndex, itemIndex)
}

func (s *Service) AddCategory(ctx context.Context, userID, title string) (Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Category{}, ErrEmptyTitle
	}

	category := Category{Title: title, Items: []Item{}}
	if err := s.repo.AddCategory(ctx, userID, category); err != nil {
		return Category{}, err
	}
	return category, nil
}

// DeleteCategory removes a category and all its items.
func (s *Service) DeleteCategory(ctx context.Context, userID string, categoryIndex int) error {
	return s.repo.DeleteCategory(ctx, userID, categoryIndex)
}
