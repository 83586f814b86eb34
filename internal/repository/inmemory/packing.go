package inmemory

import (
	"context"
	"sync"

	packingdomain "zentravel-go/internal/domain/packing"
)

// PackingStore keeps one independent category list per user, each
// deep-cloned from the shared template at construction. No structure is
// ever shared between users: mutating one list cannot leak into
// another.
type PackingStore struct {
	mu    sync.RWMutex
	lists map[string][]packingdomain.Category
}

func NewPackingStore(userIDs []string, template []packingdomain.Category) *PackingStore {
	lists := make(map[string][]packingdomain.Category, len(userIDs))
	for _, id := range userIDs {
		lists[id] = packingdomain.CloneCategories(template)
	}
	return &PackingStore{lists: lists}
}

func (s *PackingStore) List(ctx context.Context, userID string) ([]packingdomain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[userID]
	if !ok {
		return nil, packingdomain.ErrListNotFound
	}
	return packingdomain.CloneCategories(list), nil
}

func (s *PackingStore) ToggleItem(ctx context.Context, userID string, categoryIndex, itemIndex int) (packingdomain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, err := s.category(userID, categoryIndex)
	if err != nil {
		return packingdomain.Item{}, err
	}
	if itemIndex < 0 || itemIndex >= len(category.Items) {
		return packingdomain.Item{}, packingdomain.ErrItemNotFound
	}

	category.Items[itemIndex].Checked = !category.Items[itemIndex].Checked
	return category.Items[itemIndex], nil
}

func (s *PackingStore) AddItem(ctx context.Context, userID string, categoryIndex int, item packingdomain.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, err := s.category(userID, categoryIndex)
	if err != nil {
		return err
	}
	category.Items = append(category.Items, item)
	return nil
}

func (s *PackingStore) DeleteItem(ctx context.Context, userID string, categoryIndex, itemIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, err := s.category(userID, categoryIndex)
	if err != nil {
		return err
	}
	if itemIndex < 0 || itemIndex >= len(category.Items) {
		return packingdomain.ErrItemNotFound
	}

	category.Items = append(category.Items[:itemIndex], category.Items[itemIndex+1:]...)
	return nil
}

func (s *PackingStore) AddCategory(ctx context.Context, userID string, category packingdomain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[userID]
	if !ok {
		return packingdomain.ErrListNotFound
	}
	s.lists[userID] = append(list, category)
	return nil
}

func (s *PackingStore) DeleteCategory(ctx context.Context, userID string, categoryIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[userID]
	if !ok {
		return packingdomain.ErrListNotFound
	}
	if categoryIndex < 0 || categoryIndex >= len(list) {
		return packingdomain.ErrCategoryNotFound
	}

	s.lists[userID] = append(list[:categoryIndex], list[categoryIndex+1:]...)
	return nil
}

// category returns a pointer into the stored list; callers must hold
// the write lock.
func (s *PackingStore) category(userID string, categoryIndex int) (*packingdomain.Category, error) {
	list, ok := s.lists[userID]
	if !ok {
		return nil, packingdomain.ErrListNotFound
	}
	if categoryIndex < 0 || categoryIndex >= len(list) {
		return nil, packingdomain.ErrCategoryNotFound
	}
	return &list[categoryIndex], nil
}
