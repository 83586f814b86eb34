package expenses

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"zentravel-go/internal/domain/trip"
)

type Service struct {
	repo  Repository
	users *trip.Registry
	now   func() time.Time
}

func NewService(repo Repository, users *trip.Registry) *Service {
	return &Service{repo: repo, users: users, now: time.Now}
}

// Visible returns the items the given user may see, in stored order
// (most recent first).
func (s *Service) Visible(ctx context.Context, userID string) ([]Expense, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]Expense, 0, len(items))
	for _, item := range items {
		if item.VisibleTo(userID) {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

// Add creates a new expense for the acting user. Blank titles,
// non-positive amounts, unknown payers and unknown types are refused.
// OwnerID is set to the acting user only for PERSONAL items.
func (s *Service) Add(ctx context.Context, userID string, input AddExpenseInput) (*Expense, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidExpense)
	}
	if input.Amount <= 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidExpense)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown expense type %q", ErrInvalidExpense, input.Type)
	}
	if !s.users.Exists(input.PayerID) {
		return nil, ErrUnknownPayer
	}

	expense := Expense{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   input.Amount,
		Currency: CurrencyJPY,
		Category: DefaultCategory,
		PayerID:  input.PayerID,
		Type:     input.Type,
		Date:     s.now().Format("2006-01-02"),
	}
	if input.Type == TypePersonal {
		expense.OwnerID = userID
	}

	if err := s.repo.Prepend(ctx, expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// Delete removes an item by id. A user can only delete items visible to
// them; anything else reports not found so personal items of other
// members stay unobservable.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !expense.VisibleTo(userID) {
		return ErrExpenseNotFound
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}
