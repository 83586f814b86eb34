package inmemory

import (
	"context"
	"sync"

	expensesdomain "zentravel-go/internal/domain/expenses"
)

// ExpenseLedger is an ordered flat list, newest first.
type ExpenseLedger struct {
	mu    sync.RWMutex
	items []expensesdomain.Expense
}

func NewExpenseLedger(seed []expensesdomain.Expense) *ExpenseLedger {
	items := make([]expensesdomain.Expense, len(seed))
	copy(items, seed)
	return &ExpenseLedger{items: items}
}

func (l *ExpenseLedger) List(ctx context.Context) ([]expensesdomain.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	items := make([]expensesdomain.Expense, len(l.items))
	copy(items, l.items)
	return items, nil
}

func (l *ExpenseLedger) GetByID(ctx context.Context, id string) (expensesdomain.Expense, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item.ID == id {
			return item, nil
		}
	}
	return expensesdomain.Expense{}, expensesdomain.ErrExpenseNotFound
}

func (l *ExpenseLedger) Prepend(ctx context.Context, expense expensesdomain.Expense) error {
	l.mu.Lock()
	l.items = append([]expensesdomain.Expense{expense}, l.items...)
	l.mu.Unlock()
	return nil
}

func (l *ExpenseLedger) Delete(ctx context.Context, id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
