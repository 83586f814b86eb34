package analytics

import (
	"context"
	"math"
	"sort"

	"zentravel-go/internal/domain/expenses"
)

// ExpenseSource exposes the full ledger in stored order.
type ExpenseSource interface {
	List(ctx context.Context) ([]expenses.Expense, error)
}

// RateSource provides the current JPY→TWD exchange rate.
type RateSource interface {
	Rate() float64
}

type Service struct {
	ledger ExpenseSource
	rates  RateSource
}

func NewService(ledger ExpenseSource, rates RateSource) *Service {
	return &Service{ledger: ledger, rates: rates}
}

// Summary totals the ledger as seen by one user: the shared pool, the
// user's own personal spend, and breakdowns over the items visible to
// them. TWD equivalents use the current rate, rounded to whole dollars.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	items, err := s.ledger.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	rate := s.rates.Rate()
	summary := Summary{Rate: rate}

	byCategory := make(map[string]*CategoryRow)
	byPayer := make(map[string]*PayerRow)

	for _, item := range items {
		switch {
		case item.Type == expenses.TypeShared:
			summary.SharedJPY += item.Amount
		case item.Type == expenses.TypePersonal && item.OwnerID == userID:
			summary.PersonalJPY += item.Amount
		default:
			continue
		}

		row, ok := byCategory[item.Category]
		if !ok {
			row = &CategoryRow{Category: item.Category}
			byCategory[item.Category] = row
		}
		row.TotalJPY += item.Amount
		row.Count++

		payer, ok := byPayer[item.PayerID]
		if !ok {
			payer = &PayerRow{PayerID: item.PayerID}
			byPayer[item.PayerID] = payer
		}
		payer.TotalJPY += item.Amount
		payer.Count++
	}

	summary.SharedTWD = math.Round(summary.SharedJPY * rate)
	summary.PersonalTWD = math.Round(summary.PersonalJPY * rate)
	summary.ByCategory = sortedCategories(byCategory)
	summary.ByPayer = sortedPayers(byPayer)

	return summary, nil
}

func sortedCategories(rows map[string]*CategoryRow) []CategoryRow {
	result := make([]CategoryRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalJPY != result[j].TotalJPY {
			return result[i].TotalJPY > result[j].TotalJPY
		}
		return result[i].Category < result[j].Category
	})
	return result
}

func sortedPayers(rows map[string]*PayerRow) []PayerRow {
	result := make([]PayerRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalJPY != result[j].TotalJPY {
			return result[i].TotalJPY > result[j].TotalJPY
		}
		return result[i].PayerID < result[j].PayerID
	})
	return result
}
