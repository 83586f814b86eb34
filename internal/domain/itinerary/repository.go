package itinerary

import "context"

type Repository interface {
	Days(ctx context.Context) ([]Day, error)
	Replace(ctx context.Context, days []Day) error
	UpdateActivityNote(ctx context.Context, activityID, note string) error
}
