package inmemory

import (
	"context"
	"sync"

	itinerarydomain "zentravel-go/internal/domain/itinerary"
)

// ItineraryStore keeps the single shared itinerary. Reads hand out deep
// copies so callers can never mutate stored state behind the lock.
type ItineraryStore struct {
	mu   sync.RWMutex
	days []itinerarydomain.Day
}

func NewItineraryStore(seed []itinerarydomain.Day) *ItineraryStore {
	return &ItineraryStore{days: cloneDays(seed)}
}

func (s *ItineraryStore) Days(ctx context.Context) ([]itinerarydomain.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDays(s.days), nil
}

func (s *ItineraryStore) Replace(ctx context.Context, days []itinerarydomain.Day) error {
	cloned := cloneDays(days)
	s.mu.Lock()
	s.days = cloned
	s.mu.Unlock()
	return nil
}

func (s *ItineraryStore) UpdateActivityNote(ctx context.Context, activityID, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for di := range s.days {
		for ai := range s.days[di].Activities {
			if s.days[di].Activities[ai].ID == activityID {
				s.days[di].Activities[ai].UserNotes = note
				return nil
			}
		}
	}
	return itinerarydomain.ErrActivityNotFound
}

func cloneDays(days []itinerarydomain.Day) []itinerarydomain.Day {
	if days == nil {
		return nil
	}
	cloned := make([]itinerarydomain.Day, len(days))
	for i, day := range days {
		cloned[i] = day
		cloned[i].Activities = make([]itinerarydomain.Activity, len(day.Activities))
		for j, activity := range day.Activities {
			cloned[i].Activities[j] = activity
			if activity.Highlights != nil {
				cloned[i].Activities[j].Highlights = append([]string{}, activity.Highlights...)
			}
		}
		if day.Accommodation != nil {
			accommodation := *day.Accommodation
			cloned[i].Accommodation = &accommodation
		}
	}
	return cloned
}
