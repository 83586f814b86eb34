package itinerary

import (
	"context"
	"net/url"
	"strings"
)

const mapsDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination="

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Days(ctx context.Context) ([]Day, error) {
	return s.repo.Days(ctx)
}

// EditNote replaces the free-text annotation on one activity. An empty
// note clears it. There is a single shared itinerary, so any member may
// edit any note.
func (s *Service) EditNote(ctx context.Context, activityID, note string) error {
	if strings.TrimSpace(activityID) == "" {
		return ErrActivityNotFound
	}
	return s.repo.UpdateActivityNote(ctx, activityID, note)
}

// MapLink derives an external-maps directions URL for a free-text
// location. The location is not checked for resolvability.
func (s *Service) MapLink(location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", ErrEmptyLocation
	}
	return mapsDirectionsURL + url.QueryEscape(location), nil
}
