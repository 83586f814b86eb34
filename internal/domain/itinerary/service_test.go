package itinerary

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	days     []Day
	replaced [][]Day
}

func (r *fakeRepo) Days(ctx context.Context) ([]Day, error) {
	return r.days, nil
}

func (r *fakeRepo) Replace(ctx context.Context, days []Day) error {
	r.days = days
	r.replaced = append(r.replaced, days)
	return nil
}

func (r *fakeRepo) UpdateActivityNote(ctx context.Context, activityID, note string) error {
	for di := range r.days {
		for ai := range r.days[di].Activities {
			if r.days[di].Activities[ai].ID == activityID {
				r.days[di].Activities[ai].UserNotes = note
				return nil
			}
		}
	}
	return ErrActivityNotFound
}

func testDays() []Day {
	return []Day{
		{
			DayID:    1,
			DayTitle: "抵達東京",
			Activities: []Activity{
				{ID: "d1-1", Title: "抵達成田機場", Type: ActivityFlight},
				{ID: "d1-3", Title: "飯店 Check-in", Type: ActivityOther},
			},
		},
	}
}

func TestEditNote(t *testing.T) {
	repo := &fakeRepo{days: testDays()}
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.EditNote(ctx, "d1-3", "記得提早預約"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := repo.days[0].Activities[1].UserNotes; got != "記得提早預約" {
		t.Fatalf("note not stored, got %q", got)
	}

	// Empty note clears the annotation.
	if err := svc.EditNote(ctx, "d1-3", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := repo.days[0].Activities[1].UserNotes; got != "" {
		t.Fatalf("note not cleared, got %q", got)
	}
}

func TestEditNoteUnknownActivity(t *testing.T) {
	svc := NewService(&fakeRepo{days: testDays()})

	if err := svc.EditNote(context.Background(), "missing", "x"); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
	if err := svc.EditNote(context.Background(), "  ", "x"); !errors.Is(err, ErrActivityNotFound) {
		t.Fatalf("blank id: expected ErrActivityNotFound, got %v", err)
	}
}

func TestMapLink(t *testing.T) {
	svc := NewService(&fakeRepo{})

	link, err := svc.MapLink("東京駅 丸の内口")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "https://www.google.com/maps/dir/?api=1&destination=%E6%9D%B1%E4%BA%AC%E9%A7%85+%E4%B8%B8%E3%81%AE%E5%86%85%E5%8F%A3"
	if link != want {
		t.Fatalf("want %q, got %q", want, link)
	}

	if _, err := svc.MapLink("   "); !errors.Is(err, ErrEmptyLocation) {
		t.Fatalf("expected ErrEmptyLocation, got %v", err)
	}
}
