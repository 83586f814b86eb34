package gemini

import (
	"strings"
	"testing"

	"zentravel-go/internal/domain/itinerary"
)

func validDay(id int) itinerary.Day {
	return itinerary.Day{
		DayID:    id,
		DayTitle: "東京一日",
		Activities: []itinerary.Activity{
			{Title: "淺草寺", Type: itinerary.ActivitySightseeing, TransportMode: itinerary.TransportTrain},
		},
	}
}

func TestValidateDays(t *testing.T) {
	if err := validateDays([]itinerary.Day{validDay(1), validDay(2)}); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	cases := []struct {
		name string
		days []itinerary.Day
	}{
		{"duplicate dayId", []itinerary.Day{validDay(1), validDay(1)}},
		{"blank title", []itinerary.Day{{DayID: 1, DayTitle: "  "}}},
		{"unknown activity type", []itinerary.Day{{DayID: 1, DayTitle: "x", Activities: []itinerary.Activity{
			{Title: "y", Type: "NAP", TransportMode: itinerary.TransportWalk},
		}}}},
		{"unknown transport mode", []itinerary.Day{{DayID: 1, DayTitle: "x", Activities: []itinerary.Activity{
			{Title: "y", Type: itinerary.ActivityFood, TransportMode: "TELEPORT"},
		}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateDays(tc.days); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestPromptCarriesLocaleAndInput(t *testing.T) {
	c := &Client{locale: "Traditional Chinese (Taiwan)"}

	prompt := c.prompt("五天四夜東京自由行")
	if !strings.Contains(prompt, "Traditional Chinese (Taiwan)") {
		t.Fatal("prompt must name the output locale")
	}
	if !strings.Contains(prompt, "五天四夜東京自由行") {
		t.Fatal("prompt must carry the user input")
	}
}
