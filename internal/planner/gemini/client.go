// Package gemini implements the itinerary-regeneration collaborator on
// top of the Gemini structured-output API. It owns the wire contract:
// the response schema, the prompt, and validation of what comes back.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"zentravel-go/internal/domain/itinerary"
	"zentravel-go/pkg/logger"
)

type Client struct {
	client *genai.Client
	model  string
	locale string
	log    logger.Logger
}

func New(ctx context.Context, apiKey, model, locale string, log logger.Logger) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: api key is missing")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: client, model: model, locale: locale, log: log}, nil
}

// GenerateItinerary converts a free-text travel plan into a structured
// day array. Activity ids are left empty; the consumer assigns fresh
// ones on receipt.
func (c *Client) GenerateItinerary(ctx context.Context, input string) ([]itinerary.Day, error) {
	response, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(c.prompt(input)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   itinerarySchema,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	text := response.Text()
	if strings.TrimSpace(text) == "" {
		return nil, itinerary.ErrNoUsableResult
	}

	var days []itinerary.Day
	if err := json.Unmarshal([]byte(text), &days); err != nil {
		c.log.Warn("gemini: undecodable payload", "err", err)
		return nil, itinerary.ErrNoUsableResult
	}
	if err := validateDays(days); err != nil {
		c.log.Warn("gemini: schema-violating payload", "err", err)
		return nil, itinerary.ErrNoUsableResult
	}

	return days, nil
}

func (c *Client) prompt(input string) string {
	return fmt.Sprintf(`You are an expert Japanese travel guide.
Analyze the unstructured travel plan and convert it into a structured JSON itinerary.

Tasks:
1. Identify days and activities.
2. Group weather forecasts at the DAY level.
3. For each activity, determine transport mode used to reach it from the previous location.
4. Write engaging descriptions.
5. Infer accommodation if missing.
6. Use %s.

User Input:
%s`, c.locale, input)
}

func validateDays(days []itinerary.Day) error {
	seen := make(map[int]struct{}, len(days))
	for _, day := range days {
		if _, dup := seen[day.DayID]; dup {
			return fmt.Errorf("duplicate dayId %d", day.DayID)
		}
		seen[day.DayID] = struct{}{}

		if strings.TrimSpace(day.DayTitle) == "" {
			return fmt.Errorf("day %d: missing title", day.DayID)
		}
		for _, activity := range day.Activities {
			if !activity.Type.Valid() {
				return fmt.Errorf("day %d: unknown activity type %q", day.DayID, activity.Type)
			}
			if !activity.TransportMode.Valid() {
				return fmt.Errorf("day %d: unknown transport mode %q", day.DayID, activity.TransportMode)
			}
		}
	}
	return nil
}

var itinerarySchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dayId":           {Type: genai.TypeInteger},
			"dayTitle":        {Type: genai.TypeString},
			"weatherForecast": {Type: genai.TypeString, Description: "Predicted weather for this day (e.g., 'Sunny 24°C')"},
			"weatherIcon":     {Type: genai.TypeString, Description: "Emoji for weather"},
			"accommodation": {
				Type:        genai.TypeObject,
				Description: "Hotel or accommodation information for this night.",
				Properties: map[string]*genai.Schema{
					"name":    {Type: genai.TypeString},
					"address": {Type: genai.TypeString},
					"phone":   {Type: genai.TypeString},
				},
			},
			"activities": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"time":        {Type: genai.TypeString, Description: "Time in HH:MM format"},
						"title":       {Type: genai.TypeString},
						"location":    {Type: genai.TypeString, Description: "Precise location name for Google Maps search"},
						"description": {Type: genai.TypeString, Description: "A short, engaging story or guide."},
						"type": {Type: genai.TypeString, Enum: []string{
							string(itinerary.ActivitySightseeing),
							string(itinerary.ActivityFood),
							string(itinerary.ActivityTransport),
							string(itinerary.ActivityShopping),
							string(itinerary.ActivityFlight),
							string(itinerary.ActivityOther),
						}},
						"highlights": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "Short tags like 'Must Eat', 'Must Buy', 'Photo Spot'",
						},
						"transportMode": {
							Type:        genai.TypeString,
							Description: "How to get TO this location from previous one",
							Enum: []string{
								string(itinerary.TransportWalk),
								string(itinerary.TransportTrain),
								string(itinerary.TransportBus),
								string(itinerary.TransportTaxi),
								string(itinerary.TransportFlight),
								string(itinerary.TransportNone),
							},
						},
						"transportLabel": {Type: genai.TypeString, Description: "Short text for transport (e.g. 'JR Train 30min')"},
					},
					Required: []string{"time", "title", "location", "description", "type", "highlights", "transportMode"},
				},
			},
		},
		Required: []string{"dayId", "dayTitle", "activities", "weatherForecast", "weatherIcon"},
	},
}
