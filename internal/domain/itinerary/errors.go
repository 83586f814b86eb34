package itinerary

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrEmptyLocation    = errors.New("location is empty")
	ErrEmptyInput       = errors.New("analysis input is empty")
	ErrAnalysisInFlight = errors.New("analysis already in flight")
	ErrPlannerDisabled  = errors.New("planner is not configured")
	ErrNoUsableResult   = errors.New("no usable itinerary in planner response")
)
