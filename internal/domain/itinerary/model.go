package itinerary

type ActivityType string

const (
	ActivitySightseeing ActivityType = "SIGHTSEEING"
	ActivityFood        ActivityType = "FOOD"
	ActivityTransport   ActivityType = "TRANSPORT"
	ActivityShopping    ActivityType = "SHOPPING"
	ActivityFlight      ActivityType = "FLIGHT"
	ActivityOther       ActivityType = "OTHER"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivitySightseeing, ActivityFood, ActivityTransport, ActivityShopping, ActivityFlight, ActivityOther:
		return true
	}
	return false
}

type TransportMode string

const (
	TransportWalk   TransportMode = "WALK"
	TransportTrain  TransportMode = "TRAIN"
	TransportBus    TransportMode = "BUS"
	TransportTaxi   TransportMode = "TAXI"
	TransportFlight TransportMode = "FLIGHT"
	TransportNone   TransportMode = "NONE"
)

func (m TransportMode) Valid() bool {
	switch m {
	case TransportWalk, TransportTrain, TransportBus, TransportTaxi, TransportFlight, TransportNone:
		return true
	}
	return false
}

// Activity is a single itinerary entry. UserNotes is the only field
// mutated after creation; everything else is fixed until the itinerary
// is wholesale-replaced by a regeneration.
type Activity struct {
	ID             string        `json:"id"`
	Time           string        `json:"time"`
	Title          string        `json:"title"`
	Location       string        `json:"location"`
	Description    string        `json:"description"`
	UserNotes      string        `json:"userNotes,omitempty"`
	Type           ActivityType  `json:"type"`
	URL            string        `json:"url,omitempty"`
	Highlights     []string      `json:"highlights"`
	TransportMode  TransportMode `json:"transportMode,omitempty"`
	TransportLabel string        `json:"transportLabel,omitempty"`
}

type Accommodation struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Day groups one day's activities. Slice order is display order; Time
// strings on activities are labels only and never drive sorting.
type Day struct {
	DayID           int            `json:"dayId"`
	DateStr         string         `json:"dateStr,omitempty"`
	DayTitle        string         `json:"dayTitle"`
	WeatherForecast string         `json:"weatherForecast,omitempty"`
	WeatherIcon     string         `json:"weatherIcon,omitempty"`
	Activities      []Activity     `json:"activities"`
	Accommodation   *Accommodation `json:"accommodation,omitempty"`
}
