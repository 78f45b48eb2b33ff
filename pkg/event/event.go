package event

import "time"

// EventType enumerates the occasions that make up an Indian wedding.
type EventType string

const (
	Engagement EventType = "engagement"
	Roka       EventType = "roka"
	Mehendi    EventType = "mehendi"
	Haldi      EventType = "haldi"
	Sangeet    EventType = "sangeet"
	Cocktail   EventType = "cocktail"
	Wedding    EventType = "wedding"
	Reception  EventType = "reception"
	Vidaai     EventType = "vidaai"
	Custom     EventType = "custom"
)

var typeLabels = map[EventType]string{
	Engagement: "Engagement",
	Roka:       "Roka",
	Mehendi:    "Mehendi",
	Haldi:      "Haldi",
	Sangeet:    "Sangeet",
	Cocktail:   "Cocktail Party",
	Wedding:    "Wedding",
	Reception:  "Reception",
	Vidaai:     "Vidaai",
	Custom:     "Custom Event",
}

// Label returns the display name for the event type.
func (t EventType) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return "Custom Event"
}

type VenueType string

const (
	VenueIndoor  VenueType = "indoor"
	VenueOutdoor VenueType = "outdoor"
)

type Venue struct {
	Name    string
	Address string
	City    string
	State   string
	Type    VenueType
}

type ConfirmationStatus string

const (
	VendorPending   ConfirmationStatus = "pending"
	VendorConfirmed ConfirmationStatus = "confirmed"
)

// VendorAssignment links a booked vendor to one sub-event.
type VendorAssignment struct {
	Id          int
	VendorId    int
	Status      ConfirmationStatus
	ArrivalTime *time.Time
	Scope       string
}

// BudgetSnapshot is the per-event budget view, all amounts in minor
// currency units.
type BudgetSnapshot struct {
	Allocated int64
	Committed int64
	Spent     int64
}

// SubEvent is one occasion within a wedding.
type SubEvent struct {
	Id         int
	WeddingId  int
	Type       EventType
	CustomName string
	StartTime  time.Time
	EndTime    time.Time

	Venue          Venue
	ExpectedGuests int
	GuestGroup     string
	DressCode      string
	ColorTheme     string

	TransportRequired bool
	TransportAssigned bool

	Description string
	Vendors     []VendorAssignment
	Budget      *BudgetSnapshot
}

// Title returns the display title: the custom name for custom events when
// one is set, otherwise the type label.
func (e SubEvent) Title() string {
	if e.Type == Custom && e.CustomName != "" {
		return e.CustomName
	}
	return e.Type.Label()
}
