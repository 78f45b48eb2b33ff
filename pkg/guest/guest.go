package guest

// RSVPStatus is the attendance confirmation state of a guest.
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

// Side says which family invited the guest.
type Side string

const (
	SideBride Side = "bride"
	SideGroom Side = "groom"
	SideBoth  Side = "both"
)

type Guest struct {
	Id        int
	WeddingId int
	Name      string
	// Phone is stored in E.164 format.
	Phone        string
	Email        string
	Side         Side
	Group        string
	RSVP         RSVPStatus
	PlusOnes     int
	DietaryNotes string
}

// Summary aggregates per-wedding guest counts for the dashboard.
type Summary struct {
	Total    int
	Accepted int
	Declined int
	Pending  int
	// Headcount counts accepted guests plus their plus-ones.
	Headcount int
}
