package vendors

import "time"

type Category string

const (
	CategoryVenue       Category = "venue"
	CategoryCatering    Category = "catering"
	CategoryPhotography Category = "photography"
	CategoryDecor       Category = "decor"
	CategoryMusic       Category = "music"
	CategoryMehendi     Category = "mehendi"
	CategoryTransport   Category = "transport"
	CategoryPriest      Category = "priest"
	CategoryOther       Category = "other"
)

// Vendor is a marketplace listing, visible to every user.
type Vendor struct {
	Id       int
	Name     string
	Category Category
	City     string
	Phone    string
	Email    string
	// BasePrice is the advertised starting price in minor currency units.
	BasePrice int64
	// Rating is the average of all review ratings, 0 when unreviewed.
	Rating      float64
	ReviewCount int
}

type BookingStatus string

const (
	BookingInquiry   BookingStatus = "inquiry"
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking ties a vendor to a wedding.
type Booking struct {
	Id        int
	WeddingId int
	VendorId  int
	// VendorName and VendorCategory are denormalized for display.
	VendorName     string
	VendorCategory Category
	Status         BookingStatus
	// Amount is the agreed total in minor currency units.
	Amount int64
	Notes  string
}

type Review struct {
	Id        int
	VendorId  int
	Rating    int
	Comment   string
	CreatedAt time.Time
}
