package payment

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
)

// Installment is a single payment owed to a vendor. A vendor booking is
// usually split into several of these (advance, milestone, final).
type Installment struct {
	Id        int
	WeddingId int
	// BookingId links back to the vendor booking, 0 for ad-hoc payments.
	BookingId int
	// VendorName and VendorCategory are denormalized for display.
	VendorName     string
	VendorCategory string
	// Amount is in minor currency units.
	Amount int64
	// DueDate is nil for installments without an agreed date yet.
	DueDate *time.Time
	Status  Status
	// PaidAt is set when the installment transitions to StatusPaid.
	PaidAt *time.Time
	Notes  string
}
