package reminder

import "time"

// EntityKind says which record a derived reminder points back at. Hand-made
// reminders leave it empty.
type EntityKind string

const (
	KindEvent   EntityKind = "event"
	KindTask    EntityKind = "task"
	KindPayment EntityKind = "payment"
)

// Channel is the intended delivery medium. Dispatch currently logs the
// intent; the channel is carried so a notification backend can route on it.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSms      Channel = "sms"
	ChannelWhatsapp Channel = "whatsapp"
	ChannelPush     Channel = "push"
)

// Reminder is a scheduled nudge for the planner. Reminders are created by
// hand or derived from other records, e.g. a payment installment getting a
// due date.
type Reminder struct {
	Id        int
	WeddingId int
	Title     string
	Message   string
	// Kind and RefId link a derived reminder to its source record.
	Kind     EntityKind
	RefId    int
	Channel  Channel
	RemindAt time.Time
	Sent     bool
	SentAt   *time.Time
}
