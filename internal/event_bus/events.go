package event_bus

import "time"

const (
	SubEventCreated      EventType = "sub_event.created"
	SubEventUpdated      EventType = "sub_event.updated"
	SubEventDeleted      EventType = "sub_event.deleted"
	InstallmentScheduled EventType = "installment.scheduled"
	TaskCompleted        EventType = "task.completed"
)

type SubEventChanged struct {
	ID        int
	WeddingID int
	Title     string
	StartTime time.Time
	EndTime   time.Time
}

type InstallmentChanged struct {
	ID         int
	WeddingID  int
	VendorName string
	Amount     int64
	DueDate    time.Time
}

type TaskChanged struct {
	ID        int
	WeddingID int
	Title     string
	DueDate   time.Time
}
