package task

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Task is a single checklist entry for a wedding.
type Task struct {
	Id        int
	WeddingId int
	Title     string
	DueDate   time.Time
	Done      bool
	Priority  Priority
	// Category is free-form, e.g. "shopping" or "invitations". Optional.
	Category string
	// CompletedAt is set when Done flips to true.
	CompletedAt *time.Time
}
