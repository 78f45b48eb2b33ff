package event

import (
	"fmt"
	"strings"
	"time"
)

// Status is the coarse readiness classification of a sub-event.
type Status string

const (
	StatusReady     Status = "ready"
	StatusAttention Status = "attention"
	StatusConflict  Status = "conflict"
)

// StatusResult classifies one sub-event against its siblings. Issues are
// advisory (missing planning data); Conflicts are blocking (time or venue
// double-booking). Both lists keep a fixed order: completeness checks first,
// then pairwise conflicts in sibling iteration order, so compact UIs can show
// just the first message.
type StatusResult struct {
	Status    Status
	Issues    []string
	Conflicts []string
}

const overlapTimeFormat = "Jan 2 15:04"

// Evaluate computes the status of event against all sibling sub-events.
// The event itself may appear in all; it is skipped by id. The function is
// total: missing optional data becomes an issue, never an error. Timestamp
// ordering (end after start) is a precondition enforced at data entry;
// malformed records are passed through the overlap test as-is.
func Evaluate(event SubEvent, all []SubEvent) StatusResult {
	result := StatusResult{
		Issues:    []string{},
		Conflicts: []string{},
	}

	if event.Venue.Name == "" {
		result.Issues = append(result.Issues, "No venue selected")
	}
	if event.ExpectedGuests <= 0 {
		result.Issues = append(result.Issues, "Expected guest count not set")
	}
	if event.GuestGroup == "" {
		result.Issues = append(result.Issues, "No guest group assigned")
	}
	if event.TransportRequired && !event.TransportAssigned {
		result.Issues = append(result.Issues, "Transport required but not arranged")
	}
	if len(event.Vendors) == 0 {
		result.Issues = append(result.Issues, "No vendors assigned")
	}
	if event.Budget == nil {
		result.Issues = append(result.Issues, "No budget allocated")
	}

	for _, other := range all {
		if other.Id == event.Id {
			continue
		}
		if !overlaps(event, other) {
			continue
		}

		from, to := overlapWindow(event, other)
		result.Conflicts = append(result.Conflicts, fmt.Sprintf(
			"%s overlaps with %s (%s - %s)",
			event.Title(), other.Title(),
			from.Format(overlapTimeFormat), to.Format(overlapTimeFormat),
		))

		if sameVenue(event, other) {
			result.Conflicts = append(result.Conflicts, fmt.Sprintf(
				"Venue %q is double-booked: %s and %s at the same time",
				event.Venue.Name, event.Title(), other.Title(),
			))
		}
	}

	switch {
	case len(result.Conflicts) > 0:
		result.Status = StatusConflict
	case len(result.Issues) > 0:
		result.Status = StatusAttention
	default:
		result.Status = StatusReady
	}

	return result
}

// overlaps reports whether two events share any time, using half-open
// interval semantics: back-to-back events with equal boundary timestamps do
// not overlap.
func overlaps(a, b SubEvent) bool {
	return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
}

func overlapWindow(a, b SubEvent) (time.Time, time.Time) {
	from := a.StartTime
	if b.StartTime.After(from) {
		from = b.StartTime
	}
	to := a.EndTime
	if b.EndTime.Before(to) {
		to = b.EndTime
	}
	return from, to
}

func sameVenue(a, b SubEvent) bool {
	if a.Venue.Name == "" || b.Venue.Name == "" {
		return false
	}
	return strings.EqualFold(a.Venue.Name, b.Venue.Name)
}
