package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullyPlannedEvent(id int, eventType EventType, start time.Time, duration time.Duration, venueName string) SubEvent {
	return SubEvent{
		Id:                id,
		WeddingId:         1,
		Type:              eventType,
		StartTime:         start,
		EndTime:           start.Add(duration),
		Venue:             Venue{Name: venueName, City: "Jaipur", Type: VenueOutdoor},
		ExpectedGuests:    150,
		GuestGroup:        "all",
		TransportRequired: false,
		Vendors:           []VendorAssignment{{VendorId: 7, Status: VendorConfirmed}},
		Budget:            &BudgetSnapshot{Allocated: 500000, Committed: 200000, Spent: 50000},
	}
}

func TestEvaluate_CleanEvent(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	a := fullyPlannedEvent(1, Mehendi, start, 4*time.Hour, "Lawn")
	b := fullyPlannedEvent(2, Sangeet, start.Add(24*time.Hour), 4*time.Hour, "Ballroom")

	result := Evaluate(a, []SubEvent{a, b})

	assert.Equal(t, StatusReady, result.Status)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Conflicts)
}

func TestEvaluate_CompletenessIssuesInFixedOrder(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	e := SubEvent{
		Id:                1,
		WeddingId:         1,
		Type:              Haldi,
		StartTime:         start,
		EndTime:           start.Add(2 * time.Hour),
		TransportRequired: true,
	}

	result := Evaluate(e, []SubEvent{e})

	assert.Equal(t, StatusAttention, result.Status)
	assert.Equal(t, []string{
		"No venue selected",
		"Expected guest count not set",
		"No guest group assigned",
		"Transport required but not arranged",
		"No vendors assigned",
		"No budget allocated",
	}, result.Issues)
	assert.Empty(t, result.Conflicts)
}

func TestEvaluate_ConflictDominatesIssues(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	// Missing everything AND overlapping a sibling.
	a := SubEvent{Id: 1, WeddingId: 1, Type: Haldi, StartTime: start, EndTime: start.Add(2 * time.Hour)}
	b := fullyPlannedEvent(2, Mehendi, start.Add(time.Hour), 2*time.Hour, "Lawn")

	result := Evaluate(a, []SubEvent{a, b})

	assert.Equal(t, StatusConflict, result.Status)
	assert.NotEmpty(t, result.Issues)
	assert.NotEmpty(t, result.Conflicts)
}

func TestEvaluate_HalfOpenOverlap(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	t.Run("back-to-back events do not conflict", func(t *testing.T) {
		a := fullyPlannedEvent(1, Mehendi, start, 3*time.Hour, "Lawn")
		b := fullyPlannedEvent(2, Sangeet, start.Add(3*time.Hour), 3*time.Hour, "Ballroom")

		result := Evaluate(a, []SubEvent{a, b})
		assert.Equal(t, StatusReady, result.Status)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("one minute of overlap conflicts", func(t *testing.T) {
		a := fullyPlannedEvent(1, Mehendi, start, 3*time.Hour, "Lawn")
		b := fullyPlannedEvent(2, Sangeet, start.Add(3*time.Hour-time.Minute), 3*time.Hour, "Ballroom")

		result := Evaluate(a, []SubEvent{a, b})
		assert.Equal(t, StatusConflict, result.Status)
		assert.Len(t, result.Conflicts, 1)
	})
}

func TestEvaluate_VenueSpecificity(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

	t.Run("different venues produce only a time conflict", func(t *testing.T) {
		a := fullyPlannedEvent(1, Mehendi, start, 4*time.Hour, "Lawn")
		b := fullyPlannedEvent(2, Sangeet, start.Add(2*time.Hour), 4*time.Hour, "Ballroom")

		result := Evaluate(a, []SubEvent{a, b})
		require.Len(t, result.Conflicts, 1)
		assert.Contains(t, result.Conflicts[0], "overlaps with")
		assert.NotContains(t, result.Conflicts[0], "double-booked")
	})

	t.Run("same venue case-insensitive produces both conflicts", func(t *testing.T) {
		a := fullyPlannedEvent(1, Mehendi, start, 4*time.Hour, "Lawn")
		b := fullyPlannedEvent(2, Sangeet, start.Add(2*time.Hour), 4*time.Hour, "LAWN")

		result := Evaluate(a, []SubEvent{a, b})
		require.Len(t, result.Conflicts, 2)
		assert.Contains(t, result.Conflicts[0], "overlaps with")
		assert.Contains(t, result.Conflicts[1], "double-booked")
	})

	t.Run("empty venue names never double-book", func(t *testing.T) {
		a := fullyPlannedEvent(1, Mehendi, start, 4*time.Hour, "")
		b := fullyPlannedEvent(2, Sangeet, start.Add(2*time.Hour), 4*time.Hour, "")

		result := Evaluate(a, []SubEvent{a, b})
		require.Len(t, result.Conflicts, 1)
		assert.NotContains(t, result.Conflicts[0], "double-booked")
	})
}

func TestEvaluate_SelfExclusion(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	a := fullyPlannedEvent(1, Mehendi, start, 4*time.Hour, "Lawn")

	result := Evaluate(a, []SubEvent{a})

	assert.Equal(t, StatusReady, result.Status)
	assert.Empty(t, result.Conflicts)
}

func TestEvaluate_EmptySiblingSet(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	a := fullyPlannedEvent(1, Mehendi, start, 4*time.Hour, "Lawn")

	result := Evaluate(a, nil)

	assert.Equal(t, StatusReady, result.Status)
}

func TestEvaluate_OverlapAndVenueClashTogether(t *testing.T) {
	// Mehendi 14:00-18:00 and Sangeet 17:00-21:00, both at "Lawn":
	// one time-overlap conflict plus one venue double-booking.
	a := fullyPlannedEvent(1, Mehendi, time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC), 4*time.Hour, "Lawn")
	b := fullyPlannedEvent(2, Sangeet, time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC), 4*time.Hour, "Lawn")

	result := Evaluate(a, []SubEvent{a, b})

	assert.Equal(t, StatusConflict, result.Status)
	require.Len(t, result.Conflicts, 2)
	assert.Contains(t, result.Conflicts[0], "Mehendi overlaps with Sangeet")
	assert.Contains(t, result.Conflicts[0], "17:00")
	assert.Contains(t, result.Conflicts[0], "18:00")
	assert.Contains(t, result.Conflicts[1], `Venue "Lawn" is double-booked`)
}

func TestEvaluate_Idempotent(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	a := SubEvent{Id: 1, WeddingId: 1, Type: Haldi, StartTime: start, EndTime: start.Add(2 * time.Hour)}
	b := fullyPlannedEvent(2, Mehendi, start.Add(time.Hour), 2*time.Hour, "Lawn")
	all := []SubEvent{a, b}

	first := Evaluate(a, all)
	second := Evaluate(a, all)

	assert.Equal(t, first, second)
}

func TestSubEvent_Title(t *testing.T) {
	testCases := []struct {
		name  string
		event SubEvent
		want  string
	}{
		{"typed event uses label", SubEvent{Type: Sangeet}, "Sangeet"},
		{"custom event uses custom name", SubEvent{Type: Custom, CustomName: "Pool Party"}, "Pool Party"},
		{"custom event without name falls back", SubEvent{Type: Custom}, "Custom Event"},
		{"custom name ignored for typed events", SubEvent{Type: Haldi, CustomName: "ignored"}, "Haldi"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.event.Title())
		})
	}
}
