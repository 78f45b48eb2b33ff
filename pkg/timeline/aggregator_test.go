package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var aggNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

// A mixed fixture: 2 events, 3 tasks (1 completed), 2 installments (1 without
// a due date).
func mixedFixture() ([]EventEntry, []TaskEntry, []PaymentEntry) {
	events := []EventEntry{
		{Id: 1, Title: "Mehendi", VenueName: "Lawn", Date: aggNow.AddDate(0, 0, 1), Status: "ready"},
		{Id: 2, Title: "Sangeet", Date: aggNow.AddDate(0, 0, 2), Status: "attention"},
	}
	tasks := []TaskEntry{
		{Id: 1, Title: "Send invitations", DueDate: aggNow.AddDate(0, 0, 1), Priority: "high"},
		{Id: 2, Title: "Book mehendi artist", DueDate: aggNow.AddDate(0, 0, 3), Done: true},
		{Id: 3, Title: "Confirm caterer menu", DueDate: aggNow.AddDate(0, 0, 5), Priority: "medium"},
	}
	payments := []PaymentEntry{
		{Id: 1, VendorName: "Royal Caterers", VendorCategory: "catering", Amount: 100, DueDate: timePtr(aggNow.AddDate(0, 0, 4)), Status: "pending"},
		{Id: 2, VendorName: "Dhol Beats", VendorCategory: "music", Amount: 100, Status: "pending"},
	}
	return events, tasks, payments
}

func collectItems(groups []DayGroup) []Item {
	var items []Item
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}

func TestAggregate_Completeness(t *testing.T) {
	events, tasks, payments := mixedFixture()

	view := Aggregate(events, tasks, payments, aggNow, time.UTC, Options{Filter: FilterAll})

	items := collectItems(view.Upcoming)
	items = append(items, collectItems(view.Past)...)
	// 2 events + 2 open tasks + 1 dated installment. The completed task and
	// the installment without a due date are excluded.
	require.Len(t, items, 5)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.Id)
	}
	assert.NotContains(t, ids, "task-2")
	assert.NotContains(t, ids, "payment-2")
}

func TestAggregate_ShowCompleted(t *testing.T) {
	events, tasks, payments := mixedFixture()

	view := Aggregate(events, tasks, payments, aggNow, time.UTC, Options{ShowCompleted: true})

	items := collectItems(view.Upcoming)
	var completed *Item
	for i := range items {
		if items[i].Id == "task-2" {
			completed = &items[i]
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, TaskStatusCompleted, completed.Status)
}

func TestAggregate_FilterTasks(t *testing.T) {
	events, tasks, payments := mixedFixture()

	view := Aggregate(events, tasks, payments, aggNow, time.UTC, Options{Filter: FilterTasks})

	items := collectItems(view.Upcoming)
	require.Len(t, items, 2)
	assert.Equal(t, "task-1", items[0].Id)
	assert.Equal(t, "task-3", items[1].Id)
	assert.True(t, items[0].Date.Before(items[1].Date))
}

func TestAggregate_TieBreakKeepsSourceOrder(t *testing.T) {
	sameTime := aggNow.AddDate(0, 0, 1)
	events := []EventEntry{{Id: 1, Title: "Haldi", Date: sameTime, Status: "ready"}}
	tasks := []TaskEntry{{Id: 1, Title: "Buy flowers", DueDate: sameTime, Priority: "low"}}
	payments := []PaymentEntry{{Id: 1, VendorName: "Floral Decor", DueDate: timePtr(sameTime), Status: "pending"}}

	view := Aggregate(events, tasks, payments, aggNow, time.UTC, Options{})

	items := collectItems(view.Upcoming)
	require.Len(t, items, 3)
	assert.Equal(t, SourceEvent, items[0].Source)
	assert.Equal(t, SourceTask, items[1].Source)
	assert.Equal(t, SourcePayment, items[2].Source)
}

func TestAggregate_PastBoundedToFiveDays(t *testing.T) {
	var tasks []TaskEntry
	for day := 1; day <= 10; day++ {
		tasks = append(tasks, TaskEntry{
			Id:      day,
			Title:   "old task",
			DueDate: aggNow.AddDate(0, 0, -day),
		})
	}

	view := Aggregate(nil, tasks, nil, aggNow, time.UTC, Options{})

	require.Len(t, view.Past, 5)
	for i := 0; i < len(view.Past)-1; i++ {
		assert.True(t, view.Past[i].Date.After(view.Past[i+1].Date), "past days must be most recent first")
	}
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), view.Past[0].Date)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), view.Past[4].Date)
	assert.Empty(t, view.Upcoming)
}

func TestAggregate_TodayCountsAsUpcoming(t *testing.T) {
	earlierToday := aggNow.Add(-3 * time.Hour)
	events := []EventEntry{{Id: 1, Title: "Haldi", Date: earlierToday, Status: "ready"}}

	view := Aggregate(events, nil, nil, aggNow, time.UTC, Options{})

	require.Len(t, view.Upcoming, 1)
	assert.Empty(t, view.Past)
}

func TestAggregate_GroupsByCallerTimezone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 21:00 UTC on March 15 is already March 16 in Kolkata.
	late := time.Date(2026, 3, 15, 21, 0, 0, 0, time.UTC)
	events := []EventEntry{{Id: 1, Title: "Sangeet", Date: late, Status: "ready"}}

	view := Aggregate(events, nil, nil, aggNow, kolkata, Options{})

	require.Len(t, view.Upcoming, 1)
	assert.Equal(t, 16, view.Upcoming[0].Date.Day())
}

func TestAggregate_TaskStatuses(t *testing.T) {
	tasks := []TaskEntry{
		{Id: 1, Title: "overdue", DueDate: aggNow.Add(-time.Hour)},
		{Id: 2, Title: "pending", DueDate: aggNow.Add(time.Hour)},
		{Id: 3, Title: "done", DueDate: aggNow.Add(-time.Hour), Done: true},
	}

	view := Aggregate(nil, tasks, nil, aggNow, time.UTC, Options{ShowCompleted: true})

	byId := map[string]Item{}
	for _, item := range append(collectItems(view.Upcoming), collectItems(view.Past)...) {
		byId[item.Id] = item
	}
	assert.Equal(t, TaskStatusOverdue, byId["task-1"].Status)
	assert.Equal(t, TaskStatusPending, byId["task-2"].Status)
	assert.Equal(t, TaskStatusCompleted, byId["task-3"].Status)
}

func TestAggregate_OverduePaymentKeepsStatus(t *testing.T) {
	payments := []PaymentEntry{
		{Id: 1, VendorName: "Royal Caterers", DueDate: timePtr(aggNow.Add(-time.Hour)), Status: "pending"},
		{Id: 2, VendorName: "Dhol Beats", DueDate: timePtr(aggNow.Add(-time.Hour)), Status: "paid"},
	}

	view := Aggregate(nil, nil, payments, aggNow, time.UTC, Options{})

	items := collectItems(view.Past)
	require.Len(t, items, 2)
	// Status is untouched; only the color key flips.
	assert.Equal(t, "pending", items[0].Status)
	assert.Equal(t, "red", items[0].ColorKey)
	assert.Equal(t, "paid", items[1].Status)
	assert.Equal(t, "green", items[1].ColorKey)
}

func TestAggregate_EventSubtitleFallsBackToTBD(t *testing.T) {
	events := []EventEntry{
		{Id: 1, Title: "Mehendi", VenueName: "Lawn", Date: aggNow.AddDate(0, 0, 1), Status: "ready"},
		{Id: 2, Title: "Sangeet", Date: aggNow.AddDate(0, 0, 1), Status: "attention"},
	}

	view := Aggregate(events, nil, nil, aggNow, time.UTC, Options{})

	items := collectItems(view.Upcoming)
	require.Len(t, items, 2)
	assert.Equal(t, "Lawn", items[0].Subtitle)
	assert.Equal(t, "Venue TBD", items[1].Subtitle)
}

func TestAggregate_EmptyInputs(t *testing.T) {
	view := Aggregate(nil, nil, nil, aggNow, time.UTC, Options{})
	assert.Empty(t, view.Upcoming)
	assert.Empty(t, view.Past)
}

func TestAggregate_Idempotent(t *testing.T) {
	events, tasks, payments := mixedFixture()

	first := Aggregate(events, tasks, payments, aggNow, time.UTC, Options{})
	second := Aggregate(events, tasks, payments, aggNow, time.UTC, Options{})
	assert.Equal(t, first, second)
}
