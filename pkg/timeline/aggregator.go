package timeline

import (
	"fmt"
	"sort"
	"time"
)

// Aggregate merges sub-events, tasks, and vendor installments into one
// day-grouped chronological view. It is a pure function: now and loc are
// injected so results are deterministic, inputs are never mutated, and all
// output structures are freshly allocated.
func Aggregate(events []EventEntry, tasks []TaskEntry, payments []PaymentEntry, now time.Time, loc *time.Location, opts Options) View {
	if loc == nil {
		loc = time.UTC
	}
	filter := opts.Filter
	if filter == "" {
		filter = FilterAll
	}

	items := make([]Item, 0, len(events)+len(tasks)+len(payments))
	if filter == FilterAll || filter == FilterEvents {
		for _, e := range events {
			items = append(items, projectEvent(e))
		}
	}
	if filter == FilterAll || filter == FilterTasks {
		for _, t := range tasks {
			if t.Done && !opts.ShowCompleted {
				continue
			}
			items = append(items, projectTask(t, now))
		}
	}
	if filter == FilterAll || filter == FilterVendors {
		for _, p := range payments {
			if p.DueDate == nil {
				continue
			}
			items = append(items, projectPayment(p, now))
		}
	}

	// Stable keeps the inclusion order (events, tasks, payments) on ties.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	today := dayOf(now, loc)
	var upcoming, past []DayGroup
	for _, item := range items {
		day := dayOf(item.Date, loc)
		if day.Before(today) {
			past = appendToDay(past, day, item)
		} else {
			upcoming = appendToDay(upcoming, day, item)
		}
	}

	// Past days most recent first, bounded to the 5 most recent.
	for i, j := 0, len(past)-1; i < j; i, j = i+1, j-1 {
		past[i], past[j] = past[j], past[i]
	}
	if len(past) > 5 {
		past = past[:5]
	}

	return View{Upcoming: upcoming, Past: past}
}

func projectEvent(e EventEntry) Item {
	subtitle := e.VenueName
	if subtitle == "" {
		subtitle = "Venue TBD"
	}
	return Item{
		Id:       fmt.Sprintf("%s-%d", SourceEvent, e.Id),
		Source:   SourceEvent,
		Date:     e.Date,
		Title:    e.Title,
		Subtitle: subtitle,
		Status:   e.Status,
		ColorKey: colorKey(e.Status),
	}
}

func projectTask(t TaskEntry, now time.Time) Item {
	status := TaskStatusPending
	switch {
	case t.Done:
		status = TaskStatusCompleted
	case t.DueDate.Before(now):
		status = TaskStatusOverdue
	}
	subtitle := t.Category
	if subtitle == "" {
		subtitle = t.Priority + " priority"
	}
	return Item{
		Id:       fmt.Sprintf("%s-%d", SourceTask, t.Id),
		Source:   SourceTask,
		Date:     t.DueDate,
		Title:    t.Title,
		Subtitle: subtitle,
		Status:   status,
		ColorKey: colorKey(status),
	}
}

func projectPayment(p PaymentEntry, now time.Time) Item {
	key := colorKey(p.Status)
	// Unpaid past-due installments surface in the overdue color while the
	// stored status stays untouched.
	if p.Status != "paid" && p.DueDate.Before(now) {
		key = colorKey(TaskStatusOverdue)
	}
	return Item{
		Id:       fmt.Sprintf("%s-%d", SourcePayment, p.Id),
		Source:   SourcePayment,
		Date:     *p.DueDate,
		Title:    p.VendorName,
		Subtitle: p.VendorCategory,
		Status:   p.Status,
		ColorKey: key,
	}
}

func dayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// appendToDay relies on items arriving date-sorted, so a new day is always
// appended at the end.
func appendToDay(groups []DayGroup, day time.Time, item Item) []DayGroup {
	if n := len(groups); n > 0 && groups[n-1].Date.Equal(day) {
		groups[n-1].Items = append(groups[n-1].Items, item)
		return groups
	}
	return append(groups, DayGroup{Date: day, Items: []Item{item}})
}
