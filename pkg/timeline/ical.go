package timeline

import (
	"context"
	"fmt"
	"strings"

	ical "github.com/arran4/golang-ical"
)

// ExportRunSheet renders all sub-events of a wedding as an iCalendar feed,
// one VEVENT each. Planners import it into their own calendar apps to follow
// the celebration day by day.
func (s *Service) ExportRunSheet(ctx context.Context, weddingId int) (string, error) {
	evaluated, err := s.events.GetEventsWithStatus(ctx, weddingId)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//eventkaro//run sheet//EN")

	now := s.clock.Now()
	for _, e := range evaluated {
		ev := cal.AddEvent(fmt.Sprintf("sub-event-%d@eventkaro", e.Id))
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.StartTime)
		ev.SetEndAt(e.EndTime)
		ev.SetSummary(e.Title())
		if e.Venue.Name != "" {
			ev.SetLocation(venueLine(e.Venue.Name, e.Venue.Address, e.Venue.City))
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
	}
	return cal.Serialize(), nil
}

func venueLine(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
