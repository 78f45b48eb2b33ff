package timeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/event"
	"github.com/Bhavesh-Anc/eventkaro/pkg/payment"
	"github.com/Bhavesh-Anc/eventkaro/pkg/task"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrFilterInvalid = errors.New("timeline filter is invalid")

var validFilters = map[Filter]bool{
	FilterAll:     true,
	FilterEvents:  true,
	FilterTasks:   true,
	FilterVendors: true,
}

type Service struct {
	events   *event.Service
	tasks    *task.Service
	payments *payment.Service
	clock    utils.Clock
}

func NewService(events *event.Service, tasks *task.Service, payments *payment.Service, clock utils.Clock) *Service {
	return &Service{events: events, tasks: tasks, payments: payments, clock: clock}
}

// GetTimeline builds the unified timeline of a wedding in the current user's
// timezone. Sub-event statuses are evaluated here and handed to the
// aggregator, which stays a pure merge.
func (s *Service) GetTimeline(ctx context.Context, weddingId int, opts Options) (View, error) {
	if opts.Filter != "" && !validFilters[opts.Filter] {
		return View{}, fmt.Errorf("%w: %q", ErrFilterInvalid, opts.Filter)
	}

	evaluated, err := s.events.GetEventsWithStatus(ctx, weddingId)
	if err != nil {
		return View{}, err
	}
	tasks, err := s.tasks.GetTasks(ctx, weddingId)
	if err != nil {
		return View{}, err
	}
	installments, err := s.payments.GetInstallments(ctx, weddingId)
	if err != nil {
		return View{}, err
	}

	eventEntries := make([]EventEntry, 0, len(evaluated))
	for _, e := range evaluated {
		eventEntries = append(eventEntries, EventEntry{
			Id:        e.Id,
			Title:     e.Title(),
			VenueName: e.Venue.Name,
			Date:      e.StartTime,
			Status:    string(e.Status),
		})
	}
	taskEntries := make([]TaskEntry, 0, len(tasks))
	for _, t := range tasks {
		taskEntries = append(taskEntries, TaskEntry{
			Id:       t.Id,
			Title:    t.Title,
			DueDate:  t.DueDate,
			Done:     t.Done,
			Priority: string(t.Priority),
			Category: t.Category,
		})
	}
	paymentEntries := make([]PaymentEntry, 0, len(installments))
	for _, i := range installments {
		paymentEntries = append(paymentEntries, PaymentEntry{
			Id:             i.Id,
			VendorName:     i.VendorName,
			VendorCategory: i.VendorCategory,
			Amount:         i.Amount,
			DueDate:        i.DueDate,
			Status:         string(i.Status),
		})
	}

	return Aggregate(eventEntries, taskEntries, paymentEntries, s.clock.Now(), s.userLocation(ctx), opts), nil
}

func (s *Service) userLocation(ctx context.Context) *time.Location {
	current, err := user.CurrentUser(ctx)
	if err != nil || current.Settings.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(current.Settings.Timezone)
	if err != nil {
		log.Warnf("unknown timezone %q, falling back to UTC", current.Settings.Timezone)
		return time.UTC
	}
	return loc
}
