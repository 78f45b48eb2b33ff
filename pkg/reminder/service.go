package reminder

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrReminderDataInvalid = errors.New("reminder data is invalid")

// installmentLeadDays is how many days before a payment due date the derived
// reminder fires.
const installmentLeadDays = 3

type Service struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

// SubscribeToBus derives reminders from domain events. An installment that
// gets a due date automatically schedules a nudge a few days ahead.
func (s *Service) SubscribeToBus(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped(bus, event_bus.InstallmentScheduled,
		func(e event_bus.EventT[event_bus.InstallmentChanged]) error {
			_, err := s.AddReminder(e.Context(), Reminder{
				WeddingId: e.Data.WeddingID,
				Title:     fmt.Sprintf("Payment due: %s", e.Data.VendorName),
				Message:   fmt.Sprintf("An installment of %d is due on %s.", e.Data.Amount, e.Data.DueDate.Format("Jan 2, 2006")),
				Kind:      KindPayment,
				RefId:     e.Data.ID,
				RemindAt:  e.Data.DueDate.AddDate(0, 0, -installmentLeadDays),
			})
			return err
		})
}

func (s *Service) AddReminder(ctx context.Context, r Reminder) (*Reminder, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if r.WeddingId == 0 {
		return nil, fmt.Errorf("%w: wedding id is required", ErrReminderDataInvalid)
	}
	if r.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrReminderDataInvalid)
	}
	if r.RemindAt.IsZero() {
		return nil, fmt.Errorf("%w: remind time is required", ErrReminderDataInvalid)
	}
	switch r.Kind {
	case "", KindEvent, KindTask, KindPayment:
	default:
		return nil, fmt.Errorf("%w: unknown entity kind %q", ErrReminderDataInvalid, r.Kind)
	}
	if r.Channel == "" {
		r.Channel = ChannelPush
	}
	switch r.Channel {
	case ChannelEmail, ChannelSms, ChannelWhatsapp, ChannelPush:
	default:
		return nil, fmt.Errorf("%w: unknown channel %q", ErrReminderDataInvalid, r.Channel)
	}
	r.Sent = false
	r.SentAt = nil

	id, err := s.repo.StoreReminder(ctx, userId, r)
	if err != nil {
		return nil, fmt.Errorf("failed to store reminder: %w", err)
	}
	r.Id = id
	return &r, nil
}

func (s *Service) GetReminders(ctx context.Context, weddingId int) ([]Reminder, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetReminders(ctx, userId, weddingId)
}

func (s *Service) DeleteReminder(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteReminder(ctx, userId, id)
}

// DispatchDue delivers all reminders that have come due and marks them sent.
// Delivery is currently a structured log line; a notification channel can
// hang off the same loop later. Returns the number of reminders dispatched.
func (s *Service) DispatchDue(ctx context.Context) (int, error) {
	now := s.clock.Now()
	pending, err := s.repo.PendingReminders(ctx, now)
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, r := range pending {
		log.WithFields(log.Fields{
			"reminderId": r.Id,
			"weddingId":  r.WeddingId,
			"title":      r.Title,
			"channel":    r.Channel,
		}).Info("Reminder due")
		if err := s.repo.MarkSent(ctx, r.Id, now); err != nil {
			log.Errorf("failed to mark reminder %d sent: %v", r.Id, err)
			continue
		}
		dispatched++
	}
	return dispatched, nil
}
