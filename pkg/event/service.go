package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrEventDataInvalid = errors.New("sub-event data is invalid")

// EventWithStatus pairs a sub-event with its computed readiness.
type EventWithStatus struct {
	SubEvent
	StatusResult
}

type Service struct {
	repo Repository
	bus  *event_bus.EventBus
}

func NewService(repo Repository, bus *event_bus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) AddEvent(ctx context.Context, e SubEvent) (*SubEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(e); err != nil {
		return nil, err
	}

	id, err := s.repo.StoreEvent(ctx, userId, e)
	if err != nil {
		return nil, fmt.Errorf("failed to store sub-event: %w", err)
	}
	e.Id = id

	s.publish(ctx, event_bus.SubEventCreated, e)
	return &e, nil
}

// AddEvents stores a batch of sub-events in one transaction. The setup
// wizard creates the whole celebration at once; a partial write would leave
// the wedding half-configured.
func (s *Service) AddEvents(ctx context.Context, events []SubEvent) ([]SubEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	for _, e := range events {
		if err := validate(e); err != nil {
			return nil, err
		}
	}

	created := make([]SubEvent, 0, len(events))
	err = s.repo.WithTransaction(ctx, func(repo Repository) error {
		for _, e := range events {
			id, err := repo.StoreEvent(ctx, userId, e)
			if err != nil {
				return fmt.Errorf("failed to store sub-event: %w", err)
			}
			e.Id = id
			created = append(created, e)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to perform transaction: %w", err)
	}

	for _, e := range created {
		s.publish(ctx, event_bus.SubEventCreated, e)
	}
	return created, nil
}

func (s *Service) GetEvent(ctx context.Context, id int) (SubEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return SubEvent{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetEvent(ctx, userId, id)
}

func (s *Service) GetEvents(ctx context.Context, weddingId int) ([]SubEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetEvents(ctx, userId, weddingId)
}

// GetEventsWithStatus returns all sub-events of a wedding, each evaluated
// against the full sibling set.
func (s *Service) GetEventsWithStatus(ctx context.Context, weddingId int) ([]EventWithStatus, error) {
	events, err := s.GetEvents(ctx, weddingId)
	if err != nil {
		return nil, err
	}

	result := make([]EventWithStatus, 0, len(events))
	for _, e := range events {
		result = append(result, EventWithStatus{
			SubEvent:     e,
			StatusResult: Evaluate(e, events),
		})
	}
	return result, nil
}

func (s *Service) ModifyEvent(ctx context.Context, e SubEvent) (*SubEvent, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(e); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateEvent(ctx, userId, e); err != nil {
		return nil, err
	}

	s.publish(ctx, event_bus.SubEventUpdated, e)
	return &e, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	found, err := s.repo.GetEvent(ctx, userId, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteEvent(ctx, userId, id); err != nil {
		return err
	}

	s.publish(ctx, event_bus.SubEventDeleted, found)
	return nil
}

func validate(e SubEvent) error {
	if e.WeddingId == 0 {
		return fmt.Errorf("%w: wedding id is required", ErrEventDataInvalid)
	}
	if _, ok := typeLabels[e.Type]; !ok {
		return fmt.Errorf("%w: unknown event type %q", ErrEventDataInvalid, e.Type)
	}
	if !e.EndTime.After(e.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", ErrEventDataInvalid)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, eventType event_bus.EventType, e SubEvent) {
	if s.bus == nil {
		return
	}
	// Best effort: subscriber failures must not fail the write.
	_ = s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.SubEventChanged{
		ID:        e.Id,
		WeddingID: e.WeddingId,
		Title:     e.Title(),
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
	}))
}
