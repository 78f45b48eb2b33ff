package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrTaskDataInvalid = errors.New("task data is invalid")

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

type Service struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *Service {
	return &Service{repo: repo, bus: bus, clock: clock}
}

func (s *Service) AddTask(ctx context.Context, t Task) (*Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	t.Done = false
	t.CompletedAt = nil

	id, err := s.repo.StoreTask(ctx, userId, t)
	if err != nil {
		return nil, fmt.Errorf("failed to store task: %w", err)
	}
	t.Id = id
	return &t, nil
}

func (s *Service) GetTask(ctx context.Context, id int) (Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetTask(ctx, userId, id)
}

func (s *Service) GetTasks(ctx context.Context, weddingId int) ([]Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetTasks(ctx, userId, weddingId)
}

func (s *Service) ModifyTask(ctx context.Context, t Task) (*Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(t); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetTask(ctx, userId, t.Id)
	if err != nil {
		return nil, err
	}
	// Completion is toggled through ToggleComplete, not edits.
	t.Done = existing.Done
	t.CompletedAt = existing.CompletedAt

	if err := s.repo.UpdateTask(ctx, userId, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ToggleComplete flips the done flag. Completing a task records the time and
// announces it on the bus; un-completing clears the record silently.
func (s *Service) ToggleComplete(ctx context.Context, id int) (*Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	t, err := s.repo.GetTask(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	if t.Done {
		t.Done = false
		t.CompletedAt = nil
	} else {
		now := s.clock.Now()
		t.Done = true
		t.CompletedAt = &now
	}
	if err := s.repo.UpdateTask(ctx, userId, t); err != nil {
		return nil, err
	}

	if t.Done && s.bus != nil {
		// Best effort: subscriber failures must not fail the write.
		_ = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TaskCompleted, event_bus.TaskChanged{
			ID:        t.Id,
			WeddingID: t.WeddingId,
			Title:     t.Title,
			DueDate:   t.DueDate,
		}))
	}
	return &t, nil
}

func (s *Service) DeleteTask(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteTask(ctx, userId, id)
}

func validate(t Task) error {
	if t.WeddingId == 0 {
		return fmt.Errorf("%w: wedding id is required", ErrTaskDataInvalid)
	}
	if t.Title == "" {
		return fmt.Errorf("%w: title is required", ErrTaskDataInvalid)
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrTaskDataInvalid)
	}
	if !validPriorities[t.Priority] {
		return fmt.Errorf("%w: unknown priority %q", ErrTaskDataInvalid, t.Priority)
	}
	return nil
}
