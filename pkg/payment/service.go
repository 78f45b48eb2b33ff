package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/internal/event_bus"
	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrInstallmentDataInvalid = errors.New("installment data is invalid")

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusPaid:      true,
}

type Service struct {
	repo  Repository
	bus   *event_bus.EventBus
	clock utils.Clock
}

func NewService(repo Repository, bus *event_bus.EventBus, clock utils.Clock) *Service {
	return &Service{repo: repo, bus: bus, clock: clock}
}

func (s *Service) AddInstallment(ctx context.Context, i Installment) (*Installment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(i); err != nil {
		return nil, err
	}
	if i.Status == "" {
		i.Status = StatusPending
	}

	id, err := s.repo.StoreInstallment(ctx, userId, i)
	if err != nil {
		return nil, fmt.Errorf("failed to store installment: %w", err)
	}
	i.Id = id

	s.publishScheduled(ctx, i)
	return &i, nil
}

func (s *Service) GetInstallment(ctx context.Context, id int) (Installment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Installment{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetInstallment(ctx, userId, id)
}

func (s *Service) GetInstallments(ctx context.Context, weddingId int) ([]Installment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetInstallments(ctx, userId, weddingId)
}

func (s *Service) ModifyInstallment(ctx context.Context, i Installment) (*Installment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(i); err != nil {
		return nil, err
	}
	if i.Status == "" {
		i.Status = StatusPending
	}

	if err := s.repo.UpdateInstallment(ctx, userId, i); err != nil {
		return nil, err
	}
	return &i, nil
}

// MarkPaid transitions an installment to paid and records the payment time.
// Marking an already paid installment keeps the original paid time.
func (s *Service) MarkPaid(ctx context.Context, id int) (*Installment, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	i, err := s.repo.GetInstallment(ctx, userId, id)
	if err != nil {
		return nil, err
	}
	if i.Status == StatusPaid {
		return &i, nil
	}

	now := s.clock.Now()
	i.Status = StatusPaid
	i.PaidAt = &now
	if err := s.repo.UpdateInstallment(ctx, userId, i); err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Service) DeleteInstallment(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteInstallment(ctx, userId, id)
}

// GetDueInstallments returns the unpaid installments of a wedding whose due
// date falls within the next `days` days, soonest first.
func (s *Service) GetDueInstallments(ctx context.Context, weddingId int, days int) ([]Installment, error) {
	all, err := s.GetInstallments(ctx, weddingId)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	horizon := now.AddDate(0, 0, days)
	due := make([]Installment, 0, len(all))
	for _, i := range all {
		if i.Status == StatusPaid || i.DueDate == nil {
			continue
		}
		if i.DueDate.Before(horizon) {
			due = append(due, i)
		}
	}
	return due, nil
}

func validate(i Installment) error {
	if i.WeddingId == 0 {
		return fmt.Errorf("%w: wedding id is required", ErrInstallmentDataInvalid)
	}
	if i.VendorName == "" {
		return fmt.Errorf("%w: vendor name is required", ErrInstallmentDataInvalid)
	}
	if i.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInstallmentDataInvalid)
	}
	if i.Status != "" && !validStatuses[i.Status] {
		return fmt.Errorf("%w: unknown status %q", ErrInstallmentDataInvalid, i.Status)
	}
	return nil
}

func (s *Service) publishScheduled(ctx context.Context, i Installment) {
	if s.bus == nil || i.DueDate == nil {
		return
	}
	// Best effort: subscriber failures must not fail the write.
	_ = s.bus.Publish(event_bus.NewEvent(ctx, event_bus.InstallmentScheduled, event_bus.InstallmentChanged{
		ID:         i.Id,
		WeddingID:  i.WeddingId,
		VendorName: i.VendorName,
		Amount:     i.Amount,
		DueDate:    *i.DueDate,
	}))
}
