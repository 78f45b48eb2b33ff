package wedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrWeddingDataInvalid = errors.New("wedding data is invalid")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateWedding(ctx context.Context, w Wedding) (*Wedding, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if w.BrideName == "" && w.GroomName == "" {
		return nil, fmt.Errorf("%w: at least one partner name is required", ErrWeddingDataInvalid)
	}
	if w.WeddingDate.IsZero() {
		return nil, fmt.Errorf("%w: wedding date is required", ErrWeddingDataInvalid)
	}

	id, err := s.repo.StoreWedding(ctx, userId, w)
	if err != nil {
		return nil, fmt.Errorf("failed to store wedding: %w", err)
	}
	w.Id = id
	return &w, nil
}

func (s *Service) GetWedding(ctx context.Context, id int) (Wedding, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Wedding{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetWedding(ctx, userId, id)
}

func (s *Service) GetWeddings(ctx context.Context) ([]Wedding, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetWeddings(ctx, userId)
}

func (s *Service) UpdateWedding(ctx context.Context, w Wedding) (*Wedding, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.UpdateWedding(ctx, userId, w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Service) DeleteWedding(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteWedding(ctx, userId, id)
}
