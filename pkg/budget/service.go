package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/Bhavesh-Anc/eventkaro/pkg/wedding"
)

var ErrCategoryDataInvalid = errors.New("budget category data is invalid")

type Service struct {
	repo     Repository
	weddings *wedding.Service
}

func NewService(repo Repository, weddings *wedding.Service) *Service {
	return &Service{repo: repo, weddings: weddings}
}

func (s *Service) AddCategory(ctx context.Context, c Category) (*Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(c); err != nil {
		return nil, err
	}

	id, err := s.repo.StoreCategory(ctx, userId, c)
	if err != nil {
		return nil, fmt.Errorf("failed to store budget category: %w", err)
	}
	c.Id = id
	return &c, nil
}

func (s *Service) GetCategories(ctx context.Context, weddingId int) ([]Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetCategories(ctx, userId, weddingId)
}

func (s *Service) ModifyCategory(ctx context.Context, c Category) (*Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCategory(ctx, userId, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteCategory(ctx, userId, id)
}

// GetSummary rolls all categories of a wedding up against its total budget.
func (s *Service) GetSummary(ctx context.Context, weddingId int) (Summary, error) {
	w, err := s.weddings.GetWedding(ctx, weddingId)
	if err != nil {
		return Summary{}, err
	}
	categories, err := s.GetCategories(ctx, weddingId)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		TotalBudget: w.TotalBudget,
		Categories:  categories,
	}
	for _, c := range categories {
		summary.TotalAllocated += c.Allocated
		summary.TotalCommitted += c.Committed
		summary.TotalSpent += c.Spent
	}
	summary.Unallocated = summary.TotalBudget - summary.TotalAllocated
	return summary, nil
}

func validate(c Category) error {
	if c.WeddingId == 0 {
		return fmt.Errorf("%w: wedding id is required", ErrCategoryDataInvalid)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrCategoryDataInvalid)
	}
	if c.Allocated < 0 || c.Committed < 0 || c.Spent < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrCategoryDataInvalid)
	}
	return nil
}
