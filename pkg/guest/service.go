package guest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrGuestDataInvalid = errors.New("guest data is invalid")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddGuest(ctx context.Context, g Guest) (*Guest, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if g.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrGuestDataInvalid)
	}
	if g.RSVP == "" {
		g.RSVP = RSVPPending
	}
	if g.Side == "" {
		g.Side = SideBoth
	}
	if g.Phone != "" {
		normalized, err := NormalizePhone(g.Phone, currentUser.Settings.PhoneRegion)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid phone number %q", ErrGuestDataInvalid, g.Phone)
		}
		g.Phone = normalized
	}

	id, err := s.repo.StoreGuest(ctx, currentUser.Id, g)
	if err != nil {
		return nil, fmt.Errorf("failed to store guest: %w", err)
	}
	g.Id = id
	return &g, nil
}

func (s *Service) GetGuests(ctx context.Context, weddingId int) ([]Guest, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetGuests(ctx, userId, weddingId)
}

func (s *Service) ModifyGuest(ctx context.Context, g Guest) (*Guest, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if g.Phone != "" {
		normalized, err := NormalizePhone(g.Phone, currentUser.Settings.PhoneRegion)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid phone number %q", ErrGuestDataInvalid, g.Phone)
		}
		g.Phone = normalized
	}
	if err := s.repo.UpdateGuest(ctx, currentUser.Id, g); err != nil {
		return nil, err
	}
	return &g, nil
}

// SetRSVP updates only the attendance answer of one guest.
func (s *Service) SetRSVP(ctx context.Context, guestId int, rsvp RSVPStatus) (*Guest, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if rsvp != RSVPPending && rsvp != RSVPAccepted && rsvp != RSVPDeclined {
		return nil, fmt.Errorf("%w: unknown rsvp status %q", ErrGuestDataInvalid, rsvp)
	}

	g, err := s.repo.GetGuest(ctx, userId, guestId)
	if err != nil {
		return nil, err
	}
	g.RSVP = rsvp
	if err := s.repo.UpdateGuest(ctx, userId, g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Service) DeleteGuest(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteGuest(ctx, userId, id)
}

// GetSummary computes guest counts for one wedding.
func (s *Service) GetSummary(ctx context.Context, weddingId int) (Summary, error) {
	guests, err := s.GetGuests(ctx, weddingId)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, g := range guests {
		summary.Total++
		switch g.RSVP {
		case RSVPAccepted:
			summary.Accepted++
			summary.Headcount += 1 + g.PlusOnes
		case RSVPDeclined:
			summary.Declined++
		default:
			summary.Pending++
		}
	}
	return summary, nil
}
