package vendors

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrVendorDataInvalid = errors.New("vendor data is invalid")

var validCategories = map[Category]bool{
	CategoryVenue:       true,
	CategoryCatering:    true,
	CategoryPhotography: true,
	CategoryDecor:       true,
	CategoryMusic:       true,
	CategoryMehendi:     true,
	CategoryTransport:   true,
	CategoryPriest:      true,
	CategoryOther:       true,
}

type Service struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

func (s *Service) AddVendor(ctx context.Context, v Vendor) (*Vendor, error) {
	if v.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrVendorDataInvalid)
	}
	if !validCategories[v.Category] {
		return nil, fmt.Errorf("%w: unknown category %q", ErrVendorDataInvalid, v.Category)
	}

	v.Rating = 0
	v.ReviewCount = 0
	id, err := s.repo.StoreVendor(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("failed to store vendor: %w", err)
	}
	v.Id = id
	return &v, nil
}

func (s *Service) GetVendor(ctx context.Context, id int) (Vendor, error) {
	return s.repo.GetVendor(ctx, id)
}

func (s *Service) FindVendors(ctx context.Context, filter VendorFilter) ([]Vendor, error) {
	if filter.Category != "" && !validCategories[filter.Category] {
		return nil, fmt.Errorf("%w: unknown category %q", ErrVendorDataInvalid, filter.Category)
	}
	return s.repo.FindVendors(ctx, filter)
}

func (s *Service) ModifyVendor(ctx context.Context, v Vendor) (*Vendor, error) {
	if !validCategories[v.Category] {
		return nil, fmt.Errorf("%w: unknown category %q", ErrVendorDataInvalid, v.Category)
	}
	if err := s.repo.UpdateVendor(ctx, v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) DeleteVendor(ctx context.Context, id int) error {
	return s.repo.DeleteVendor(ctx, id)
}

func (s *Service) AddBooking(ctx context.Context, b Booking) (*Booking, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	// The vendor must exist; its name/category are denormalized onto the booking.
	vendor, err := s.repo.GetVendor(ctx, b.VendorId)
	if err != nil {
		return nil, err
	}
	if b.Status == "" {
		b.Status = BookingInquiry
	}

	id, err := s.repo.StoreBooking(ctx, userId, b)
	if err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}
	b.Id = id
	b.VendorName = vendor.Name
	b.VendorCategory = vendor.Category
	return &b, nil
}

func (s *Service) GetBookings(ctx context.Context, weddingId int) ([]Booking, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetBookings(ctx, userId, weddingId)
}

func (s *Service) ModifyBooking(ctx context.Context, b Booking) (*Booking, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.UpdateBooking(ctx, userId, b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeleteBooking(ctx, userId, id)
}

// AddReview stores a review and refreshes the vendor's aggregate rating.
func (s *Service) AddReview(ctx context.Context, rev Review) (*Review, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if rev.Rating < 1 || rev.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrVendorDataInvalid)
	}
	if _, err := s.repo.GetVendor(ctx, rev.VendorId); err != nil {
		return nil, err
	}

	rev.CreatedAt = s.clock.Now()
	id, err := s.repo.StoreReview(ctx, userId, rev)
	if err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	rev.Id = id

	reviews, err := s.repo.GetReviews(ctx, rev.VendorId)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, existing := range reviews {
		total += existing.Rating
	}
	rating := float64(total) / float64(len(reviews))
	if err := s.repo.UpdateVendorRating(ctx, rev.VendorId, rating, len(reviews)); err != nil {
		return nil, err
	}

	return &rev, nil
}

func (s *Service) GetReviews(ctx context.Context, vendorId int) ([]Review, error) {
	return s.repo.GetReviews(ctx, vendorId)
}
