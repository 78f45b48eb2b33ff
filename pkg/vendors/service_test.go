package vendors

import (
	"context"
	"testing"
	"time"

	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServiceTest(t *testing.T) (*Service, context.Context) {
	t.Helper()
	clock := &utils.MockClock{FixedNow: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	service := NewService(NewRepositoryStub(), clock)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Uid: "u-1"})
	return service, ctx
}

func TestService_AddVendor_Validation(t *testing.T) {
	s, ctx := setupServiceTest(t)

	_, err := s.AddVendor(ctx, Vendor{Category: CategoryCatering})
	assert.ErrorIs(t, err, ErrVendorDataInvalid)

	_, err = s.AddVendor(ctx, Vendor{Name: "Royal Caterers", Category: "florist"})
	assert.ErrorIs(t, err, ErrVendorDataInvalid)
}

func TestService_AddVendor_IgnoresClientRating(t *testing.T) {
	s, ctx := setupServiceTest(t)

	created, err := s.AddVendor(ctx, Vendor{
		Name:     "Royal Caterers",
		Category: CategoryCatering,
		Rating:   5,
	})
	require.NoError(t, err)
	assert.Zero(t, created.Rating)
	assert.Zero(t, created.ReviewCount)
}

func TestService_FindVendors_FilterByCategory(t *testing.T) {
	s, ctx := setupServiceTest(t)

	_, err := s.AddVendor(ctx, Vendor{Name: "Royal Caterers", Category: CategoryCatering})
	require.NoError(t, err)
	_, err = s.AddVendor(ctx, Vendor{Name: "Dhol Beats", Category: CategoryMusic})
	require.NoError(t, err)

	found, err := s.FindVendors(ctx, VendorFilter{Category: CategoryMusic})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Dhol Beats", found[0].Name)

	_, err = s.FindVendors(ctx, VendorFilter{Category: "florist"})
	assert.ErrorIs(t, err, ErrVendorDataInvalid)
}

func TestService_AddBooking_DenormalizesVendor(t *testing.T) {
	s, ctx := setupServiceTest(t)

	vendor, err := s.AddVendor(ctx, Vendor{Name: "Royal Caterers", Category: CategoryCatering})
	require.NoError(t, err)

	booking, err := s.AddBooking(ctx, Booking{WeddingId: 1, VendorId: vendor.Id, Amount: 250000_00})
	require.NoError(t, err)
	assert.Equal(t, "Royal Caterers", booking.VendorName)
	assert.Equal(t, CategoryCatering, booking.VendorCategory)
	assert.Equal(t, BookingInquiry, booking.Status)
}

func TestService_AddBooking_UnknownVendor(t *testing.T) {
	s, ctx := setupServiceTest(t)

	_, err := s.AddBooking(ctx, Booking{WeddingId: 1, VendorId: 99})
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestService_Bookings_ScopedToUser(t *testing.T) {
	s, ctx := setupServiceTest(t)

	vendor, err := s.AddVendor(ctx, Vendor{Name: "Royal Caterers", Category: CategoryCatering})
	require.NoError(t, err)
	booking, err := s.AddBooking(ctx, Booking{WeddingId: 1, VendorId: vendor.Id})
	require.NoError(t, err)

	otherCtx := user.WithUser(context.Background(), user.User{Id: 2, Uid: "u-2"})
	found, err := s.GetBookings(otherCtx, 1)
	require.NoError(t, err)
	assert.Empty(t, found)

	err = s.DeleteBooking(otherCtx, booking.Id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_AddReview_UpdatesAggregateRating(t *testing.T) {
	s, ctx := setupServiceTest(t)

	vendor, err := s.AddVendor(ctx, Vendor{Name: "Royal Caterers", Category: CategoryCatering})
	require.NoError(t, err)

	_, err = s.AddReview(ctx, Review{VendorId: vendor.Id, Rating: 5})
	require.NoError(t, err)
	_, err = s.AddReview(ctx, Review{VendorId: vendor.Id, Rating: 4, Comment: "Great food"})
	require.NoError(t, err)

	updated, err := s.GetVendor(ctx, vendor.Id)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, updated.Rating, 0.001)
	assert.Equal(t, 2, updated.ReviewCount)
}

func TestService_AddReview_Validation(t *testing.T) {
	s, ctx := setupServiceTest(t)

	vendor, err := s.AddVendor(ctx, Vendor{Name: "Royal Caterers", Category: CategoryCatering})
	require.NoError(t, err)

	_, err = s.AddReview(ctx, Review{VendorId: vendor.Id, Rating: 0})
	assert.ErrorIs(t, err, ErrVendorDataInvalid)
	_, err = s.AddReview(ctx, Review{VendorId: vendor.Id, Rating: 6})
	assert.ErrorIs(t, err, ErrVendorDataInvalid)
	_, err = s.AddReview(ctx, Review{VendorId: 99, Rating: 3})
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestService_AddReview_RequiresUser(t *testing.T) {
	s, _ := setupServiceTest(t)

	_, err := s.AddReview(context.Background(), Review{VendorId: 1, Rating: 3})
	assert.ErrorIs(t, err, user.ErrNoUser)
}
