package vendors

import (
	"context"
	"sort"
	"strings"
)

type RepositoryStub struct {
	vendors      map[int]Vendor
	bookings     map[int]Booking
	bookingUsers map[int]int
	reviews      map[int]Review
	nextVendorId int
	nextBooking  int
	nextReview   int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		vendors:      make(map[int]Vendor),
		bookings:     make(map[int]Booking),
		bookingUsers: make(map[int]int),
		reviews:      make(map[int]Review),
		nextVendorId: 1,
		nextBooking:  1,
		nextReview:   1,
	}
}

func (r *RepositoryStub) StoreVendor(ctx context.Context, v Vendor) (int, error) {
	v.Id = r.nextVendorId
	r.nextVendorId++
	r.vendors[v.Id] = v
	return v.Id, nil
}

func (r *RepositoryStub) GetVendor(ctx context.Context, id int) (Vendor, error) {
	v, ok := r.vendors[id]
	if !ok {
		return Vendor{}, ErrVendorNotFound
	}
	return v, nil
}

func (r *RepositoryStub) FindVendors(ctx context.Context, filter VendorFilter) ([]Vendor, error) {
	var found []Vendor
	for _, v := range r.vendors {
		if filter.Category != "" && v.Category != filter.Category {
			continue
		}
		if filter.City != "" && !strings.EqualFold(v.City, filter.City) {
			continue
		}
		found = append(found, v)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Id < found[j].Id })
	return found, nil
}

func (r *RepositoryStub) UpdateVendor(ctx context.Context, v Vendor) error {
	existing, ok := r.vendors[v.Id]
	if !ok {
		return ErrVendorNotFound
	}
	v.Rating = existing.Rating
	v.ReviewCount = existing.ReviewCount
	r.vendors[v.Id] = v
	return nil
}

func (r *RepositoryStub) DeleteVendor(ctx context.Context, id int) error {
	if _, ok := r.vendors[id]; !ok {
		return ErrVendorNotFound
	}
	delete(r.vendors, id)
	return nil
}

func (r *RepositoryStub) StoreBooking(ctx context.Context, userId int, b Booking) (int, error) {
	b.Id = r.nextBooking
	r.nextBooking++
	r.bookings[b.Id] = b
	r.bookingUsers[b.Id] = userId
	return b.Id, nil
}

func (r *RepositoryStub) GetBooking(ctx context.Context, userId int, id int) (Booking, error) {
	b, ok := r.bookings[id]
	if !ok || r.bookingUsers[id] != userId {
		return Booking{}, ErrBookingNotFound
	}
	r.denormalize(&b)
	return b, nil
}

func (r *RepositoryStub) GetBookings(ctx context.Context, userId int, weddingId int) ([]Booking, error) {
	var found []Booking
	for id, b := range r.bookings {
		if r.bookingUsers[id] != userId || b.WeddingId != weddingId {
			continue
		}
		r.denormalize(&b)
		found = append(found, b)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Id < found[j].Id })
	return found, nil
}

func (r *RepositoryStub) UpdateBooking(ctx context.Context, userId int, b Booking) error {
	if _, ok := r.bookings[b.Id]; !ok || r.bookingUsers[b.Id] != userId {
		return ErrBookingNotFound
	}
	r.bookings[b.Id] = b
	return nil
}

func (r *RepositoryStub) DeleteBooking(ctx context.Context, userId int, id int) error {
	if _, ok := r.bookings[id]; !ok || r.bookingUsers[id] != userId {
		return ErrBookingNotFound
	}
	delete(r.bookings, id)
	delete(r.bookingUsers, id)
	return nil
}

func (r *RepositoryStub) StoreReview(ctx context.Context, userId int, rev Review) (int, error) {
	rev.Id = r.nextReview
	r.nextReview++
	r.reviews[rev.Id] = rev
	return rev.Id, nil
}

func (r *RepositoryStub) GetReviews(ctx context.Context, vendorId int) ([]Review, error) {
	var found []Review
	for _, rev := range r.reviews {
		if rev.VendorId == vendorId {
			found = append(found, rev)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Id < found[j].Id })
	return found, nil
}

func (r *RepositoryStub) UpdateVendorRating(ctx context.Context, vendorId int, rating float64, reviewCount int) error {
	v, ok := r.vendors[vendorId]
	if !ok {
		return ErrVendorNotFound
	}
	v.Rating = rating
	v.ReviewCount = reviewCount
	r.vendors[vendorId] = v
	return nil
}

func (r *RepositoryStub) denormalize(b *Booking) {
	if v, ok := r.vendors[b.VendorId]; ok {
		b.VendorName = v.Name
		b.VendorCategory = v.Category
	}
}
