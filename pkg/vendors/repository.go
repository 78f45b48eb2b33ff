package vendors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var (
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// VendorFilter narrows marketplace searches; zero values mean "any".
type VendorFilter struct {
	Category Category
	City     string
}

type Repository interface {
	StoreVendor(ctx context.Context, v Vendor) (int, error)
	GetVendor(ctx context.Context, id int) (Vendor, error)
	FindVendors(ctx context.Context, filter VendorFilter) ([]Vendor, error)
	UpdateVendor(ctx context.Context, v Vendor) error
	DeleteVendor(ctx context.Context, id int) error

	StoreBooking(ctx context.Context, userId int, b Booking) (int, error)
	GetBooking(ctx context.Context, userId int, id int) (Booking, error)
	GetBookings(ctx context.Context, userId int, weddingId int) ([]Booking, error)
	UpdateBooking(ctx context.Context, userId int, b Booking) error
	DeleteBooking(ctx context.Context, userId int, id int) error

	StoreReview(ctx context.Context, userId int, rev Review) (int, error)
	GetReviews(ctx context.Context, vendorId int) ([]Review, error)
	UpdateVendorRating(ctx context.Context, vendorId int, rating float64, reviewCount int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreVendor(ctx context.Context, v Vendor) (int, error) {
	query := `INSERT INTO vendor (name, category, city, phone, email, base_price, rating, review_count)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		v.Name, string(v.Category), v.City, v.Phone, v.Email, v.BasePrice, v.Rating, v.ReviewCount).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetVendor(ctx context.Context, id int) (Vendor, error) {
	query := `SELECT id, name, category, city, phone, email, base_price, rating, review_count FROM vendor WHERE id = $1`
	var v Vendor
	var category string
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&v.Id, &v.Name, &category, &v.City, &v.Phone, &v.Email, &v.BasePrice, &v.Rating, &v.ReviewCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Vendor{}, ErrVendorNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query vendor: %w", err)
		log.Error(err)
		return Vendor{}, err
	}
	v.Category = Category(category)
	return v, nil
}

func (r *RepositoryImpl) FindVendors(ctx context.Context, filter VendorFilter) ([]Vendor, error) {
	query := `SELECT id, name, category, city, phone, email, base_price, rating, review_count FROM vendor WHERE 1=1`
	args := []interface{}{}
	if filter.Category != "" {
		args = append(args, string(filter.Category))
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(` AND LOWER(city) = LOWER($%d)`, len(args))
	}
	query += ` ORDER BY rating DESC, name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query vendors: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	result := make([]Vendor, 0, 20)
	for rows.Next() {
		var v Vendor
		var category string
		if err := rows.Scan(&v.Id, &v.Name, &category, &v.City, &v.Phone, &v.Email, &v.BasePrice, &v.Rating, &v.ReviewCount); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		v.Category = Category(category)
		result = append(result, v)
	}
	return result, rows.Err()
}

func (r *RepositoryImpl) UpdateVendor(ctx context.Context, v Vendor) error {
	query := `UPDATE vendor SET name = $1, category = $2, city = $3, phone = $4, email = $5, base_price = $6 WHERE id = $7`
	result, err := r.db.ExecContext(ctx, query, v.Name, string(v.Category), v.City, v.Phone, v.Email, v.BasePrice, v.Id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireRow(result, ErrVendorNotFound)
}

func (r *RepositoryImpl) DeleteVendor(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vendor WHERE id = $1`, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireRow(result, ErrVendorNotFound)
}

func (r *RepositoryImpl) StoreBooking(ctx context.Context, userId int, b Booking) (int, error) {
	query := `INSERT INTO vendor_booking (wedding_id, vendor_id, status, amount, notes, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query, b.WeddingId, b.VendorId, string(b.Status), b.Amount, b.Notes, userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

const bookingColumns = `b.id, b.wedding_id, b.vendor_id, v.name, v.category, b.status, b.amount, b.notes`

func (r *RepositoryImpl) GetBooking(ctx context.Context, userId int, id int) (Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM vendor_booking b
				JOIN vendor v ON v.id = b.vendor_id
				WHERE b.id = $1 AND b.user_id = $2`
	var b Booking
	var status, category string
	err := r.db.QueryRowContext(ctx, query, id, userId).
		Scan(&b.Id, &b.WeddingId, &b.VendorId, &b.VendorName, &category, &status, &b.Amount, &b.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query booking: %w", err)
		log.Error(err)
		return Booking{}, err
	}
	b.Status = BookingStatus(status)
	b.VendorCategory = Category(category)
	return b, nil
}

func (r *RepositoryImpl) GetBookings(ctx context.Context, userId int, weddingId int) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM vendor_booking b
				JOIN vendor v ON v.id = b.vendor_id
				WHERE b.wedding_id = $1 AND b.user_id = $2
				ORDER BY b.id`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query bookings: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	result := make([]Booking, 0, 10)
	for rows.Next() {
		var b Booking
		var status, category string
		if err := rows.Scan(&b.Id, &b.WeddingId, &b.VendorId, &b.VendorName, &category, &status, &b.Amount, &b.Notes); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		b.Status = BookingStatus(status)
		b.VendorCategory = Category(category)
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *RepositoryImpl) UpdateBooking(ctx context.Context, userId int, b Booking) error {
	query := `UPDATE vendor_booking SET status = $1, amount = $2, notes = $3 WHERE id = $4 AND user_id = $5`
	result, err := r.db.ExecContext(ctx, query, string(b.Status), b.Amount, b.Notes, b.Id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireRow(result, ErrBookingNotFound)
}

func (r *RepositoryImpl) DeleteBooking(ctx context.Context, userId int, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vendor_booking WHERE id = $1 AND user_id = $2`, id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireRow(result, ErrBookingNotFound)
}

func (r *RepositoryImpl) StoreReview(ctx context.Context, userId int, rev Review) (int, error) {
	query := `INSERT INTO vendor_review (vendor_id, rating, comment, created_at, user_id)
				VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query, rev.VendorId, rev.Rating, rev.Comment, rev.CreatedAt.UnixMilli(), userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetReviews(ctx context.Context, vendorId int) ([]Review, error) {
	query := `SELECT id, vendor_id, rating, comment, created_at FROM vendor_review WHERE vendor_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, vendorId)
	if err != nil {
		err := fmt.Errorf("could not query reviews: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	result := make([]Review, 0, 10)
	for rows.Next() {
		var rev Review
		var createdMillis int64
		if err := rows.Scan(&rev.Id, &rev.VendorId, &rev.Rating, &rev.Comment, &createdMillis); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		rev.CreatedAt = time.UnixMilli(createdMillis)
		result = append(result, rev)
	}
	return result, rows.Err()
}

func (r *RepositoryImpl) UpdateVendorRating(ctx context.Context, vendorId int, rating float64, reviewCount int) error {
	query := `UPDATE vendor SET rating = $1, review_count = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, rating, reviewCount, vendorId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return requireRow(result, ErrVendorNotFound)
}

func requireRow(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
