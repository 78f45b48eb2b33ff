package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrInstallmentNotFound = errors.New("installment not found")

type Repository interface {
	StoreInstallment(ctx context.Context, userId int, i Installment) (int, error)
	GetInstallment(ctx context.Context, userId int, id int) (Installment, error)
	GetInstallments(ctx context.Context, userId int, weddingId int) ([]Installment, error)
	UpdateInstallment(ctx context.Context, userId int, i Installment) error
	DeleteInstallment(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const installmentColumns = `id, wedding_id, booking_id, vendor_name, vendor_category,
				amount, due_date, status, paid_at, notes`

func (r *RepositoryImpl) StoreInstallment(ctx context.Context, userId int, i Installment) (int, error) {
	query := `INSERT INTO payment_installment
				(wedding_id, booking_id, vendor_name, vendor_category, amount, due_date, status, paid_at, notes, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		i.WeddingId, i.BookingId, i.VendorName, i.VendorCategory,
		i.Amount, nullableMillis(i.DueDate), i.Status, nullableMillis(i.PaidAt), i.Notes, userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetInstallment(ctx context.Context, userId int, id int) (Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM payment_installment WHERE id = $1 AND user_id = $2`
	i, err := scanInstallment(r.db.QueryRowContext(ctx, query, id, userId))
	if errors.Is(err, sql.ErrNoRows) {
		return Installment{}, ErrInstallmentNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query installment: %w", err)
		log.Error(err)
		return Installment{}, err
	}
	return i, nil
}

func (r *RepositoryImpl) GetInstallments(ctx context.Context, userId int, weddingId int) ([]Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM payment_installment
				WHERE wedding_id = $1 AND user_id = $2
				ORDER BY due_date IS NULL, due_date, id`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query installments: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	installments := make([]Installment, 0, 8)
	for rows.Next() {
		i, err := scanInstallment(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		installments = append(installments, i)
	}
	return installments, rows.Err()
}

func (r *RepositoryImpl) UpdateInstallment(ctx context.Context, userId int, i Installment) error {
	query := `UPDATE payment_installment
				SET booking_id = $1, vendor_name = $2, vendor_category = $3, amount = $4,
					due_date = $5, status = $6, paid_at = $7, notes = $8
				WHERE id = $9 AND user_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		i.BookingId, i.VendorName, i.VendorCategory, i.Amount,
		nullableMillis(i.DueDate), i.Status, nullableMillis(i.PaidAt), i.Notes, i.Id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrInstallmentNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteInstallment(ctx context.Context, userId int, id int) error {
	query := `DELETE FROM payment_installment WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrInstallmentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInstallment(row rowScanner) (Installment, error) {
	var i Installment
	var due, paid sql.NullInt64
	err := row.Scan(&i.Id, &i.WeddingId, &i.BookingId, &i.VendorName, &i.VendorCategory,
		&i.Amount, &due, &i.Status, &paid, &i.Notes)
	if err != nil {
		return Installment{}, err
	}
	i.DueDate = millisToTime(due)
	i.PaidAt = millisToTime(paid)
	return i, nil
}

func nullableMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func millisToTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64)
	return &t
}
