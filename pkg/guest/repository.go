package guest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrGuestNotFound = errors.New("guest not found")

type Repository interface {
	StoreGuest(ctx context.Context, userId int, g Guest) (int, error)
	GetGuest(ctx context.Context, userId int, id int) (Guest, error)
	GetGuests(ctx context.Context, userId int, weddingId int) ([]Guest, error)
	UpdateGuest(ctx context.Context, userId int, g Guest) error
	DeleteGuest(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreGuest(ctx context.Context, userId int, g Guest) (int, error) {
	query := `INSERT INTO guest (wedding_id, name, phone, email, side, group_tag, rsvp, plus_ones, dietary_notes, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		g.WeddingId, g.Name, g.Phone, g.Email, string(g.Side), g.Group, string(g.RSVP), g.PlusOnes, g.DietaryNotes, userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

const guestColumns = `id, wedding_id, name, phone, email, side, group_tag, rsvp, plus_ones, dietary_notes`

func (r *RepositoryImpl) GetGuest(ctx context.Context, userId int, id int) (Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guest WHERE id = $1 AND user_id = $2`
	var g Guest
	var side, rsvp string
	err := r.db.QueryRowContext(ctx, query, id, userId).
		Scan(&g.Id, &g.WeddingId, &g.Name, &g.Phone, &g.Email, &side, &g.Group, &rsvp, &g.PlusOnes, &g.DietaryNotes)
	if errors.Is(err, sql.ErrNoRows) {
		return Guest{}, ErrGuestNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query guest: %w", err)
		log.Error(err)
		return Guest{}, err
	}
	g.Side = Side(side)
	g.RSVP = RSVPStatus(rsvp)
	return g, nil
}

func (r *RepositoryImpl) GetGuests(ctx context.Context, userId int, weddingId int) ([]Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guest WHERE wedding_id = $1 AND user_id = $2 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query guests: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	guests := make([]Guest, 0, 50)
	for rows.Next() {
		var g Guest
		var side, rsvp string
		if err := rows.Scan(&g.Id, &g.WeddingId, &g.Name, &g.Phone, &g.Email, &side, &g.Group, &rsvp, &g.PlusOnes, &g.DietaryNotes); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		g.Side = Side(side)
		g.RSVP = RSVPStatus(rsvp)
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *RepositoryImpl) UpdateGuest(ctx context.Context, userId int, g Guest) error {
	query := `UPDATE guest SET name = $1, phone = $2, email = $3, side = $4, group_tag = $5, rsvp = $6, plus_ones = $7, dietary_notes = $8
				WHERE id = $9 AND user_id = $10`
	result, err := r.db.ExecContext(ctx, query,
		g.Name, g.Phone, g.Email, string(g.Side), g.Group, string(g.RSVP), g.PlusOnes, g.DietaryNotes, g.Id, userId)
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
		return ErrGuestNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteGuest(ctx context.Context, userId int, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guest WHERE id = $1 AND user_id = $2`, id, userId)
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
		return ErrGuestNotFound
	}
	return nil
}
