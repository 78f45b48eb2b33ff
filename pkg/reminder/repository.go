package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrReminderNotFound = errors.New("reminder not found")

type Repository interface {
	StoreReminder(ctx context.Context, userId int, r Reminder) (int, error)
	GetReminders(ctx context.Context, userId int, weddingId int) ([]Reminder, error)
	DeleteReminder(ctx context.Context, userId int, id int) error

	// PendingReminders returns unsent reminders due at or before the given
	// time, across all users. The dispatch loop runs system-wide.
	PendingReminders(ctx context.Context, before time.Time) ([]Reminder, error)
	MarkSent(ctx context.Context, id int, at time.Time) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreReminder(ctx context.Context, userId int, rem Reminder) (int, error) {
	query := `INSERT INTO reminder (wedding_id, title, message, kind, ref_id, channel, remind_at, sent, sent_at, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		rem.WeddingId, rem.Title, rem.Message, string(rem.Kind), rem.RefId, string(rem.Channel),
		rem.RemindAt.UnixMilli(), rem.Sent, nullableMillis(rem.SentAt), userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetReminders(ctx context.Context, userId int, weddingId int) ([]Reminder, error) {
	query := `SELECT ` + reminderColumns + `
				FROM reminder WHERE wedding_id = $1 AND user_id = $2 ORDER BY remind_at, id`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query reminders: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *RepositoryImpl) DeleteReminder(ctx context.Context, userId int, id int) error {
	query := `DELETE FROM reminder WHERE id = $1 AND user_id = $2`
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
		return ErrReminderNotFound
	}
	return nil
}

func (r *RepositoryImpl) PendingReminders(ctx context.Context, before time.Time) ([]Reminder, error) {
	query := `SELECT ` + reminderColumns + `
				FROM reminder WHERE sent = FALSE AND remind_at <= $1 ORDER BY remind_at, id`
	rows, err := r.db.QueryContext(ctx, query, before.UnixMilli())
	if err != nil {
		err := fmt.Errorf("could not query pending reminders: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *RepositoryImpl) MarkSent(ctx context.Context, id int, at time.Time) error {
	query := `UPDATE reminder SET sent = TRUE, sent_at = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, at.UnixMilli(), id)
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
		return ErrReminderNotFound
	}
	return nil
}

const reminderColumns = `id, wedding_id, title, message, kind, ref_id, channel, remind_at, sent, sent_at`

func scanReminders(rows *sql.Rows) ([]Reminder, error) {
	reminders := make([]Reminder, 0, 8)
	for rows.Next() {
		var rem Reminder
		var kind, channel string
		var remindMillis int64
		var sentAt sql.NullInt64
		if err := rows.Scan(&rem.Id, &rem.WeddingId, &rem.Title, &rem.Message, &kind, &rem.RefId, &channel,
			&remindMillis, &rem.Sent, &sentAt); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		rem.Kind = EntityKind(kind)
		rem.Channel = Channel(channel)
		rem.RemindAt = time.UnixMilli(remindMillis)
		if sentAt.Valid {
			at := time.UnixMilli(sentAt.Int64)
			rem.SentAt = &at
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func nullableMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
