package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrEventNotFound = errors.New("sub-event not found")

type Repository interface {
	WithTransaction(ctx context.Context, fn func(repo Repository) error) error
	StoreEvent(ctx context.Context, userId int, e SubEvent) (int, error)
	GetEvent(ctx context.Context, userId int, id int) (SubEvent, error)
	GetEvents(ctx context.Context, userId int, weddingId int) ([]SubEvent, error)
	UpdateEvent(ctx context.Context, userId int, e SubEvent) error
	DeleteEvent(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db, tx: nil}
}

// getQueryer returns the appropriate database interface for queries (either tx or db)
func (r *RepositoryImpl) getQueryer() interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *RepositoryImpl) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// Rollback is a no-op if the transaction was already committed
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	txRepo := &RepositoryImpl{db: r.db, tx: tx}

	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *RepositoryImpl) StoreEvent(ctx context.Context, userId int, e SubEvent) (int, error) {
	query := `INSERT INTO sub_event (
				wedding_id, type, custom_name, start_time, end_time,
				venue_name, venue_address, venue_city, venue_state, venue_type,
				expected_guests, guest_group, dress_code, color_theme,
				transport_required, transport_assigned, description,
				budget_allocated, budget_committed, budget_spent, user_id
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
			RETURNING id`

	var allocated, committed, spent sql.NullInt64
	if e.Budget != nil {
		allocated = sql.NullInt64{Int64: e.Budget.Allocated, Valid: true}
		committed = sql.NullInt64{Int64: e.Budget.Committed, Valid: true}
		spent = sql.NullInt64{Int64: e.Budget.Spent, Valid: true}
	}

	var id int
	err := r.getQueryer().QueryRowContext(ctx, query,
		e.WeddingId, string(e.Type), e.CustomName, e.StartTime.UnixMilli(), e.EndTime.UnixMilli(),
		e.Venue.Name, e.Venue.Address, e.Venue.City, e.Venue.State, string(e.Venue.Type),
		e.ExpectedGuests, e.GuestGroup, e.DressCode, e.ColorTheme,
		e.TransportRequired, e.TransportAssigned, e.Description,
		allocated, committed, spent, userId,
	).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}

	if err := r.storeAssignments(ctx, id, e.Vendors); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) storeAssignments(ctx context.Context, eventId int, assignments []VendorAssignment) error {
	query := `INSERT INTO event_vendor (event_id, vendor_id, status, arrival_time, scope) VALUES ($1, $2, $3, $4, $5)`
	for _, a := range assignments {
		var arrival sql.NullInt64
		if a.ArrivalTime != nil {
			arrival = sql.NullInt64{Int64: a.ArrivalTime.UnixMilli(), Valid: true}
		}
		status := a.Status
		if status == "" {
			status = VendorPending
		}
		if _, err := r.getQueryer().ExecContext(ctx, query, eventId, a.VendorId, string(status), arrival, a.Scope); err != nil {
			err := fmt.Errorf("could not store vendor assignment: %w", err)
			log.Error(err)
			return err
		}
	}
	return nil
}

const subEventColumns = `id, wedding_id, type, custom_name, start_time, end_time,
				venue_name, venue_address, venue_city, venue_state, venue_type,
				expected_guests, guest_group, dress_code, color_theme,
				transport_required, transport_assigned, description,
				budget_allocated, budget_committed, budget_spent`

func (r *RepositoryImpl) GetEvent(ctx context.Context, userId int, id int) (SubEvent, error) {
	query := `SELECT ` + subEventColumns + ` FROM sub_event WHERE id = $1 AND user_id = $2`
	rows, err := r.getQueryer().QueryContext(ctx, query, id, userId)
	if err != nil {
		err := fmt.Errorf("could not query sub-event: %w", err)
		log.Error(err)
		return SubEvent{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return SubEvent{}, err
		}
		return SubEvent{}, ErrEventNotFound
	}
	e, err := scanSubEvent(rows)
	if err != nil {
		return SubEvent{}, err
	}

	assignments, err := r.getAssignments(ctx, []int{e.Id})
	if err != nil {
		return SubEvent{}, err
	}
	e.Vendors = assignments[e.Id]
	return e, nil
}

func (r *RepositoryImpl) GetEvents(ctx context.Context, userId int, weddingId int) ([]SubEvent, error) {
	query := `SELECT ` + subEventColumns + ` FROM sub_event
				WHERE wedding_id = $1 AND user_id = $2 ORDER BY start_time`
	rows, err := r.getQueryer().QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query sub-events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]SubEvent, 0, 10)
	ids := make([]int, 0, 10)
	for rows.Next() {
		e, err := scanSubEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
		ids = append(ids, e.Id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assignments, err := r.getAssignments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i].Vendors = assignments[events[i].Id]
	}
	return events, nil
}

func scanSubEvent(rows *sql.Rows) (SubEvent, error) {
	var e SubEvent
	var eventType, venueType string
	var startMillis, endMillis int64
	var allocated, committed, spent sql.NullInt64
	err := rows.Scan(
		&e.Id, &e.WeddingId, &eventType, &e.CustomName, &startMillis, &endMillis,
		&e.Venue.Name, &e.Venue.Address, &e.Venue.City, &e.Venue.State, &venueType,
		&e.ExpectedGuests, &e.GuestGroup, &e.DressCode, &e.ColorTheme,
		&e.TransportRequired, &e.TransportAssigned, &e.Description,
		&allocated, &committed, &spent,
	)
	if err != nil {
		err := fmt.Errorf("could not scan row: %w", err)
		log.Error(err)
		return SubEvent{}, err
	}
	e.Type = EventType(eventType)
	e.Venue.Type = VenueType(venueType)
	e.StartTime = time.UnixMilli(startMillis)
	e.EndTime = time.UnixMilli(endMillis)
	if allocated.Valid {
		e.Budget = &BudgetSnapshot{
			Allocated: allocated.Int64,
			Committed: committed.Int64,
			Spent:     spent.Int64,
		}
	}
	return e, nil
}

func (r *RepositoryImpl) getAssignments(ctx context.Context, eventIds []int) (map[int][]VendorAssignment, error) {
	result := make(map[int][]VendorAssignment, len(eventIds))
	query := `SELECT id, vendor_id, status, arrival_time, scope FROM event_vendor WHERE event_id = $1 ORDER BY id`
	for _, eventId := range eventIds {
		rows, err := r.getQueryer().QueryContext(ctx, query, eventId)
		if err != nil {
			err := fmt.Errorf("could not query vendor assignments: %w", err)
			log.Error(err)
			return nil, err
		}
		for rows.Next() {
			var a VendorAssignment
			var status string
			var arrival sql.NullInt64
			if err := rows.Scan(&a.Id, &a.VendorId, &status, &arrival, &a.Scope); err != nil {
				rows.Close()
				return nil, fmt.Errorf("could not scan vendor assignment: %w", err)
			}
			a.Status = ConfirmationStatus(status)
			if arrival.Valid {
				t := time.UnixMilli(arrival.Int64)
				a.ArrivalTime = &t
			}
			result[eventId] = append(result[eventId], a)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return result, nil
}

func (r *RepositoryImpl) UpdateEvent(ctx context.Context, userId int, e SubEvent) error {
	query := `UPDATE sub_event SET
				type = $1, custom_name = $2, start_time = $3, end_time = $4,
				venue_name = $5, venue_address = $6, venue_city = $7, venue_state = $8, venue_type = $9,
				expected_guests = $10, guest_group = $11, dress_code = $12, color_theme = $13,
				transport_required = $14, transport_assigned = $15, description = $16,
				budget_allocated = $17, budget_committed = $18, budget_spent = $19
			WHERE id = $20 AND user_id = $21`

	var allocated, committed, spent sql.NullInt64
	if e.Budget != nil {
		allocated = sql.NullInt64{Int64: e.Budget.Allocated, Valid: true}
		committed = sql.NullInt64{Int64: e.Budget.Committed, Valid: true}
		spent = sql.NullInt64{Int64: e.Budget.Spent, Valid: true}
	}

	result, err := r.getQueryer().ExecContext(ctx, query,
		string(e.Type), e.CustomName, e.StartTime.UnixMilli(), e.EndTime.UnixMilli(),
		e.Venue.Name, e.Venue.Address, e.Venue.City, e.Venue.State, string(e.Venue.Type),
		e.ExpectedGuests, e.GuestGroup, e.DressCode, e.ColorTheme,
		e.TransportRequired, e.TransportAssigned, e.Description,
		allocated, committed, spent,
		e.Id, userId,
	)
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
		return ErrEventNotFound
	}

	// Replace vendor assignments wholesale; the edit form always submits the full set.
	if _, err := r.getQueryer().ExecContext(ctx, `DELETE FROM event_vendor WHERE event_id = $1`, e.Id); err != nil {
		return fmt.Errorf("could not clear vendor assignments: %w", err)
	}
	return r.storeAssignments(ctx, e.Id, e.Vendors)
}

func (r *RepositoryImpl) DeleteEvent(ctx context.Context, userId int, id int) error {
	if _, err := r.getQueryer().ExecContext(ctx, `DELETE FROM event_vendor WHERE event_id = $1`, id); err != nil {
		return fmt.Errorf("could not delete vendor assignments: %w", err)
	}
	result, err := r.getQueryer().ExecContext(ctx, `DELETE FROM sub_event WHERE id = $1 AND user_id = $2`, id, userId)
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
		return ErrEventNotFound
	}
	return nil
}
