package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrTaskNotFound = errors.New("task not found")

type Repository interface {
	StoreTask(ctx context.Context, userId int, t Task) (int, error)
	GetTask(ctx context.Context, userId int, id int) (Task, error)
	GetTasks(ctx context.Context, userId int, weddingId int) ([]Task, error)
	UpdateTask(ctx context.Context, userId int, t Task) error
	DeleteTask(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreTask(ctx context.Context, userId int, t Task) (int, error) {
	query := `INSERT INTO task (wedding_id, title, due_date, done, priority, category, completed_at, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		t.WeddingId, t.Title, t.DueDate.UnixMilli(), t.Done, t.Priority, t.Category,
		nullableMillis(t.CompletedAt), userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetTask(ctx context.Context, userId int, id int) (Task, error) {
	query := `SELECT id, wedding_id, title, due_date, done, priority, category, completed_at
				FROM task WHERE id = $1 AND user_id = $2`
	t, err := scanTask(r.db.QueryRowContext(ctx, query, id, userId))
	if errors.Is(err, sql.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query task: %w", err)
		log.Error(err)
		return Task{}, err
	}
	return t, nil
}

func (r *RepositoryImpl) GetTasks(ctx context.Context, userId int, weddingId int) ([]Task, error) {
	query := `SELECT id, wedding_id, title, due_date, done, priority, category, completed_at
				FROM task WHERE wedding_id = $1 AND user_id = $2 ORDER BY due_date, id`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query tasks: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *RepositoryImpl) UpdateTask(ctx context.Context, userId int, t Task) error {
	query := `UPDATE task SET title = $1, due_date = $2, done = $3, priority = $4, category = $5, completed_at = $6
				WHERE id = $7 AND user_id = $8`
	result, err := r.db.ExecContext(ctx, query,
		t.Title, t.DueDate.UnixMilli(), t.Done, t.Priority, t.Category,
		nullableMillis(t.CompletedAt), t.Id, userId)
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
		return ErrTaskNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteTask(ctx context.Context, userId int, id int) error {
	query := `DELETE FROM task WHERE id = $1 AND user_id = $2`
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
		return ErrTaskNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var t Task
	var dueMillis int64
	var completed sql.NullInt64
	err := row.Scan(&t.Id, &t.WeddingId, &t.Title, &dueMillis, &t.Done, &t.Priority, &t.Category, &completed)
	if err != nil {
		return Task{}, err
	}
	t.DueDate = time.UnixMilli(dueMillis)
	if completed.Valid {
		at := time.UnixMilli(completed.Int64)
		t.CompletedAt = &at
	}
	return t, nil
}

func nullableMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}
