package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrCategoryNotFound = errors.New("budget category not found")

type Repository interface {
	StoreCategory(ctx context.Context, userId int, c Category) (int, error)
	GetCategory(ctx context.Context, userId int, id int) (Category, error)
	GetCategories(ctx context.Context, userId int, weddingId int) ([]Category, error)
	UpdateCategory(ctx context.Context, userId int, c Category) error
	DeleteCategory(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreCategory(ctx context.Context, userId int, c Category) (int, error) {
	query := `INSERT INTO budget_category (wedding_id, name, sub_event_id, allocated, committed, spent, user_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		c.WeddingId, c.Name, nullableId(c.SubEventId), c.Allocated, c.Committed, c.Spent, userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetCategory(ctx context.Context, userId int, id int) (Category, error) {
	query := `SELECT id, wedding_id, name, sub_event_id, allocated, committed, spent
				FROM budget_category WHERE id = $1 AND user_id = $2`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id, userId))
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrCategoryNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query budget category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	return c, nil
}

func (r *RepositoryImpl) GetCategories(ctx context.Context, userId int, weddingId int) ([]Category, error) {
	query := `SELECT id, wedding_id, name, sub_event_id, allocated, committed, spent
				FROM budget_category WHERE wedding_id = $1 AND user_id = $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query budget categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0, 8)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *RepositoryImpl) UpdateCategory(ctx context.Context, userId int, c Category) error {
	query := `UPDATE budget_category SET name = $1, sub_event_id = $2, allocated = $3, committed = $4, spent = $5
				WHERE id = $6 AND user_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		c.Name, nullableId(c.SubEventId), c.Allocated, c.Committed, c.Spent, c.Id, userId)
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
		return ErrCategoryNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteCategory(ctx context.Context, userId int, id int) error {
	query := `DELETE FROM budget_category WHERE id = $1 AND user_id = $2`
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
		return ErrCategoryNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (Category, error) {
	var c Category
	var subEvent sql.NullInt64
	err := row.Scan(&c.Id, &c.WeddingId, &c.Name, &subEvent, &c.Allocated, &c.Committed, &c.Spent)
	if err != nil {
		return Category{}, err
	}
	if subEvent.Valid {
		c.SubEventId = int(subEvent.Int64)
	}
	return c, nil
}

func nullableId(id int) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}
