package wedding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrWeddingNotFound = errors.New("wedding not found")

type Repository interface {
	StoreWedding(ctx context.Context, userId int, w Wedding) (int, error)
	GetWedding(ctx context.Context, userId int, id int) (Wedding, error)
	GetWeddings(ctx context.Context, userId int) ([]Wedding, error)
	UpdateWedding(ctx context.Context, userId int, w Wedding) error
	DeleteWedding(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreWedding(ctx context.Context, userId int, w Wedding) (int, error) {
	query := `INSERT INTO wedding (bride_name, groom_name, wedding_date, city, total_budget, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		w.BrideName, w.GroomName, w.WeddingDate.UnixMilli(), w.City, w.TotalBudget, userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetWedding(ctx context.Context, userId int, id int) (Wedding, error) {
	query := `SELECT id, bride_name, groom_name, wedding_date, city, total_budget
				FROM wedding WHERE id = $1 AND user_id = $2`
	var w Wedding
	var dateMillis int64
	err := r.db.QueryRowContext(ctx, query, id, userId).
		Scan(&w.Id, &w.BrideName, &w.GroomName, &dateMillis, &w.City, &w.TotalBudget)
	if errors.Is(err, sql.ErrNoRows) {
		return Wedding{}, ErrWeddingNotFound
	} else if err != nil {
		err := fmt.Errorf("could not query wedding: %w", err)
		log.Error(err)
		return Wedding{}, err
	}
	w.WeddingDate = time.UnixMilli(dateMillis)
	return w, nil
}

func (r *RepositoryImpl) GetWeddings(ctx context.Context, userId int) ([]Wedding, error) {
	query := `SELECT id, bride_name, groom_name, wedding_date, city, total_budget
				FROM wedding WHERE user_id = $1 ORDER BY wedding_date`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query weddings: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	weddings := make([]Wedding, 0, 4)
	for rows.Next() {
		var w Wedding
		var dateMillis int64
		if err := rows.Scan(&w.Id, &w.BrideName, &w.GroomName, &dateMillis, &w.City, &w.TotalBudget); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		w.WeddingDate = time.UnixMilli(dateMillis)
		weddings = append(weddings, w)
	}
	return weddings, rows.Err()
}

func (r *RepositoryImpl) UpdateWedding(ctx context.Context, userId int, w Wedding) error {
	query := `UPDATE wedding SET bride_name = $1, groom_name = $2, wedding_date = $3, city = $4, total_budget = $5
				WHERE id = $6 AND user_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		w.BrideName, w.GroomName, w.WeddingDate.UnixMilli(), w.City, w.TotalBudget, w.Id, userId)
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
		return ErrWeddingNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeleteWedding(ctx context.Context, userId int, id int) error {
	query := `DELETE FROM wedding WHERE id = $1 AND user_id = $2`
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
		return ErrWeddingNotFound
	}
	return nil
}
