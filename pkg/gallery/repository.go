package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

var ErrPhotoNotFound = errors.New("photo not found")

type Repository interface {
	StorePhoto(ctx context.Context, userId int, p Photo) (int, error)
	GetPhotos(ctx context.Context, userId int, weddingId int) ([]Photo, error)
	UpdatePhoto(ctx context.Context, userId int, p Photo) error
	DeletePhoto(ctx context.Context, userId int, id int) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StorePhoto(ctx context.Context, userId int, p Photo) (int, error) {
	query := `INSERT INTO gallery_photo (wedding_id, sub_event_id, url, caption, uploaded_at, user_id)
				VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query,
		p.WeddingId, nullableId(p.SubEventId), p.Url, p.Caption, p.UploadedAt.UnixMilli(), userId).Scan(&id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return 0, err
	}
	return id, nil
}

func (r *RepositoryImpl) GetPhotos(ctx context.Context, userId int, weddingId int) ([]Photo, error) {
	query := `SELECT id, wedding_id, sub_event_id, url, caption, uploaded_at
				FROM gallery_photo WHERE wedding_id = $1 AND user_id = $2 ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, weddingId, userId)
	if err != nil {
		err := fmt.Errorf("could not query photos: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	photos := make([]Photo, 0, 16)
	for rows.Next() {
		var p Photo
		var subEvent sql.NullInt64
		var uploadedMillis int64
		if err := rows.Scan(&p.Id, &p.WeddingId, &subEvent, &p.Url, &p.Caption, &uploadedMillis); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		if subEvent.Valid {
			p.SubEventId = int(subEvent.Int64)
		}
		p.UploadedAt = time.UnixMilli(uploadedMillis)
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

func (r *RepositoryImpl) UpdatePhoto(ctx context.Context, userId int, p Photo) error {
	query := `UPDATE gallery_photo SET sub_event_id = $1, caption = $2 WHERE id = $3 AND user_id = $4`
	result, err := r.db.ExecContext(ctx, query, nullableId(p.SubEventId), p.Caption, p.Id, userId)
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
		return ErrPhotoNotFound
	}
	return nil
}

func (r *RepositoryImpl) DeletePhoto(ctx context.Context, userId int, id int) error {
	query := `DELETE FROM gallery_photo WHERE id = $1 AND user_id = $2`
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
		return ErrPhotoNotFound
	}
	return nil
}

func nullableId(id int) sql.NullInt64 {
	if id == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}
