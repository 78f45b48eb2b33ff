package gallery

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Bhavesh-Anc/eventkaro/internal/utils"
	"github.com/Bhavesh-Anc/eventkaro/pkg/user"
)

var ErrPhotoDataInvalid = errors.New("photo data is invalid")

type Service struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *Service {
	return &Service{repo: repo, clock: clock}
}

func (s *Service) AddPhoto(ctx context.Context, p Photo) (*Photo, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if p.WeddingId == 0 {
		return nil, fmt.Errorf("%w: wedding id is required", ErrPhotoDataInvalid)
	}
	if _, err := url.ParseRequestURI(p.Url); err != nil {
		return nil, fmt.Errorf("%w: url is not valid", ErrPhotoDataInvalid)
	}
	p.UploadedAt = s.clock.Now()

	id, err := s.repo.StorePhoto(ctx, userId, p)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}
	p.Id = id
	return &p, nil
}

func (s *Service) GetPhotos(ctx context.Context, weddingId int) ([]Photo, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetPhotos(ctx, userId, weddingId)
}

// ModifyPhoto updates the caption and sub-event link. The url is immutable;
// replacing the image means uploading a new photo.
func (s *Service) ModifyPhoto(ctx context.Context, p Photo) (*Photo, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.repo.UpdatePhoto(ctx, userId, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) DeletePhoto(ctx context.Context, id int) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.DeletePhoto(ctx, userId, id)
}
