package gallery

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	photos map[int]Photo
	users  map[int]int
	nextId int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		photos: make(map[int]Photo),
		users:  make(map[int]int),
		nextId: 1,
	}
}

func (r *RepositoryStub) StorePhoto(ctx context.Context, userId int, p Photo) (int, error) {
	p.Id = r.nextId
	r.nextId++
	r.photos[p.Id] = p
	r.users[p.Id] = userId
	return p.Id, nil
}

func (r *RepositoryStub) GetPhotos(ctx context.Context, userId int, weddingId int) ([]Photo, error) {
	var found []Photo
	for id, p := range r.photos {
		if r.users[id] == userId && p.WeddingId == weddingId {
			found = append(found, p)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].UploadedAt.Equal(found[j].UploadedAt) {
			return found[i].Id > found[j].Id
		}
		return found[i].UploadedAt.After(found[j].UploadedAt)
	})
	return found, nil
}

func (r *RepositoryStub) UpdatePhoto(ctx context.Context, userId int, p Photo) error {
	existing, ok := r.photos[p.Id]
	if !ok || r.users[p.Id] != userId {
		return ErrPhotoNotFound
	}
	existing.SubEventId = p.SubEventId
	existing.Caption = p.Caption
	r.photos[p.Id] = existing
	return nil
}

func (r *RepositoryStub) DeletePhoto(ctx context.Context, userId int, id int) error {
	if _, ok := r.photos[id]; !ok || r.users[id] != userId {
		return ErrPhotoNotFound
	}
	delete(r.photos, id)
	delete(r.users, id)
	return nil
}
