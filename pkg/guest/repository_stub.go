package guest

import (
	"context"
	"sort"
	"sync"
)

type RepositoryStub struct {
	mu      sync.RWMutex
	guests  map[int]Guest
	userIds map[int]int
	nextId  int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		guests:  make(map[int]Guest),
		userIds: make(map[int]int),
		nextId:  1,
	}
}

func (r *RepositoryStub) StoreGuest(ctx context.Context, userId int, g Guest) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g.Id = r.nextId
	r.guests[g.Id] = g
	r.userIds[g.Id] = userId
	r.nextId++
	return g.Id, nil
}

func (r *RepositoryStub) GetGuest(ctx context.Context, userId int, id int) (Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.guests[id]
	if !ok || r.userIds[id] != userId {
		return Guest{}, ErrGuestNotFound
	}
	return g, nil
}

func (r *RepositoryStub) GetGuests(ctx context.Context, userId int, weddingId int) ([]Guest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Guest, 0, len(r.guests))
	for id, g := range r.guests {
		if r.userIds[id] == userId && g.WeddingId == weddingId {
			result = append(result, g)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *RepositoryStub) UpdateGuest(ctx context.Context, userId int, g Guest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.guests[g.Id]
	if !ok || r.userIds[g.Id] != userId {
		return ErrGuestNotFound
	}
	g.WeddingId = existing.WeddingId
	r.guests[g.Id] = g
	return nil
}

func (r *RepositoryStub) DeleteGuest(ctx context.Context, userId int, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.guests[id]; !ok || r.userIds[id] != userId {
		return ErrGuestNotFound
	}
	delete(r.guests, id)
	delete(r.userIds, id)
	return nil
}
