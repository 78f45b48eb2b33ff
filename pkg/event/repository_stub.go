package event

import (
	"context"
	"sort"
	"sync"
)

type RepositoryStub struct {
	mu      sync.RWMutex
	items   map[int]SubEvent
	userIds map[int]int
	nextId  int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		items:   make(map[int]SubEvent),
		userIds: make(map[int]int),
		nextId:  1,
	}
}

func (r *RepositoryStub) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	r.mu.Lock()
	original := make(map[int]SubEvent, len(r.items))
	for k, v := range r.items {
		original[k] = v
	}
	originalUserIds := make(map[int]int, len(r.userIds))
	for k, v := range r.userIds {
		originalUserIds[k] = v
	}
	originalNextId := r.nextId
	r.mu.Unlock()

	if err := fn(r); err != nil {
		r.mu.Lock()
		r.items = original
		r.userIds = originalUserIds
		r.nextId = originalNextId
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *RepositoryStub) StoreEvent(ctx context.Context, userId int, e SubEvent) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.Id = r.nextId
	r.items[e.Id] = e
	r.userIds[e.Id] = userId
	r.nextId++
	return e.Id, nil
}

func (r *RepositoryStub) GetEvent(ctx context.Context, userId int, id int) (SubEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok || r.userIds[id] != userId {
		return SubEvent{}, ErrEventNotFound
	}
	return e, nil
}

func (r *RepositoryStub) GetEvents(ctx context.Context, userId int, weddingId int) ([]SubEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]SubEvent, 0, len(r.items))
	for id, e := range r.items {
		if r.userIds[id] == userId && e.WeddingId == weddingId {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (r *RepositoryStub) UpdateEvent(ctx context.Context, userId int, e SubEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[e.Id]
	if !ok || r.userIds[e.Id] != userId {
		return ErrEventNotFound
	}
	e.WeddingId = existing.WeddingId
	r.items[e.Id] = e
	return nil
}

func (r *RepositoryStub) DeleteEvent(ctx context.Context, userId int, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok || r.userIds[id] != userId {
		return ErrEventNotFound
	}
	delete(r.items, id)
	delete(r.userIds, id)
	return nil
}
