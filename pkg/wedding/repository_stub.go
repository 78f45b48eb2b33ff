package wedding

import (
	"context"
	"sort"
	"sync"
)

type RepositoryStub struct {
	mu       sync.RWMutex
	weddings map[int]Wedding
	userIds  map[int]int
	nextId   int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		weddings: make(map[int]Wedding),
		userIds:  make(map[int]int),
		nextId:   1,
	}
}

func (r *RepositoryStub) StoreWedding(ctx context.Context, userId int, w Wedding) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.Id = r.nextId
	r.weddings[w.Id] = w
	r.userIds[w.Id] = userId
	r.nextId++
	return w.Id, nil
}

func (r *RepositoryStub) GetWedding(ctx context.Context, userId int, id int) (Wedding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.weddings[id]
	if !ok || r.userIds[id] != userId {
		return Wedding{}, ErrWeddingNotFound
	}
	return w, nil
}

func (r *RepositoryStub) GetWeddings(ctx context.Context, userId int) ([]Wedding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]Wedding, 0, len(r.weddings))
	for id, w := range r.weddings {
		if r.userIds[id] == userId {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WeddingDate.Before(result[j].WeddingDate)
	})
	return result, nil
}

func (r *RepositoryStub) UpdateWedding(ctx context.Context, userId int, w Wedding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.weddings[w.Id]; !ok || r.userIds[w.Id] != userId {
		return ErrWeddingNotFound
	}
	r.weddings[w.Id] = w
	return nil
}

func (r *RepositoryStub) DeleteWedding(ctx context.Context, userId int, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.weddings[id]; !ok || r.userIds[id] != userId {
		return ErrWeddingNotFound
	}
	delete(r.weddings, id)
	delete(r.userIds, id)
	return nil
}
