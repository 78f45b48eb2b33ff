package budget

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	categories map[int]Category
	users      map[int]int
	nextId     int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		categories: make(map[int]Category),
		users:      make(map[int]int),
		nextId:     1,
	}
}

func (r *RepositoryStub) StoreCategory(ctx context.Context, userId int, c Category) (int, error) {
	c.Id = r.nextId
	r.nextId++
	r.categories[c.Id] = c
	r.users[c.Id] = userId
	return c.Id, nil
}

func (r *RepositoryStub) GetCategory(ctx context.Context, userId int, id int) (Category, error) {
	c, ok := r.categories[id]
	if !ok || r.users[id] != userId {
		return Category{}, ErrCategoryNotFound
	}
	return c, nil
}

func (r *RepositoryStub) GetCategories(ctx context.Context, userId int, weddingId int) ([]Category, error) {
	var found []Category
	for id, c := range r.categories {
		if r.users[id] == userId && c.WeddingId == weddingId {
			found = append(found, c)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Id < found[j].Id })
	return found, nil
}

func (r *RepositoryStub) UpdateCategory(ctx context.Context, userId int, c Category) error {
	if _, ok := r.categories[c.Id]; !ok || r.users[c.Id] != userId {
		return ErrCategoryNotFound
	}
	r.categories[c.Id] = c
	return nil
}

func (r *RepositoryStub) DeleteCategory(ctx context.Context, userId int, id int) error {
	if _, ok := r.categories[id]; !ok || r.users[id] != userId {
		return ErrCategoryNotFound
	}
	delete(r.categories, id)
	delete(r.users, id)
	return nil
}
