package task

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	tasks  map[int]Task
	users  map[int]int
	nextId int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		tasks:  make(map[int]Task),
		users:  make(map[int]int),
		nextId: 1,
	}
}

func (r *RepositoryStub) StoreTask(ctx context.Context, userId int, t Task) (int, error) {
	t.Id = r.nextId
	r.nextId++
	r.tasks[t.Id] = t
	r.users[t.Id] = userId
	return t.Id, nil
}

func (r *RepositoryStub) GetTask(ctx context.Context, userId int, id int) (Task, error) {
	t, ok := r.tasks[id]
	if !ok || r.users[id] != userId {
		return Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (r *RepositoryStub) GetTasks(ctx context.Context, userId int, weddingId int) ([]Task, error) {
	var found []Task
	for id, t := range r.tasks {
		if r.users[id] == userId && t.WeddingId == weddingId {
			found = append(found, t)
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].DueDate.Equal(found[j].DueDate) {
			return found[i].Id < found[j].Id
		}
		return found[i].DueDate.Before(found[j].DueDate)
	})
	return found, nil
}

func (r *RepositoryStub) UpdateTask(ctx context.Context, userId int, t Task) error {
	if _, ok := r.tasks[t.Id]; !ok || r.users[t.Id] != userId {
		return ErrTaskNotFound
	}
	r.tasks[t.Id] = t
	return nil
}

func (r *RepositoryStub) DeleteTask(ctx context.Context, userId int, id int) error {
	if _, ok := r.tasks[id]; !ok || r.users[id] != userId {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	delete(r.users, id)
	return nil
}
