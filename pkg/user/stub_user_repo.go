package user

import (
	"context"
	"sync"
)

type StubUserRepo struct {
	mu     sync.RWMutex
	users  map[int]User
	nextId int
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{users: make(map[int]User), nextId: 1}
}

func (r *StubUserRepo) CreateUser(ctx context.Context, user User) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.Id = r.nextId
	r.users[user.Id] = user
	r.nextId++
	return user.Id, nil
}

func (r *StubUserRepo) GetUser(ctx context.Context, id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *StubUserRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Uid == uid {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (r *StubUserRepo) UpdateUser(ctx context.Context, userId int, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[userId]; !ok {
		return User{}, ErrUserNotFound
	}
	user.Id = userId
	r.users[userId] = user
	return user, nil
}

func (r *StubUserRepo) DeleteUser(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *StubUserRepo) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return false, nil
		}
	}
	return true, nil
}
