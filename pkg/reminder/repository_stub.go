package reminder

import (
	"context"
	"sort"
	"time"
)

type RepositoryStub struct {
	reminders map[int]Reminder
	users     map[int]int
	nextId    int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		reminders: make(map[int]Reminder),
		users:     make(map[int]int),
		nextId:    1,
	}
}

func (r *RepositoryStub) StoreReminder(ctx context.Context, userId int, rem Reminder) (int, error) {
	rem.Id = r.nextId
	r.nextId++
	r.reminders[rem.Id] = rem
	r.users[rem.Id] = userId
	return rem.Id, nil
}

func (r *RepositoryStub) GetReminders(ctx context.Context, userId int, weddingId int) ([]Reminder, error) {
	var found []Reminder
	for id, rem := range r.reminders {
		if r.users[id] == userId && rem.WeddingId == weddingId {
			found = append(found, rem)
		}
	}
	sortByRemindAt(found)
	return found, nil
}

func (r *RepositoryStub) DeleteReminder(ctx context.Context, userId int, id int) error {
	if _, ok := r.reminders[id]; !ok || r.users[id] != userId {
		return ErrReminderNotFound
	}
	delete(r.reminders, id)
	delete(r.users, id)
	return nil
}

func (r *RepositoryStub) PendingReminders(ctx context.Context, before time.Time) ([]Reminder, error) {
	var found []Reminder
	for _, rem := range r.reminders {
		if !rem.Sent && !rem.RemindAt.After(before) {
			found = append(found, rem)
		}
	}
	sortByRemindAt(found)
	return found, nil
}

func (r *RepositoryStub) MarkSent(ctx context.Context, id int, at time.Time) error {
	rem, ok := r.reminders[id]
	if !ok {
		return ErrReminderNotFound
	}
	rem.Sent = true
	rem.SentAt = &at
	r.reminders[id] = rem
	return nil
}

func sortByRemindAt(reminders []Reminder) {
	sort.Slice(reminders, func(i, j int) bool {
		if reminders[i].RemindAt.Equal(reminders[j].RemindAt) {
			return reminders[i].Id < reminders[j].Id
		}
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
}
