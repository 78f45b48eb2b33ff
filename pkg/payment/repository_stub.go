package payment

import (
	"context"
	"sort"
)

type RepositoryStub struct {
	installments map[int]Installment
	users        map[int]int
	nextId       int
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{
		installments: make(map[int]Installment),
		users:        make(map[int]int),
		nextId:       1,
	}
}

func (r *RepositoryStub) StoreInstallment(ctx context.Context, userId int, i Installment) (int, error) {
	i.Id = r.nextId
	r.nextId++
	r.installments[i.Id] = i
	r.users[i.Id] = userId
	return i.Id, nil
}

func (r *RepositoryStub) GetInstallment(ctx context.Context, userId int, id int) (Installment, error) {
	i, ok := r.installments[id]
	if !ok || r.users[id] != userId {
		return Installment{}, ErrInstallmentNotFound
	}
	return i, nil
}

func (r *RepositoryStub) GetInstallments(ctx context.Context, userId int, weddingId int) ([]Installment, error) {
	var found []Installment
	for id, i := range r.installments {
		if r.users[id] == userId && i.WeddingId == weddingId {
			found = append(found, i)
		}
	}
	sort.Slice(found, func(a, b int) bool {
		x, y := found[a], found[b]
		switch {
		case x.DueDate == nil && y.DueDate == nil:
			return x.Id < y.Id
		case x.DueDate == nil:
			return false
		case y.DueDate == nil:
			return true
		case x.DueDate.Equal(*y.DueDate):
			return x.Id < y.Id
		default:
			return x.DueDate.Before(*y.DueDate)
		}
	})
	return found, nil
}

func (r *RepositoryStub) UpdateInstallment(ctx context.Context, userId int, i Installment) error {
	if _, ok := r.installments[i.Id]; !ok || r.users[i.Id] != userId {
		return ErrInstallmentNotFound
	}
	r.installments[i.Id] = i
	return nil
}

func (r *RepositoryStub) DeleteInstallment(ctx context.Context, userId int, id int) error {
	if _, ok := r.installments[id]; !ok || r.users[id] != userId {
		return ErrInstallmentNotFound
	}
	delete(r.installments, id)
	delete(r.users, id)
	return nil
}
