package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrUserDataInvalid = errors.New("user data is invalid")

type Service interface {
	GetCurrentUser(ctx context.Context) (User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	UpdateUser(ctx context.Context, user User) (User, error)
	DeleteUser(ctx context.Context, uid string) error
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewUserService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	return CurrentUser(ctx)
}

func (s *ServiceImpl) CreateUser(ctx context.Context, user User) (User, error) {
	if user.Username == "" || user.DisplayName == "" {
		return User{}, ErrUserDataInvalid
	}
	if user.Settings.Timezone == "" {
		user.Settings.Timezone = "Asia/Kolkata"
	}
	if user.Settings.Currency == "" {
		user.Settings.Currency = "INR"
	}
	if user.Settings.PhoneRegion == "" {
		user.Settings.PhoneRegion = "IN"
	}

	available, err := s.repo.IsUsernameAvailable(ctx, user.Username)
	if err != nil {
		return User{}, fmt.Errorf("failed to check username availability: %w", err)
	}
	if !available {
		return User{}, fmt.Errorf("%w: username %q is taken", ErrUserDataInvalid, user.Username)
	}

	user.Uid = uuid.NewString()
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	user.Id = id
	return user, nil
}

func (s *ServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return s.repo.GetUserByUid(ctx, uid)
}

func (s *ServiceImpl) UpdateUser(ctx context.Context, user User) (User, error) {
	userId, err := CurrentId(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.UpdateUser(ctx, userId, user)
}

func (s *ServiceImpl) DeleteUser(ctx context.Context, uid string) error {
	found, err := s.repo.GetUserByUid(ctx, uid)
	if err != nil {
		return err
	}
	return s.repo.DeleteUser(ctx, found.Id)
}

func (s *ServiceImpl) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	return s.repo.IsUsernameAvailable(ctx, username)
}
