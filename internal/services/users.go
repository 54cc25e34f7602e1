package services

import (
	"context"
	"errors"

	"discuss/internal/models"
	"discuss/internal/repository"
)

type UsersResult struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

type UserService interface {
	GetMe(ctx context.Context, userID string) (*models.User, error)
	GetUsers(ctx context.Context, page Page) (*UsersResult, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetMe(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, unknown("GetMe", err)
	}
	return user, nil
}

func (s *userService) GetUsers(ctx context.Context, page Page) (*UsersResult, error) {
	if !page.valid() {
		return nil, ErrInvalidPagination
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, unknown("GetUsers", err)
	}
	if err := page.bounds(total, ErrUsersNotFound, ErrPageBeyondLimit); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, page.Skip(), page.Limit)
	if err != nil {
		return nil, unknown("GetUsers", err)
	}
	if len(users) == 0 {
		// rows vanished between count and list
		return nil, ErrUsersNotFound
	}

	return &UsersResult{Users: users, Pagination: page.meta(total)}, nil
}
