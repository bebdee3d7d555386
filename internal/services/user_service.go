package services

import (
	"context"

	"github.com/baharkarakas/expense-api/internal/models"
	repo "github.com/baharkarakas/expense-api/internal/repository"
)

type UserService struct{ r repo.Users }

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) List(ctx context.Context) ([]models.User, error) { return s.r.List(ctx) }

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	ok, err := s.r.Exists(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNotFound
	}
	return s.r.Get(ctx, id)
}
