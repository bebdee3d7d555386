package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/expense-api/internal/models"
)

var ErrNotFound = errors.New("not found")

type Users interface {
	List(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (models.User, error)
	// EnsureSeed inserts every seed whose id is not stored yet.
	EnsureSeed(ctx context.Context, seeds []models.User) error
}

type Expenses interface {
	List(ctx context.Context) ([]models.Expense, error)
	Create(ctx context.Context, e models.Expense) (models.Expense, error)
	Exists(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (models.Expense, error)
	EnsureSeed(ctx context.Context, seeds []models.Expense) error
}

type Repositories struct {
	Users    Users
	Expenses Expenses
	close    func() error
}

func NewRepositories(u Users, e Expenses, closeFn func() error) Repositories {
	return Repositories{Users: u, Expenses: e, close: closeFn}
}

func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}
