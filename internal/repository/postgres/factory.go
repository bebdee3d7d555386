package postgres

import (
	repo "github.com/baharkarakas/expense-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.NewRepositories(
		NewUsers(pool),
		NewExpenses(pool),
		func() error { pool.Close(); return nil },
	)
}
