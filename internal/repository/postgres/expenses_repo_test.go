package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/baharkarakas/expense-api/internal/db"
	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
)

// Runs against a live database only when TEST_DATABASE_URL is set.
type PostgresSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repos repository.Repositories
}

func (s *PostgresSuite) SetupSuite() {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		s.T().Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := db.NewPool(ctx, url)
	require.NoError(s.T(), err)
	require.NoError(s.T(), db.RunMigrations(ctx, pool))
	s.pool = pool
	s.repos = NewRepositories(pool)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresSuite) TestCreateAndGet() {
	ctx := context.Background()
	id := models.ExpenseIDPrefix + uuid.NewString()
	in := models.NewExpense{
		UserID:   "pg-user",
		Merchant: "Hotel",
		Amount:   decimal.RequireFromString("199.99"),
		Date:     1700000000000,
		Category: "lodging",
	}.Build(id)

	created, err := s.repos.Expenses.Create(ctx, in)
	require.NoError(s.T(), err)
	assert.True(s.T(), in.Amount.Equal(created.Amount))
	assert.Equal(s.T(), models.ExpensePending, created.Status)
	assert.Empty(s.T(), created.History)

	ok, err := s.repos.Expenses.Exists(ctx, id)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)

	_, err = s.repos.Expenses.Get(ctx, "exp-missing-"+uuid.NewString())
	assert.ErrorIs(s.T(), err, repository.ErrNotFound)
}

func (s *PostgresSuite) TestEnsureSeedTwice() {
	ctx := context.Background()
	seeds := []models.User{{ID: "pg-seed-" + uuid.NewString(), Name: "Seed", Email: "s@example.com", Role: models.RoleEmployee}}
	require.NoError(s.T(), s.repos.Users.EnsureSeed(ctx, seeds))
	require.NoError(s.T(), s.repos.Users.EnsureSeed(ctx, seeds))

	u, err := s.repos.Users.Get(ctx, seeds[0].ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Seed", u.Name)
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(PostgresSuite))
}
