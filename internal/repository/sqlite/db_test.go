package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
)

// StoreTestSuite exercises both entity stores over an in-memory database.
type StoreTestSuite struct {
	suite.Suite
	repos repository.Repositories
	ctx   context.Context
}

func (suite *StoreTestSuite) SetupTest() {
	repos, err := Open(":memory:")
	require.NoError(suite.T(), err, "failed to open test database")
	suite.repos = repos
	suite.ctx = context.Background()
}

func (suite *StoreTestSuite) TearDownTest() {
	suite.repos.Close()
}

func newExpense(id, user string, date int64) models.Expense {
	return models.NewExpense{
		UserID:   user,
		Merchant: "Store",
		Amount:   decimal.RequireFromString("19.90"),
		Date:     float64(date),
		Category: "supplies",
	}.Build(id)
}

func (suite *StoreTestSuite) TestCreateExpenseRoundTrip() {
	created, err := suite.repos.Expenses.Create(suite.ctx, newExpense("exp-1", "u1", 1700000000000))
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "exp-1", created.ID)
	assert.True(suite.T(), decimal.RequireFromString("19.9").Equal(created.Amount))
	assert.Equal(suite.T(), models.DefaultCurrency, created.Currency)
	assert.Equal(suite.T(), models.ExpensePending, created.Status)
	assert.Equal(suite.T(), int64(1700000000000), created.Date)
	assert.NotNil(suite.T(), created.History)
	assert.Empty(suite.T(), created.History)
}

func (suite *StoreTestSuite) TestCreateDuplicateFails() {
	_, err := suite.repos.Expenses.Create(suite.ctx, newExpense("exp-1", "u1", 1))
	require.NoError(suite.T(), err)

	_, err = suite.repos.Expenses.Create(suite.ctx, newExpense("exp-1", "u2", 2))
	assert.Error(suite.T(), err)
}

func (suite *StoreTestSuite) TestExistsAndNotFound() {
	ok, err := suite.repos.Expenses.Exists(suite.ctx, "exp-missing")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), ok)

	_, err = suite.repos.Expenses.Get(suite.ctx, "exp-missing")
	assert.ErrorIs(suite.T(), err, repository.ErrNotFound)

	_, err = suite.repos.Users.Get(suite.ctx, "nobody")
	assert.ErrorIs(suite.T(), err, repository.ErrNotFound)
}

func (suite *StoreTestSuite) TestHistoryPersists() {
	e := newExpense("exp-h", "u1", 1)
	e.Status = models.ExpenseApproved
	e.History = []models.HistoryEntry{{Status: models.ExpenseApproved, ActorID: "m1", Note: "ok", At: 2}}
	require.NoError(suite.T(), suite.repos.Expenses.EnsureSeed(suite.ctx, []models.Expense{e}))

	got, err := suite.repos.Expenses.Get(suite.ctx, "exp-h")
	require.NoError(suite.T(), err)
	require.Len(suite.T(), got.History, 1)
	assert.Equal(suite.T(), "m1", got.History[0].ActorID)
	assert.Equal(suite.T(), models.ExpenseApproved, got.Status)
}

func (suite *StoreTestSuite) TestEnsureSeedIsIdempotent() {
	users := []models.User{
		{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin},
		{ID: "u2", Name: "Bo", Email: "bo@example.com", Role: models.RoleEmployee, Department: "Sales"},
	}
	for i := 0; i < 3; i++ {
		require.NoError(suite.T(), suite.repos.Users.EnsureSeed(suite.ctx, users))
	}

	list, err := suite.repos.Users.List(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 2)
	assert.Equal(suite.T(), "u1", list[0].ID)
	assert.Equal(suite.T(), models.RoleEmployee, list[1].Role)
	assert.Equal(suite.T(), "Sales", list[1].Department)
}

func (suite *StoreTestSuite) TestListKeepsInsertionOrder() {
	for _, id := range []string{"exp-b", "exp-a", "exp-c"} {
		_, err := suite.repos.Expenses.Create(suite.ctx, newExpense(id, "u1", 5))
		require.NoError(suite.T(), err)
	}

	list, err := suite.repos.Expenses.List(suite.ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), list, 3)
	assert.Equal(suite.T(), "exp-b", list[0].ID)
	assert.Equal(suite.T(), "exp-c", list[2].ID)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestOpenFileReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.db")
	ctx := context.Background()

	repos, err := Open(path)
	require.NoError(t, err)
	_, err = repos.Expenses.Create(ctx, newExpense("exp-1", "u1", 1))
	require.NoError(t, err)
	require.NoError(t, repos.Close())

	repos, err = Open(path)
	require.NoError(t, err)
	defer repos.Close()
	ok, err := repos.Expenses.Exists(ctx, "exp-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
