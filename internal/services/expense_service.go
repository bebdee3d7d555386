package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/baharkarakas/expense-api/internal/api/validate"
	"github.com/baharkarakas/expense-api/internal/metrics"
	"github.com/baharkarakas/expense-api/internal/models"
	repo "github.com/baharkarakas/expense-api/internal/repository"
)

type ExpenseService struct {
	r     repo.Expenses
	newID func() string
}

func NewExpenseService(r repo.Expenses) *ExpenseService {
	return &ExpenseService{
		r:     r,
		newID: func() string { return models.ExpenseIDPrefix + uuid.NewString() },
	}
}

// ListFilter carries the caller's claimed identity. Neither value is verified.
type ListFilter struct {
	UserID string
	Role   models.Role
}

// List returns every expense for a privileged role, otherwise only the ones owned by UserID.
// Results are ordered by date, newest first.
func (s *ExpenseService) List(ctx context.Context, f ListFilter) ([]models.Expense, error) {
	if !f.Role.Privileged() && f.UserID == "" {
		return nil, ErrFilterRequired
	}
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all
	if !f.Role.Privileged() {
		out = slices.DeleteFunc(all, func(e models.Expense) bool { return e.UserID != f.UserID })
	}
	slices.SortStableFunc(out, func(a, b models.Expense) int { return cmp.Compare(b.Date, a.Date) })
	return out, nil
}

func (s *ExpenseService) Get(ctx context.Context, id string) (models.Expense, error) {
	ok, err := s.r.Exists(ctx, id)
	if err != nil {
		return models.Expense{}, err
	}
	if !ok {
		return models.Expense{}, ErrNotFound
	}
	return s.r.Get(ctx, id)
}

// Create checks the required fields, applies defaults and stores the expense.
// Validation failures are returned as validate.Errs and nothing is written.
func (s *ExpenseService) Create(ctx context.Context, in models.NewExpense) (models.Expense, error) {
	if err := validate.Struct(in); err != nil {
		return models.Expense{}, err
	}
	e, err := s.r.Create(ctx, in.Build(s.newID()))
	if err != nil {
		metrics.ExpenseCreateFailed.Inc()
		return models.Expense{}, fmt.Errorf("create expense: %w", err)
	}
	metrics.ExpensesCreated.WithLabelValues(e.Currency).Inc()
	return e, nil
}
