// Package memory keeps records in process memory. Listing returns insertion order.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
)

type table[T any] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

func newTable[T any]() *table[T] { return &table[T]{rows: map[string]T{}} }

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	return v, ok
}

// insert stores v unless id is taken; an existing row always wins.
func (t *table[T]) insert(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return false
	}
	t.order = append(t.order, id)
	t.rows[id] = v
	return true
}

type usersRepo struct{ t *table[models.User] }

func NewUsers() repository.Users { return &usersRepo{t: newTable[models.User]()} }

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) { return r.t.list(), nil }

func (r *usersRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.t.get(id)
	return ok, nil
}

func (r *usersRepo) Get(ctx context.Context, id string) (models.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) EnsureSeed(ctx context.Context, seeds []models.User) error {
	for _, u := range seeds {
		r.t.insert(u.ID, u)
	}
	return nil
}

type expensesRepo struct{ t *table[models.Expense] }

func NewExpenses() repository.Expenses { return &expensesRepo{t: newTable[models.Expense]()} }

func (r *expensesRepo) List(ctx context.Context) ([]models.Expense, error) {
	out := r.t.list()
	for i := range out {
		out[i].History = cloneHistory(out[i].History)
	}
	return out, nil
}

func (r *expensesRepo) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.History = cloneHistory(e.History)
	if !r.t.insert(e.ID, e) {
		return models.Expense{}, fmt.Errorf("expense %s already exists", e.ID)
	}
	return e, nil
}

func (r *expensesRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.t.get(id)
	return ok, nil
}

func (r *expensesRepo) Get(ctx context.Context, id string) (models.Expense, error) {
	e, ok := r.t.get(id)
	if !ok {
		return models.Expense{}, repository.ErrNotFound
	}
	e.History = cloneHistory(e.History)
	return e, nil
}

func (r *expensesRepo) EnsureSeed(ctx context.Context, seeds []models.Expense) error {
	for _, e := range seeds {
		e.History = cloneHistory(e.History)
		r.t.insert(e.ID, e)
	}
	return nil
}

// callers must not be able to mutate stored history through returned slices
func cloneHistory(h []models.HistoryEntry) []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(h))
	copy(out, h)
	return out
}

func New() repository.Repositories {
	return repository.NewRepositories(NewUsers(), NewExpenses(), nil)
}
