package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type expensesRepo struct{ pool *pgxpool.Pool }

func NewExpenses(pool *pgxpool.Pool) repository.Expenses {
	return &expensesRepo{pool: pool}
}

const expenseCols = `id, user_id, merchant, amount, currency, date, description, status, category, history`

// history is jsonb; pgx marshals the slice with encoding/json
const insertExpense = `
INSERT INTO expenses (` + expenseCols + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.UserID, &e.Merchant, &e.Amount, &e.Currency, &e.Date,
		&e.Description, &e.Status, &e.Category, &e.History)
	if e.History == nil {
		e.History = []models.HistoryEntry{}
	}
	return e, err
}

func expenseArgs(e models.Expense) []any {
	h := e.History
	if h == nil {
		h = []models.HistoryEntry{}
	}
	return []any{e.ID, e.UserID, e.Merchant, e.Amount, e.Currency, e.Date,
		e.Description, e.Status, e.Category, h}
}

func (r *expensesRepo) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+expenseCols+` FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	out := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expensesRepo) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	if _, err := r.pool.Exec(ctx, insertExpense, expenseArgs(e)...); err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return r.Get(ctx, e.ID)
}

func (r *expensesRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM expenses WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}

func (r *expensesRepo) Get(ctx context.Context, id string) (models.Expense, error) {
	e, err := scanExpense(r.pool.QueryRow(ctx, `SELECT `+expenseCols+` FROM expenses WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Expense{}, repository.ErrNotFound
	}
	return e, err
}

func (r *expensesRepo) EnsureSeed(ctx context.Context, seeds []models.Expense) error {
	b := &pgx.Batch{}
	for _, e := range seeds {
		b.Queue(insertExpense+` ON CONFLICT (id) DO NOTHING`, expenseArgs(e)...)
	}
	if err := r.pool.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("seed expenses: %w", err)
	}
	return nil
}
