package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
)

type expensesRepo struct{ conn *sql.DB }

const selectExpense = `SELECT id, user_id, merchant, amount, currency, date, description, status, category, history FROM expenses`

func scanExpense(row scanner) (models.Expense, error) {
	var (
		e       models.Expense
		history string
	)
	if err := row.Scan(&e.ID, &e.UserID, &e.Merchant, &e.Amount, &e.Currency, &e.Date,
		&e.Description, &e.Status, &e.Category, &history); err != nil {
		return models.Expense{}, err
	}
	e.History = []models.HistoryEntry{}
	if err := json.Unmarshal([]byte(history), &e.History); err != nil {
		return models.Expense{}, fmt.Errorf("decode history of %s: %w", e.ID, err)
	}
	return e, nil
}

func (r *expensesRepo) insert(ctx context.Context, verb string, e models.Expense) error {
	h := e.History
	if h == nil {
		h = []models.HistoryEntry{}
	}
	history, err := json.Marshal(h)
	if err != nil {
		return err
	}
	_, err = r.conn.ExecContext(ctx,
		verb+` INTO expenses (id, user_id, merchant, amount, currency, date, description, status, category, history)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Merchant, e.Amount.String(), e.Currency, e.Date,
		e.Description, e.Status, e.Category, string(history),
	)
	return err
}

func (r *expensesRepo) List(ctx context.Context) ([]models.Expense, error) {
	rows, err := r.conn.QueryContext(ctx, selectExpense+" ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *expensesRepo) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	if err := r.insert(ctx, "INSERT", e); err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return r.Get(ctx, e.ID)
}

func (r *expensesRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM expenses WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

func (r *expensesRepo) Get(ctx context.Context, id string) (models.Expense, error) {
	e, err := scanExpense(r.conn.QueryRowContext(ctx, selectExpense+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, repository.ErrNotFound
	}
	return e, err
}

func (r *expensesRepo) EnsureSeed(ctx context.Context, seeds []models.Expense) error {
	for _, e := range seeds {
		if err := r.insert(ctx, "INSERT OR IGNORE", e); err != nil {
			return fmt.Errorf("seed expense %s: %w", e.ID, err)
		}
	}
	return nil
}
