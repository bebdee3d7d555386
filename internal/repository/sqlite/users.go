package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/repository"
)

type usersRepo struct{ conn *sql.DB }

type scanner interface{ Scan(dest ...any) error }

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Department)
	return u, err
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.conn.QueryContext(ctx, "SELECT id, name, email, role, department FROM users ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.conn.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

func (r *usersRepo) Get(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.conn.QueryRowContext(ctx,
		"SELECT id, name, email, role, department FROM users WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

func (r *usersRepo) EnsureSeed(ctx context.Context, seeds []models.User) error {
	for _, u := range seeds {
		_, err := r.conn.ExecContext(ctx,
			"INSERT OR IGNORE INTO users (id, name, email, role, department) VALUES (?, ?, ?, ?, ?)",
			u.ID, u.Name, u.Email, u.Role, u.Department,
		)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	return nil
}
