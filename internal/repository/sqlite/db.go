// Package sqlite stores records in a SQLite file through the pure-Go modernc driver.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/baharkarakas/expense-api/internal/repository"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// Open opens (or creates) the database at path and ensures the schema exists.
// ":memory:" gives a private in-memory database.
func Open(path string) (repository.Repositories, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return repository.Repositories{}, err
	}
	// a single connection keeps ":memory:" databases shared and serialises writers
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return repository.Repositories{}, err
	}
	if err := migrate(conn); err != nil {
		conn.Close()
		return repository.Repositories{}, fmt.Errorf("sqlite migrate: %w", err)
	}
	return repository.NewRepositories(&usersRepo{conn}, &expensesRepo{conn}, conn.Close), nil
}

func migrate(conn *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL,
			department TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT UNIQUE NOT NULL,
			user_id TEXT NOT NULL,
			merchant TEXT NOT NULL,
			amount TEXT NOT NULL,
			currency TEXT NOT NULL DEFAULT 'USD',
			date INTEGER NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			category TEXT NOT NULL,
			history TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE INDEX IF NOT EXISTS expenses_user_id_idx ON expenses (user_id)`,
	}
	for _, m := range migrations {
		if _, err := conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}
