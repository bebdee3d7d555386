// Package seed makes sure the demo users and expenses exist before the API serves a request.
package seed

import (
	"context"
	"sync/atomic"

	"github.com/baharkarakas/expense-api/internal/metrics"
	"github.com/baharkarakas/expense-api/internal/repository"
	"github.com/baharkarakas/expense-api/internal/worker"
)

type Seeder struct {
	users    repository.Users
	expenses repository.Expenses
	wp       *worker.Pool
	done     atomic.Bool
}

func NewSeeder(repos repository.Repositories, wp *worker.Pool) *Seeder {
	return &Seeder{users: repos.Users, expenses: repos.Expenses, wp: wp}
}

// Ensure seeds users and expenses concurrently. Once a run succeeds, later calls return at once;
// a failed run is retried on the next call.
func (s *Seeder) Ensure(ctx context.Context) error {
	if s.done.Load() {
		return nil
	}
	err := s.wp.Run(
		func() error { return s.users.EnsureSeed(ctx, Users()) },
		func() error { return s.expenses.EnsureSeed(ctx, Expenses()) },
	)
	if err != nil {
		metrics.SeedRuns.WithLabelValues("error").Inc()
		return err
	}
	metrics.SeedRuns.WithLabelValues("ok").Inc()
	s.done.Store(true)
	return nil
}
