package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/expense-api/internal/api/httpx"
)

type Seeder interface {
	Ensure(ctx context.Context) error
}

// Seed makes sure demo data exists before the wrapped handler runs.
func Seed(s Seeder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := s.Ensure(r.Context()); err != nil {
				slog.Error("seed", "err", err, "request_id", RequestIDFrom(r.Context()))
				httpx.Internal(w, "Failed to seed data")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
