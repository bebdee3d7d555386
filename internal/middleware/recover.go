package middleware

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/expense-api/internal/api/httpx"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "request_id", RequestIDFrom(r.Context()), "path", r.URL.Path)
				httpx.Internal(w, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
