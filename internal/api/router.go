package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/expense-api/internal/api/handlers"
	"github.com/baharkarakas/expense-api/internal/config"
	"github.com/baharkarakas/expense-api/internal/metrics"
	"github.com/baharkarakas/expense-api/internal/middleware"
	"github.com/baharkarakas/expense-api/internal/services"
)

type RouterDeps struct {
	Cfg        config.Config
	UserSvc    *services.UserService
	ExpenseSvc *services.ExpenseService
	Seeder     middleware.Seeder
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	users := handlers.NewUserHandler(d.UserSvc)
	expenses := handlers.NewExpenseHandler(d.ExpenseSvc)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Seed(d.Seeder))

		// ---------- users ----------
		r.Get("/users", users.List)
		r.Get("/users/{id}", users.Get)

		// ---------- expenses ----------
		r.With(middleware.Viewer).Get("/expenses", expenses.List)
		r.Get("/expenses/{id}", expenses.Get)
		r.Post("/expenses", expenses.Create)
	})

	return r
}
