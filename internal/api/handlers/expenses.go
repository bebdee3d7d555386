package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/expense-api/internal/api/httpx"
	"github.com/baharkarakas/expense-api/internal/api/validate"
	"github.com/baharkarakas/expense-api/internal/middleware"
	"github.com/baharkarakas/expense-api/internal/models"
	"github.com/baharkarakas/expense-api/internal/services"
)

const maxBodyBytes = 1 << 20

type ExpenseHandler struct {
	Svc *services.ExpenseService
}

func NewExpenseHandler(svc *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Svc: svc}
}

// List expects middleware.Viewer to have run.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := middleware.FromCtx(r.Context())
	expenses, err := h.Svc.List(r.Context(), services.ListFilter{UserID: viewer.UserID, Role: viewer.Role})
	if errors.Is(err, services.ErrFilterRequired) {
		httpx.BadRequest(w, "A userId or admin/manager role is required to fetch expenses.", nil)
		return
	}
	if err != nil {
		internalError(w, r, "list expenses", err, "Failed to list expenses")
		return
	}
	httpx.OK(w, expenses)
}

func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrNotFound) {
		httpx.NotFound(w, "Expense not found")
		return
	}
	if err != nil {
		internalError(w, r, "get expense", err, "Failed to load expense")
		return
	}
	httpx.OK(w, e)
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.NewExpense
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httpx.BadRequest(w, "Invalid expense payload.", nil)
		return
	}

	e, err := h.Svc.Create(r.Context(), req)
	var verrs validate.Errs
	if errors.As(err, &verrs) {
		httpx.BadRequest(w, "Missing required expense fields.", verrs)
		return
	}
	if err != nil {
		internalError(w, r, "Failed to create expense", err, "Failed to create expense")
		return
	}
	httpx.OK(w, e)
}

func internalError(w http.ResponseWriter, r *http.Request, what string, err error, msg string) {
	slog.Error(what, "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
	httpx.Internal(w, msg)
}
