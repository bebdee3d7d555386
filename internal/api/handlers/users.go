package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/expense-api/internal/api/httpx"
	"github.com/baharkarakas/expense-api/internal/services"
)

type UserHandler struct {
	Svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		internalError(w, r, "list users", err, "Failed to list users")
		return
	}
	httpx.OK(w, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, services.ErrNotFound) {
		httpx.NotFound(w, "User not found")
		return
	}
	if err != nil {
		internalError(w, r, "get user", err, "Failed to load user")
		return
	}
	httpx.OK(w, u)
}
