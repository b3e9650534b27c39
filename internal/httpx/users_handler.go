package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microshoplab/go-shop-services/internal/users"
)

type UsersHandler struct {
	Store *users.Store
}

func (h *UsersHandler) Register(r *chi.Mux) {
	r.Get("/api/users", h.list)
	r.Post("/api/users", h.create)
	r.Get("/api/users/{id}", h.get)
	r.Get("/api/users/{id}/validate", h.validate)
}

func (h *UsersHandler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"users": h.Store.List()})
}

func (h *UsersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	u, err := h.Store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UsersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Active *bool  `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: name, email")
		return
	}

	active := true // default unless the body says otherwise
	if req.Active != nil {
		active = *req.Active
	}

	u, err := h.Store.Create(req.Name, req.Email, active)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: name, email")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UsersHandler) validate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"valid": false, "reason": "User not found"})
		return
	}

	u, err := h.Store.Validate(id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"valid": true, "user": u})
	case errors.Is(err, users.ErrInactive):
		writeJSON(w, http.StatusOK, map[string]any{"valid": false, "reason": "User is inactive"})
	default:
		writeJSON(w, http.StatusNotFound, map[string]any{"valid": false, "reason": "User not found"})
	}
}
