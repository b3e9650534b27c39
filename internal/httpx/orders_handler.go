package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microshoplab/go-shop-services/internal/orders"
)

type OrdersHandler struct {
	Store    *orders.Store
	Workflow *orders.Workflow
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Get("/api/orders", h.list)
	r.Post("/api/orders", h.create)
	r.Get("/api/orders/{id}", h.get)
}

func (h *OrdersHandler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"orders": h.Store.List()})
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	o, err := h.Store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID    *int64 `json:"user_id"`
		ProductID *int64 `json:"product_id"`
		Quantity  *int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.UserID == nil || req.ProductID == nil || req.Quantity == nil || *req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "Missing required fields: user_id, product_id, quantity")
		return
	}

	o, err := h.Workflow.CreateOrder(r.Context(), *req.UserID, *req.ProductID, *req.Quantity)
	if err != nil {
		var userErr *orders.UserValidationError
		var checkErr *orders.ProductCheckError
		var reserveErr *orders.ReservationError
		switch {
		case errors.As(err, &userErr):
			writeError(w, http.StatusBadRequest, "User validation failed: "+userErr.Reason)
		case errors.As(err, &checkErr):
			writeError(w, http.StatusBadRequest, "Product check failed: "+checkErr.Reason)
		case errors.As(err, &reserveErr):
			writeError(w, http.StatusInternalServerError, "Failed to reserve product inventory")
		default:
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
