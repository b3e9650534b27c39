package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/microshoplab/go-shop-services/internal/inventory"
	"github.com/shopspring/decimal"
)

type ProductsHandler struct {
	Store *inventory.Store
}

func (h *ProductsHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.list)
	r.Post("/api/products", h.create)
	r.Get("/api/products/{id}", h.get)
	r.Get("/api/products/{id}/check-stock", h.checkStock)
	r.Put("/api/products/{id}/reserve", h.reserve)
}

func (h *ProductsHandler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"products": h.Store.List()})
}

func (h *ProductsHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	p, err := h.Store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProductsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
		Stock int      `json:"stock"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.Price == nil {
		writeError(w, http.StatusBadRequest, "Missing required fields: name, price")
		return
	}

	p, err := h.Store.Create(req.Name, decimal.NewFromFloat(*req.Price), req.Stock)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid price or stock")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductsHandler) checkStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"available": false, "reason": "Product not found"})
		return
	}

	qty := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		qty, err = strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid quantity")
			return
		}
	}

	av, err := h.Store.CheckAvailability(id, qty)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"available": false, "reason": "Product not found"})
		return
	}
	writeJSON(w, http.StatusOK, av)
}

func (h *ProductsHandler) reserve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	qty := 1 // same default as check-stock
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.Quantity != nil {
		qty = *req.Quantity
	}

	res, err := h.Store.Reserve(id, qty)
	var insufficient *inventory.InsufficientStockError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, inventory.ErrNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	case errors.As(err, &insufficient):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":     "Insufficient stock",
			"requested": insufficient.Requested,
			"available": insufficient.Available,
		})
	default:
		writeError(w, http.StatusBadRequest, "Invalid quantity")
	}
}
