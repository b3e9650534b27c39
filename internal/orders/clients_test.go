package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonHandler(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}
}

func TestUserClientValidate(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK,
		`{"valid": true, "user": {"id": 1, "name": "Alice Smith"}}`))
	defer srv.Close()

	c := &UserClient{BaseURL: srv.URL, HTTP: srv.Client()}
	res, err := c.Validate(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.NotNil(t, res.User)
}

func TestUserClientValidateNotFound(t *testing.T) {
	// 404 still carries a decodable body, not a transport error
	srv := httptest.NewServer(jsonHandler(http.StatusNotFound,
		`{"valid": false, "reason": "User not found"}`))
	defer srv.Close()

	c := &UserClient{BaseURL: srv.URL, HTTP: srv.Client()}
	res, err := c.Validate(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, "User not found", res.Reason)
}

func TestUserClientValidateUnreachable(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK, `{}`))
	srv.Close() // refuse connections

	c := &UserClient{BaseURL: srv.URL, HTTP: &http.Client{Timeout: time.Second}}
	_, err := c.Validate(context.Background(), 1)
	assert.Error(t, err)
}

func TestProductClientCheckStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/2/check-stock", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("quantity"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"available": true, "product_id": 2, "requested_quantity": 3, "current_stock": 50,
		})
	}))
	defer srv.Close()

	c := &ProductClient{BaseURL: srv.URL, HTTP: srv.Client()}
	chk, err := c.CheckStock(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.True(t, chk.Available)
	assert.Equal(t, 50, chk.CurrentStock)
}

func TestProductClientCheckStockNotFound(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusNotFound,
		`{"available": false, "reason": "Product not found"}`))
	defer srv.Close()

	c := &ProductClient{BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := c.CheckStock(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductClientGet(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusOK,
		`{"id": 1, "name": "Laptop", "price": 999.99, "stock": 10}`))
	defer srv.Close()

	c := &ProductClient{BaseURL: srv.URL, HTTP: srv.Client()}
	p, err := c.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, p.Price.Equal(decimal.NewFromFloat(999.99)))
	assert.Equal(t, 10, p.Stock)
}

func TestProductClientReserve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 5, body["quantity"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "RESERVED", "product_id": 1, "reserved_qty": 5, "remaining_stock": 5,
		})
	}))
	defer srv.Close()

	c := &ProductClient{BaseURL: srv.URL, HTTP: srv.Client()}
	res, err := c.Reserve(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "RESERVED", res.Status)
	assert.Equal(t, 5, res.RemainingStock)
}

func TestProductClientReserveRejected(t *testing.T) {
	srv := httptest.NewServer(jsonHandler(http.StatusBadRequest,
		`{"error": "Insufficient stock", "requested": 5, "available": 2}`))
	defer srv.Close()

	c := &ProductClient{BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := c.Reserve(context.Background(), 1, 5)
	assert.Error(t, err)
}
