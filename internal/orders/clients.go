package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound signals a 404 from the product service, as opposed to
// the service being unreachable.
var ErrProductNotFound = errors.New("product not found")

type ValidationResult struct {
	Valid  bool            `json:"valid"`
	Reason string          `json:"reason,omitempty"`
	User   json.RawMessage `json:"user,omitempty"`
}

type StockCheck struct {
	Available    bool   `json:"available"`
	ProductID    int64  `json:"product_id"`
	RequestedQty int    `json:"requested_quantity"`
	CurrentStock int    `json:"current_stock"`
	Reason       string `json:"reason,omitempty"`
}

type ProductInfo struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type ReserveResult struct {
	Status         string `json:"status"`
	ProductID      int64  `json:"product_id"`
	ReservedQty    int    `json:"reserved_qty"`
	RemainingStock int    `json:"remaining_stock"`
}

// UserClient talks to the user service over HTTP.
type UserClient struct {
	BaseURL string
	HTTP    *http.Client
}

func (c *UserClient) Validate(ctx context.Context, userID int64) (ValidationResult, error) {
	url := fmt.Sprintf("%s/api/users/%d/validate", c.BaseURL, userID)

	// 200 and 404 both carry a valid/reason body
	var out ValidationResult
	if _, err := getJSON(ctx, c.HTTP, url, &out); err != nil {
		return ValidationResult{}, err
	}
	return out, nil
}

// ProductClient talks to the product service over HTTP.
type ProductClient struct {
	BaseURL string
	HTTP    *http.Client
}

func (c *ProductClient) CheckStock(ctx context.Context, productID int64, qty int) (StockCheck, error) {
	url := fmt.Sprintf("%s/api/products/%d/check-stock?quantity=%d", c.BaseURL, productID, qty)

	var out StockCheck
	code, err := getJSON(ctx, c.HTTP, url, &out)
	if err != nil {
		return StockCheck{}, err
	}
	if code == http.StatusNotFound {
		return StockCheck{}, ErrProductNotFound
	}
	return out, nil
}

func (c *ProductClient) Get(ctx context.Context, productID int64) (ProductInfo, error) {
	url := fmt.Sprintf("%s/api/products/%d", c.BaseURL, productID)

	var out ProductInfo
	code, err := getJSON(ctx, c.HTTP, url, &out)
	if err != nil {
		return ProductInfo{}, err
	}
	if code == http.StatusNotFound {
		return ProductInfo{}, ErrProductNotFound
	}
	return out, nil
}

func (c *ProductClient) Reserve(ctx context.Context, productID int64, qty int) (ReserveResult, error) {
	url := fmt.Sprintf("%s/api/products/%d/reserve", c.BaseURL, productID)

	body, _ := json.Marshal(map[string]int{"quantity": qty})
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return ReserveResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID(ctx))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return ReserveResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ReserveResult{}, fmt.Errorf("reserve rejected: status %d", resp.StatusCode)
	}
	var out ReserveResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ReserveResult{}, err
	}
	return out, nil
}

func getJSON(ctx context.Context, hc *http.Client, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("X-Request-Id", requestID(ctx))

	resp, err := hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, err
	}
	return resp.StatusCode, nil
}

// requestID propagates the inbound request id downstream so one order
// creation is traceable across all three services.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
