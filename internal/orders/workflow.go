package orders

import (
	"context"
	"errors"
)

// Failure reasons surfaced to the caller, one per collaborator outcome.
const (
	ReasonUserUnavailable    = "User service unavailable"
	ReasonProductUnavailable = "Product service unavailable"
	ReasonProductNotFound    = "Product not found"
	ReasonInsufficientStock  = "Insufficient stock"
)

// UserValidationError halts the workflow before inventory is touched.
type UserValidationError struct {
	Reason string
}

func (e *UserValidationError) Error() string { return "user validation failed: " + e.Reason }

// ProductCheckError halts the workflow before anything is reserved.
type ProductCheckError struct {
	Reason string
}

func (e *ProductCheckError) Error() string { return "product check failed: " + e.Reason }

// ReservationError means the availability check passed but the reserve call
// did not. The caller's input was fine, so this maps to a server-side
// failure.
type ReservationError struct {
	Cause error
}

func (e *ReservationError) Error() string { return "reserve product inventory: " + e.Cause.Error() }
func (e *ReservationError) Unwrap() error { return e.Cause }

type UserValidator interface {
	Validate(ctx context.Context, userID int64) (ValidationResult, error)
}

type InventoryClient interface {
	CheckStock(ctx context.Context, productID int64, qty int) (StockCheck, error)
	Get(ctx context.Context, productID int64) (ProductInfo, error)
	Reserve(ctx context.Context, productID int64, qty int) (ReserveResult, error)
}

// Workflow sequences one order creation across the user and product
// services: validate user -> check stock -> reserve -> total -> persist.
// Single pass, no retries; the first failing step short-circuits the rest.
type Workflow struct {
	Users    UserValidator
	Products InventoryClient
	Store    *Store
}

func (w *Workflow) CreateOrder(ctx context.Context, userID, productID int64, qty int) (Order, error) {
	// step 1: user must exist and be active
	val, err := w.Users.Validate(ctx, userID)
	if err != nil {
		return Order{}, &UserValidationError{Reason: ReasonUserUnavailable}
	}
	if !val.Valid {
		reason := val.Reason
		if reason == "" {
			reason = "User validation failed"
		}
		return Order{}, &UserValidationError{Reason: reason}
	}

	// step 2: availability check, then fetch the product for its price.
	// The price is a snapshot taken here, not atomic with the reservation.
	chk, err := w.Products.CheckStock(ctx, productID, qty)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return Order{}, &ProductCheckError{Reason: ReasonProductNotFound}
		}
		return Order{}, &ProductCheckError{Reason: ReasonProductUnavailable}
	}
	if !chk.Available {
		return Order{}, &ProductCheckError{Reason: ReasonInsufficientStock}
	}

	prod, err := w.Products.Get(ctx, productID)
	if err != nil {
		return Order{}, &ProductCheckError{Reason: ReasonProductUnavailable}
	}

	// step 3: reserve. The check already passed, so any failure here is an
	// unexpected race, not bad input.
	if _, err := w.Products.Reserve(ctx, productID, qty); err != nil {
		return Order{}, &ReservationError{Cause: err}
	}

	// steps 4+5: total from the step-2 price snapshot, then persist.
	// There is no compensation: a reservation is never released if a later
	// step were to fail.
	total := OrderTotal(qty, prod.Price)
	return w.Store.Create(userID, productID, qty, prod.Price, total), nil
}
