package inventory

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type Availability struct {
	Available    bool  `json:"available"`
	ProductID    int64 `json:"product_id"`
	RequestedQty int   `json:"requested_quantity"`
	CurrentStock int   `json:"current_stock"`
}

type Reservation struct {
	Status         string `json:"status"` // always RESERVED
	ProductID      int64  `json:"product_id"`
	ReservedQty    int    `json:"reserved_qty"`
	RemainingStock int    `json:"remaining_stock"`
}

var (
	ErrNotFound     = errors.New("product not found")
	ErrInvalidInput = errors.New("missing required fields")
	ErrInvalidQty   = errors.New("invalid quantity")
)

type InsufficientStockError struct {
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// Store keeps products in memory behind one RWMutex. Reserve is the only
// mutation of stock and runs check-and-decrement in a single critical
// section, so stock can never go negative.
type Store struct {
	mu   sync.RWMutex
	byID map[int64]Product
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]Product)}
}

func (s *Store) Create(name string, price decimal.Decimal, stock int) (Product, error) {
	if name == "" {
		return Product{}, ErrInvalidInput
	}
	if price.IsNegative() || stock < 0 {
		return Product{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{ID: s.nextIDLocked(), Name: name, Price: price, Stock: stock}
	s.byID[p.ID] = p
	return p, nil
}

func (s *Store) Get(id int64) (Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CheckAvailability is a pure read; it never mutates stock.
func (s *Store) CheckAvailability(id int64, qty int) (Availability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return Availability{}, ErrNotFound
	}
	return Availability{
		Available:    qty <= p.Stock,
		ProductID:    id,
		RequestedQty: qty,
		CurrentStock: p.Stock,
	}, nil
}

// Reserve decrements stock by qty, or rejects without any change when qty
// exceeds the current stock. Check and decrement happen under one write
// lock so concurrent reservations cannot oversell.
func (s *Store) Reserve(id int64, qty int) (Reservation, error) {
	if qty < 1 {
		return Reservation{}, ErrInvalidQty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	if qty > p.Stock {
		return Reservation{}, &InsufficientStockError{Requested: qty, Available: p.Stock}
	}

	p.Stock -= qty
	s.byID[id] = p

	return Reservation{
		Status:         "RESERVED",
		ProductID:      id,
		ReservedQty:    qty,
		RemainingStock: p.Stock,
	}, nil
}

func (s *Store) nextIDLocked() int64 {
	var max int64
	for id := range s.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}
