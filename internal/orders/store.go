package orders

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("order not found")

// Store keeps created orders in memory. Orders are immutable once stored;
// ids come from a monotonic counter and are never reused.
type Store struct {
	mu     sync.RWMutex
	byID   map[int64]Order
	nextID int64
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]Order)}
}

func (s *Store) Create(userID, productID int64, qty int, unitPrice, total decimal.Decimal) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	o := Order{
		ID:        s.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: unitPrice,
		Total:     total,
		Status:    StatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}
	s.byID[o.ID] = o
	return o
}

func (s *Store) Get(id int64) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, 0, len(s.byID))
	for _, o := range s.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
