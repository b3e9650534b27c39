package users

import (
	"errors"
	"sort"
	"sync"
)

type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

var (
	ErrNotFound     = errors.New("user not found")
	ErrInactive     = errors.New("user is inactive")
	ErrInvalidInput = errors.New("missing required fields")
)

// Store keeps users in memory. Guarded by a single RWMutex; ids are
// assigned max+1 under the write lock.
type Store struct {
	mu   sync.RWMutex
	byID map[int64]User
}

func NewStore() *Store {
	return &Store{byID: make(map[int64]User)}
}

func (s *Store) Create(name, email string, active bool) (User, error) {
	if name == "" || email == "" {
		return User{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextIDLocked(), Name: name, Email: email, Active: active}
	s.byID[u.ID] = u
	return u, nil
}

func (s *Store) Get(id int64) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// List returns all users ordered by id. Ids are never reused, so this is
// insertion order.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate distinguishes "no such user" from "exists but inactive".
// Read-only.
func (s *Store) Validate(id int64) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	if !u.Active {
		return User{}, ErrInactive
	}
	return u, nil
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
