// Package memory holds the in-process user store.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/maxviazov/user-directory/internal/model"
	"github.com/maxviazov/user-directory/internal/repository"
)

// UserStore keeps users in insertion order behind a RWMutex.
// Readers always get copies, so nobody outside can observe a half-applied update.
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
	seq   atomic.Int64
}

func NewUserStore() *UserStore {
	return &UserStore{users: make([]model.User, 0, 16)}
}

func (s *UserStore) List(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) GetByID(_ context.Context, id int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.users[i], nil
	}
	return model.User{}, repository.ErrNotFound
}

func (s *UserStore) Create(_ context.Context, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.seq.Add(1)
	s.users = append(s.users, u)
	return u, nil
}

func (s *UserStore) Update(_ context.Context, id int64, u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.User{}, repository.ErrNotFound
	}
	cur := &s.users[i]
	cur.LastName = u.LastName
	cur.FirstName = u.FirstName
	cur.Email = u.Email
	cur.BirthDate = u.BirthDate
	return *cur, nil
}

func (s *UserStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	return true, nil
}

func (s *UserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// Ping always succeeds: there is nothing behind the store to be unavailable.
func (s *UserStore) Ping(_ context.Context) error { return nil }

// indexOf must be called with s.mu held.
func (s *UserStore) indexOf(id int64) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

var (
	_ repository.UserRepository = (*UserStore)(nil)
	_ repository.Pinger         = (*UserStore)(nil)
)
