package store

import (
	"context"
	"sync"

	"github.com/goliatone/go-authform/pkg/model"
)

// Memory is a process-local UserStore. The zero value is not usable; call
// NewMemory.
type Memory struct {
	mu    sync.RWMutex
	order []string
	users map[string]model.UserRecord
}

// NewMemory returns an empty store, optionally seeded with users. Seeds that
// collide are skipped.
func NewMemory(seed ...model.UserRecord) *Memory {
	m := &Memory{users: make(map[string]model.UserRecord, len(seed))}
	for _, user := range seed {
		_ = m.insertLocked(user)
	}
	return m
}

var _ UserStore = (*Memory)(nil)

func (m *Memory) Find(ctx context.Context, username string) (model.UserRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.UserRecord{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[username]
	return user, ok, nil
}

func (m *Memory) Insert(ctx context.Context, user model.UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(user)
}

func (m *Memory) List(ctx context.Context) ([]model.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.UserRecord, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.users[name])
	}
	return out, nil
}

func (m *Memory) insertLocked(user model.UserRecord) error {
	if err := CheckInsertable(user); err != nil {
		return err
	}
	if _, taken := m.users[user.Username]; taken {
		return ConflictError(user.Username)
	}
	m.users[user.Username] = user
	m.order = append(m.order, user.Username)
	return nil
}
