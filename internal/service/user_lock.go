package service

import (
	"context"
	"sync"
)

// UserLocker serializa operaciones de imagen de perfil por usuario.
type UserLocker interface {
	Lock(ctx context.Context, userID string) (func(), error)
}

type memoryUserLocker struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

// NewMemoryUserLocker crea un locker por usuario en memoria.
func NewMemoryUserLocker() UserLocker {
	return &memoryUserLocker{
		locks: make(map[string]*userLock),
	}
}

func (l *memoryUserLocker) Lock(_ context.Context, userID string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}, nil
}
