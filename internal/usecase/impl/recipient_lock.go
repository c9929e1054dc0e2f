package impl

import (
	"sync"

	"github.com/google/uuid"
)

// RecipientLocks serialises work per recipient across concurrent dispatch and digest passes.
type RecipientLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*recipientLock
}

type recipientLock struct {
	mu   sync.Mutex
	refs int
}

// NewRecipientLocks creates an empty lock set.
func NewRecipientLocks() *RecipientLocks {
	return &RecipientLocks{locks: make(map[uuid.UUID]*recipientLock)}
}

// Lock blocks until id is free and returns the matching unlock function.
func (l *RecipientLocks) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &recipientLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
