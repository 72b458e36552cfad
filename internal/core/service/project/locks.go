package project

import (
	"sync"

	"github.com/google/uuid"
)

// projectLocks serializes file attachment per project id so that the
// dedup check and the append-and-save execute as one critical section.
// Entries are reference counted and dropped when the last holder releases,
// so the map is bounded by in-flight attachments, not by every project id
// the process has ever seen.
type projectLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*projectLock
}

type projectLock struct {
	mu      sync.Mutex
	holders int
}

func newProjectLocks() *projectLocks {
	return &projectLocks{locks: make(map[uuid.UUID]*projectLock)}
}

// Lock acquires the mutex for the given project id and returns its release func
func (p *projectLocks) Lock(id uuid.UUID) func() {
	p.mu.Lock()
	lock, ok := p.locks[id]
	if !ok {
		lock = &projectLock{}
		p.locks[id] = lock
	}
	lock.holders++
	p.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		p.mu.Lock()
		lock.holders--
		if lock.holders == 0 {
			delete(p.locks, id)
		}
		p.mu.Unlock()
	}
}
