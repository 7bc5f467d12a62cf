package sessions

import (
	"fmt"
	"sync"
	"time"
)

// Repository in-memory хранилище сессий с TTL по времени последней активности
type Repository[T Session] struct {
	mu    sync.RWMutex
	items map[string]T
	ttl   time.Duration
	now   func() time.Time
}

// NewRepository создает хранилище. ttl <= 0 отключает истечение; now == nil - time.Now
func NewRepository[T Session](ttl time.Duration, now func() time.Time) *Repository[T] {
	if now == nil {
		now = time.Now
	}
	return &Repository[T]{
		items: make(map[string]T),
		ttl:   ttl,
		now:   now,
	}
}

// Save сохраняет или заменяет сессию
func (r *Repository[T]) Save(s T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID()] = s
}

// Get возвращает сессию по идентификатору. Истекшая сессия удаляется
func (r *Repository[T]) Get(id string) (T, error) {
	r.mu.RLock()
	s, ok := r.items[id]
	r.mu.RUnlock()

	var zero T
	if !ok {
		return zero, fmt.Errorf("%w: Get - id=%s", ErrSessionNotFound, id)
	}

	if r.expired(s, r.now()) {
		r.mu.Lock()
		if cur, ok := r.items[id]; ok && r.expired(cur, r.now()) {
			delete(r.items, id)
		}
		r.mu.Unlock()
		return zero, fmt.Errorf("%w: Get - id=%s expired", ErrSessionNotFound, id)
	}

	return s, nil
}

// Delete удаляет сессию
func (r *Repository[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("%w: Delete - id=%s", ErrSessionNotFound, id)
	}
	delete(r.items, id)
	return nil
}

// Sweep удаляет истекшие на момент now сессии и возвращает их количество
func (r *Repository[T]) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.items {
		if r.expired(s, now) {
			delete(r.items, id)
			removed++
		}
	}
	return removed
}

// Count количество сессий в хранилище
func (r *Repository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *Repository[T]) expired(s T, now time.Time) bool {
	if r.ttl <= 0 {
		return false
	}
	return now.Sub(s.LastActivity()) > r.ttl
}
