package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// InMemoryClient is the test/local stand-in for the redis client. Values
// are stored JSON-encoded so both implementations share marshal semantics.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
	done    chan struct{}
}

type inMemoryEntry struct {
	payload []byte
	expAt   time.Time
}

func (e inMemoryEntry) expired() bool {
	return !e.expAt.IsZero() && e.expAt.Before(time.Now())
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	m := &InMemoryClient[T]{
		entries: make(map[string]inMemoryEntry),
		done:    make(chan struct{}),
	}

	go m.evictLoop()
	return m
}

func (m *InMemoryClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	m.mu.RLock()
	entry, found := m.entries[key]
	m.mu.RUnlock()

	if !found {
		return result, ErrNotExists
	}

	if entry.expired() {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return result, ErrNotExists
	}

	if err = json.Unmarshal(entry.payload, &result); err != nil {
		return result, err
	}

	return result, nil
}

func (m *InMemoryClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	payload, err := json.Marshal(object)
	if err != nil {
		return err
	}

	entry := inMemoryEntry{payload: payload}
	if ttl > 0 {
		entry.expAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *InMemoryClient[T]) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (result T, err error) {
	if opts.Callback == nil {
		return result, ErrCallbackNotProvided
	}

	obj, err := m.Get(ctx, opts.Key)
	if err == nil {
		return obj, nil
	}

	if err != ErrNotExists {
		return result, err
	}

	obj, err = opts.Callback()
	if err != nil {
		return result, err
	}

	if err = m.Set(ctx, opts.Key, obj, opts.TTL); err != nil {
		return result, err
	}

	return obj, nil
}

func (m *InMemoryClient[T]) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			for key, entry := range m.entries {
				if entry.expired() {
					delete(m.entries, key)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

// Close stops the eviction loop.
func (m *InMemoryClient[T]) Close() {
	close(m.done)
}
