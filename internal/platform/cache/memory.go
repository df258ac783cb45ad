package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type entry struct {
	value      []byte
	expiration time.Time
}

// Memory is a thread-safe in-process Cache.
// Values are stored JSON encoded so they behave the same as with Redis.
type Memory struct {
	data  map[string]entry
	mutex sync.RWMutex
	now   func() time.Time
	done  chan struct{}
	once  sync.Once
}

// MemoryOption is Memory option.
type MemoryOption func(*Memory)

// WithNow sets time source used to expire entries.
func WithNow(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory returns new Memory which removes expired entries every cleanupInterval.
// Non-positive interval disables the cleanup goroutine.
func NewMemory(cleanupInterval time.Duration, ops ...MemoryOption) *Memory {
	m := &Memory{
		data: make(map[string]entry),
		now:  time.Now,
		done: make(chan struct{}),
	}

	for _, op := range ops {
		op(m)
	}

	if cleanupInterval > 0 {
		go m.cleanupExpired(cleanupInterval)
	}

	return m
}

// Get decodes cached value into dest.
func (m *Memory) Get(_ context.Context, key string, dest any) error {
	m.mutex.RLock()
	item, ok := m.data[key]
	m.mutex.RUnlock()

	if !ok || m.now().After(item.expiration) {
		return ErrCacheMiss
	}

	if err := json.Unmarshal(item.value, dest); err != nil {
		return fmt.Errorf("can't decode cached value: %w", err)
	}

	return nil
}

// Set caches value for ttl.
func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("can't encode value: %w", err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.data[key] = entry{
		value:      encoded,
		expiration: m.now().Add(ttl),
	}

	return nil
}

// Delete removes cached value.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.data, key)

	return nil
}

// Len returns number of entries, including expired ones not removed yet.
func (m *Memory) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.data)
}

// Close stops the cleanup goroutine.
func (m *Memory) Close() {
	m.once.Do(func() {
		close(m.done)
	})
}

func (m *Memory) cleanupExpired(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.removeExpired()
		}
	}
}

func (m *Memory) removeExpired() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.now()
	for key, item := range m.data {
		if now.After(item.expiration) {
			delete(m.data, key)
		}
	}
}
