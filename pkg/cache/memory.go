package cache

import (
	"context"
	"encoding/json"
	"path"
	"strconv"
	"sync"
	"time"
)

// MemoryCache is an in-process Cache implementation.
// Used in tests and in cache-less development runs; it mirrors the Redis
// semantics the services rely on (JSON values, atomic counters, sets, TTLs).
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	sets    map[string]*memorySet
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero = no expiry
}

type memorySet struct {
	members   map[string]struct{}
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*memoryEntry),
		sets:    make(map[string]*memorySet),
	}
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (s *memorySet) expired(now time.Time) bool {
	return !s.expiresAt.IsZero() && now.After(s.expiresAt)
}

// live returns the entry for key if present and unexpired. Callers hold mu.
func (m *MemoryCache) live(key string) *memoryEntry {
	e, ok := m.entries[key]
	if !ok {
		return nil
	}
	if e.expired(time.Now()) {
		delete(m.entries, key)
		return nil
	}
	return e
}

func (m *MemoryCache) liveSet(key string) *memorySet {
	s, ok := m.sets[key]
	if !ok {
		return nil
	}
	if s.expired(time.Now()) {
		delete(m.sets, key)
		return nil
	}
	return s
}

func (m *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.live(key)
	if e == nil {
		return false, nil
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e := &memoryEntry{data: data}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
		delete(m.sets, key)
	}
	return nil
}

func (m *MemoryCache) DeletePattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.entries, key)
		}
	}
	for key := range m.sets {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.sets, key)
		}
	}
	return nil
}

func (m *MemoryCache) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	if e := m.live(key); e != nil {
		parsed, err := strconv.ParseInt(string(e.data), 10, 64)
		if err != nil {
			return 0, err
		}
		n = parsed
	}
	n++

	expiresAt := time.Time{}
	if e, ok := m.entries[key]; ok {
		expiresAt = e.expiresAt
	}
	m.entries[key] = &memoryEntry{
		data:      []byte(strconv.FormatInt(n, 10)),
		expiresAt: expiresAt,
	}
	return n, nil
}

func (m *MemoryCache) SetAdd(ctx context.Context, key string, members ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.liveSet(key)
	if s == nil {
		s = &memorySet{members: make(map[string]struct{})}
		m.sets[key] = s
	}
	for _, member := range members {
		s.members[member] = struct{}{}
	}
	return nil
}

func (m *MemoryCache) SetMembers(ctx context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.liveSet(key)
	if s == nil {
		return []string{}, nil
	}
	members := make([]string, 0, len(s.members))
	for member := range s.members {
		members = append(members, member)
	}
	return members, nil
}

func (m *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.live(key) != nil || m.liveSet(key) != nil, nil
}

func (m *MemoryCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt := time.Now().Add(ttl)
	if e := m.live(key); e != nil {
		e.expiresAt = expiresAt
	}
	if s := m.liveSet(key); s != nil {
		s.expiresAt = expiresAt
	}
	return nil
}

func (m *MemoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e := m.live(key); e != nil && !e.expiresAt.IsZero() {
		return time.Until(e.expiresAt), nil
	}
	if s := m.liveSet(key); s != nil && !s.expiresAt.IsZero() {
		return time.Until(s.expiresAt), nil
	}
	return -1, nil
}

func (m *MemoryCache) Ping(ctx context.Context) error {
	return nil
}
