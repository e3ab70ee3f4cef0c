package tracks

import (
	"context"
	"sync"
)

// MemoryStore keeps tracking requests in-process. Used for local runs and tests.
// The zero value is ready to use.
type MemoryStore struct {
	mu      sync.RWMutex
	tracks  []TrackRequest
	byEmail map[string][]int // email -> indexes into tracks
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byEmail: make(map[string][]int)}
}

func (m *MemoryStore) Create(_ context.Context, url, email string, price float64) (TrackRequest, error) {
	t := newTrack(url, email, price)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byEmail == nil {
		m.byEmail = make(map[string][]int)
	}
	m.byEmail[email] = append(m.byEmail[email], len(m.tracks))
	m.tracks = append(m.tracks, t)
	return t, nil
}

// ListByEmail returns the email's requests in insertion order.
func (m *MemoryStore) ListByEmail(_ context.Context, email string) ([]TrackRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx := m.byEmail[email]
	res := make([]TrackRequest, 0, len(idx))
	for _, i := range idx {
		res = append(res, m.tracks[i])
	}
	return res, nil
}

func (m *MemoryStore) Close() error { return nil }
