// Package ratelimit admits at most N requests per client within a trailing
// time window. Two backends share the same semantics: Memory keeps the
// timestamps in process, Redis keeps them in a sorted set per client so
// several service instances can share one window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of a single admission check.
type Decision struct {
	Allowed bool
	// Remaining is how many more requests the window admits after this one.
	Remaining int
	// RetryAfter is how long until the oldest request leaves the window.
	// Zero when allowed.
	RetryAfter time.Duration
}

// Memory is a sliding-window limiter keyed by client id.
//
// Each record holds the timestamps admitted within the window, oldest first.
// Records are pruned lazily on every check, swept by the janitor once they go
// quiet, and evicted least-recently-seen first when MaxClients is reached.
type Memory struct {
	mu      sync.Mutex
	records map[string]*record

	limit      int
	window     time.Duration
	maxClients int
	sweepEvery time.Duration
	now        func() time.Time
}

type record struct {
	hits     []time.Time
	lastSeen time.Time
}

type MemoryOption func(*Memory)

// WithMaxClients caps the number of tracked client records. Zero means no cap.
func WithMaxClients(n int) MemoryOption {
	return func(m *Memory) { m.maxClients = n }
}

// WithSweepEvery sets the janitor period. Zero disables the janitor.
func WithSweepEvery(d time.Duration) MemoryOption {
	return func(m *Memory) { m.sweepEvery = d }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// NewMemory returns a limiter admitting limit requests per window per client.
func NewMemory(limit int, window time.Duration, opts ...MemoryOption) *Memory {
	m := &Memory{
		records:    make(map[string]*record),
		limit:      limit,
		window:     window,
		maxClients: 10000,
		sweepEvery: time.Minute,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Allow records a request for key if the window has room.
// The read-prune-append sequence runs under one lock.
func (m *Memory) Allow(_ context.Context, key string) (Decision, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[key]
	if !ok {
		if m.maxClients > 0 && len(m.records) >= m.maxClients {
			m.makeRoomLocked(now)
		}
		rec = &record{}
		m.records[key] = rec
	}
	rec.lastSeen = now
	rec.hits = m.pruneLocked(rec.hits, now)

	if len(rec.hits) >= m.limit {
		return Decision{
			Allowed:    false,
			RetryAfter: m.window - now.Sub(rec.hits[0]),
		}, nil
	}

	rec.hits = append(rec.hits, now)
	return Decision{Allowed: true, Remaining: m.limit - len(rec.hits)}, nil
}

// pruneLocked drops timestamps that are a full window old or older.
func (m *Memory) pruneLocked(hits []time.Time, now time.Time) []time.Time {
	i := 0
	for i < len(hits) && now.Sub(hits[i]) >= m.window {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0], hits[i:]...)
}

// makeRoomLocked sweeps expired records and, if the table is still full,
// evicts the record seen least recently.
func (m *Memory) makeRoomLocked(now time.Time) {
	m.sweepLocked(now)
	if len(m.records) < m.maxClients {
		return
	}

	var oldestKey string
	var oldest time.Time
	for k, rec := range m.records {
		if oldestKey == "" || rec.lastSeen.Before(oldest) {
			oldestKey, oldest = k, rec.lastSeen
		}
	}
	if oldestKey != "" {
		delete(m.records, oldestKey)
		MetricEvictions.Inc()
	}
}

func (m *Memory) sweepLocked(now time.Time) int {
	removed := 0
	for k, rec := range m.records {
		rec.hits = m.pruneLocked(rec.hits, now)
		if len(rec.hits) == 0 {
			delete(m.records, k)
			removed++
		}
	}
	return removed
}

// Sweep removes every client whose window is empty and returns how many
// records were dropped.
func (m *Memory) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.sweepLocked(now)
	MetricTrackedClients.Set(float64(len(m.records)))
	return n
}

// Len returns the number of tracked clients.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// StartJanitor sweeps stale records periodically until ctx is done.
func (m *Memory) StartJanitor(ctx context.Context) {
	if m.sweepEvery <= 0 {
		return
	}

	t := time.NewTicker(m.sweepEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				m.Sweep()
			}
		}
	}()
}
