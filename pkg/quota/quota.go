// Package quota bounds accepted contact submissions per client address over a
// rolling window. It is best-effort abuse dampening, not a correctness-critical
// limit: store errors fail open and small races under concurrency are
// tolerated.
package quota

import (
	"context"
	"sync"
	"time"
)

type Limiter interface {
	// Admit reports whether another submission from key may proceed, and
	// records it when admitted.
	Admit(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Limit           int
	Window          time.Duration
	CleanupInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Limit:           5,
		Window:          time.Hour,
		CleanupInterval: 10 * time.Minute,
	}
}

type Option func(*MemoryStore)

// WithClock substitutes the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

// MemoryStore keeps per-address admission timestamps in process memory. State
// is lost on restart, which is accepted for single-instance deployments.
type MemoryStore struct {
	cfg  Config
	now  func() time.Time
	mu   sync.Mutex
	hits map[string][]time.Time
}

func NewMemoryStore(cfg Config, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		cfg:  cfg,
		now:  time.Now,
		hits: make(map[string][]time.Time),
	}

	for _, opt := range opts {
		opt(s)
	}

	if cfg.CleanupInterval > 0 {
		go s.sweep()
	}

	return s
}

func (s *MemoryStore) Admit(_ context.Context, key string) (bool, error) {
	now := s.now()
	cutoff := now.Add(-s.cfg.Window)

	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.hits[key][:0]
	for _, ts := range s.hits[key] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= s.cfg.Limit {
		s.hits[key] = recent
		return false, nil
	}

	s.hits[key] = append(recent, now)
	return true, nil
}

// sweep drops addresses whose every recorded hit has aged out, so the map does
// not grow without bound.
func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := s.now().Add(-s.cfg.Window)
		s.mu.Lock()
		for key, hits := range s.hits {
			if len(hits) == 0 || !hits[len(hits)-1].After(cutoff) {
				delete(s.hits, key)
			}
		}
		s.mu.Unlock()
	}
}
