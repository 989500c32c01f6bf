package config

import "sync/atomic"

// Store holds the active configuration and allows it to be atomically
// replaced on reload. Readers always observe a complete snapshot; a
// configuration obtained from Load is never mutated afterwards.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a store holding cfg.
func NewStore(cfg *Config) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Load returns the active configuration snapshot.
func (s *Store) Load() *Config {
	return s.current.Load()
}

// Replace swaps in a new configuration. In-flight requests keep the
// snapshot they started with.
func (s *Store) Replace(cfg *Config) {
	s.current.Store(cfg)
}
