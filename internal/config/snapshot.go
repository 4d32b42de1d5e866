package config

import "sync/atomic"

// Snapshot holds the current immutable configuration and supports atomic
// reload: a new Config is swapped in whole, so rankings already in flight
// keep the snapshot they loaded and are unaffected.
type Snapshot struct {
	current atomic.Pointer[Config]
}

// NewSnapshot creates a holder seeded with cfg.
func NewSnapshot(cfg *Config) *Snapshot {
	s := &Snapshot{}
	s.current.Store(cfg)
	return s
}

// Load returns the current configuration. Callers must treat the result
// as read-only.
func (s *Snapshot) Load() *Config {
	return s.current.Load()
}

// Swap installs a new configuration after validating it. The previous
// snapshot stays valid for readers that already hold it.
func (s *Snapshot) Swap(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.current.Store(cfg)
	return nil
}
