package preset

import (
	"errors"

	"go.uber.org/atomic"

	"go.minekube.com/chatmsg/pkg/config"
)

// Store holds the current Registry and swaps it on config reloads.
// Builders already returned keep using the presets they were created with.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore returns a Store with the Registry of cfg.
func NewStore(cfg *config.Config) (*Store, error) {
	s := new(Store)
	if err := s.Update(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Load returns the current Registry.
func (s *Store) Load() *Registry {
	return s.current.Load()
}

// Update replaces the current Registry with the presets of cfg.
// An invalid cfg keeps the current Registry.
func (s *Store) Update(cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config must not be nil")
	}
	r, err := New(cfg)
	if err != nil {
		return err
	}
	s.current.Store(r)
	return nil
}
