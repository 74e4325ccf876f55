package host

import (
	"fmt"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

// Manager keeps at most one mounted host. Switching games stops the old
// host, releasing its clock and subscriptions, before the new one starts,
// so two sessions never draw to the same surface.
type Manager struct {
	opts    Options
	cfgs    *config.Store
	current *Host
}

// NewManager creates a manager that builds hosts with opts and games
// from cfgs.
func NewManager(opts Options, cfgs *config.Store) *Manager {
	return &Manager{opts: opts, cfgs: cfgs}
}

// Current returns the mounted host, or nil.
func (m *Manager) Current() *Host {
	return m.current
}

// Switch creates the game id and mounts it on surface.
func (m *Manager) Switch(id string, surface Surface) (*Host, error) {
	g, err := registry.Create(id, m.cfgs)
	if err != nil {
		return nil, fmt.Errorf("host: switch to %s: %w", id, err)
	}

	m.Close()

	h := New(g, surface, m.opts)
	m.current = h
	h.Start()
	return h, nil
}

// Close stops the mounted host, if any.
func (m *Manager) Close() {
	if m.current == nil {
		return
	}
	m.current.Stop()
	m.current = nil
}
