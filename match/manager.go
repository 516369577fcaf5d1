package match

import (
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/core"
)

// Manager keeps all live matches keyed by id
type Manager struct {
	mu      sync.RWMutex
	matches map[uuid.UUID]*Match
}

// NewManager creates an empty match manager
func NewManager() *Manager {
	return &Manager{
		matches: make(map[uuid.UUID]*Match),
	}
}

// Create builds a match from opts and registers it
func (mg *Manager) Create(opts Options) *Match {
	m := NewMatch(opts)
	mg.Add(m)
	return m
}

// Add registers an existing match
func (mg *Manager) Add(m *Match) {
	mg.mu.Lock()
	defer mg.mu.Unlock()
	mg.matches[m.ID] = m
}

// Get returns the match with id
func (mg *Manager) Get(id uuid.UUID) (*Match, error) {
	mg.mu.RLock()
	defer mg.mu.RUnlock()

	m, ok := mg.matches[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return m, nil
}

// Remove stops and drops the match with id
func (mg *Manager) Remove(id uuid.UUID) error {
	mg.mu.Lock()
	m, ok := mg.matches[id]
	delete(mg.matches, id)
	mg.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	m.Scheduler.Stop()
	log.Printf("[match] %s removed", id)
	return nil
}

// Reset restarts the match with id
func (mg *Manager) Reset(id uuid.UUID) error {
	m, err := mg.Get(id)
	if err != nil {
		return err
	}
	m.Reset()
	return nil
}

// Len returns the number of live matches
func (mg *Manager) Len() int {
	mg.mu.RLock()
	defer mg.mu.RUnlock()
	return len(mg.matches)
}

// TickAll steps every match by dt, one goroutine per match, and waits for all
func (mg *Manager) TickAll(dt time.Duration) {
	matches := mg.list()

	var wg sync.WaitGroup
	wg.Add(len(matches))
	for _, m := range matches {
		core.Go(func() {
			defer wg.Done()
			m.Step(dt)
		})
	}
	wg.Wait()
}

// Snapshots returns counters of every match ordered by id
func (mg *Manager) Snapshots() []Snapshot {
	matches := mg.list()
	out := make([]Snapshot, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Snapshot())
	}
	return out
}

// list copies matches ordered by id
func (mg *Manager) list() []*Match {
	mg.mu.RLock()
	out := make([]*Match, 0, len(mg.matches))
	for _, m := range mg.matches {
		out = append(out, m)
	}
	mg.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Match) int {
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return out
}
