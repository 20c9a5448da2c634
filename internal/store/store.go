package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/orbitalos/orbitalos/internal/catalog"
	"github.com/orbitalos/orbitalos/internal/orbit"
)

// PositionModel computes a satellite's state at a given instant. The store
// treats it as opaque; the production implementation lives in internal/orbit.
type PositionModel interface {
	Propagate(e orbit.Elements, at time.Time) (orbit.Position, orbit.Velocity, error)
}

// Satellite is one tracked object as exposed to readers. ID and Name are
// immutable after construction; Position, Velocity and LastUpdated advance
// together on each refresh pass.
type Satellite struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Position    orbit.Position  `json:"position"`
	Velocity    *orbit.Velocity `json:"velocity,omitempty"`
	LastUpdated time.Time       `json:"last_updated"`

	elements orbit.Elements
}

// Store is the thread-safe satellite registry. All exported methods are safe
// for concurrent use; none holds the lock across I/O or serialization.
type Store struct {
	mu    sync.Mutex
	order []string
	sats  map[string]*Satellite
	now   func() time.Time // injectable for deterministic tests
}

// New builds a Store seeded from the given catalog entries. Insertion order
// is preserved for stable listing output. Positions are zero until the first
// RefreshAll.
func New(entries []catalog.Entry) *Store {
	s := &Store{
		order: make([]string, 0, len(entries)),
		sats:  make(map[string]*Satellite, len(entries)),
		now:   time.Now,
	}
	for _, e := range entries {
		if _, dup := s.sats[e.ID]; dup {
			continue
		}
		s.order = append(s.order, e.ID)
		s.sats[e.ID] = &Satellite{
			ID:       e.ID,
			Name:     e.Name,
			elements: e.Elements,
		}
	}
	return s
}

// Snapshot returns a fully-owned, ordered copy of the registry. The critical
// section is a plain copy-out; callers may serialize or mutate the result
// freely.
func (s *Store) Snapshot() []Satellite {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Satellite, 0, len(s.order))
	for _, id := range s.order {
		sat := *s.sats[id]
		if sat.Velocity != nil {
			v := *sat.Velocity
			sat.Velocity = &v
		}
		out = append(out, sat)
	}
	return out
}

// Count returns the number of tracked satellites.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// RefreshAll recomputes position, velocity and last_updated for every
// satellite using model, applying all results as one atomic pass: a
// concurrent Snapshot sees either the complete pre-refresh or complete
// post-refresh registry.
//
// Per-satellite model failures leave that satellite's previous state intact;
// the remaining satellites still update. The returned error aggregates the
// failures and is nil when every satellite propagated.
func (s *Store) RefreshAll(model PositionModel) error {
	type result struct {
		id  string
		pos orbit.Position
		vel orbit.Velocity
	}

	// Copy the work list out so the propagation math runs unlocked.
	s.mu.Lock()
	work := make([]struct {
		id string
		el orbit.Elements
	}, 0, len(s.order))
	for _, id := range s.order {
		work = append(work, struct {
			id string
			el orbit.Elements
		}{id, s.sats[id].elements})
	}
	s.mu.Unlock()

	at := s.now()
	results := make([]result, 0, len(work))
	var errs []error
	for _, w := range work {
		pos, vel, err := model.Propagate(w.el, at)
		if err != nil {
			errs = append(errs, fmt.Errorf("satellite %q: %w", w.id, err))
			continue
		}
		results = append(results, result{id: w.id, pos: pos, vel: vel})
	}

	// Single locked pass applies every successful result together.
	s.mu.Lock()
	for _, r := range results {
		sat, ok := s.sats[r.id]
		if !ok {
			continue
		}
		vel := r.vel
		sat.Position = r.pos
		sat.Velocity = &vel
		sat.LastUpdated = at
	}
	s.mu.Unlock()

	if len(errs) > 0 {
		return fmt.Errorf("refresh: %d of %d satellites failed: %w",
			len(errs), len(work), errors.Join(errs...))
	}
	return nil
}

// ApplyElements replaces the orbital elements of satellites the store already
// tracks. Unknown IDs are ignored - a catalog reload never grows or shrinks
// the registry. It returns the number of satellites updated. New elements
// take effect on the next refresh pass; positions are untouched here.
func (s *Store) ApplyElements(entries []catalog.Entry) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	applied := 0
	for _, e := range entries {
		sat, ok := s.sats[e.ID]
		if !ok {
			continue
		}
		sat.elements = e.Elements
		applied++
	}
	return applied
}
