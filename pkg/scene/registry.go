package scene

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the animated entities of the running scene. Writes happen
// at startup; per-frame evaluation only reads, so one registry serves the
// ticker and every API handler concurrently.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]*Entity)}
}

// LoadScene registers every entity in a scene.
func (r *Registry) LoadScene(s *Scene) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range s.Entities {
		r.entities[e.Name()] = e
	}
}

// Register adds a single entity.
func (r *Registry) Register(e *Entity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities[e.Name()] = e
}

// Get retrieves an entity by name.
func (r *Registry) Get(name string) (*Entity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[name]
	if !ok {
		return nil, fmt.Errorf("entity %q not found", name)
	}
	return e, nil
}

// Names returns all entity names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered entities.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entities)
}

// FramesAt evaluates every entity at the same instant. Order is stable
// (sorted by name) so streamed batches diff cleanly frame to frame.
func (r *Registry) FramesAt(elapsed float64) []Frame {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)

	frames := make([]Frame, 0, len(names))
	for _, name := range names {
		frames = append(frames, r.entities[name].FrameAt(elapsed))
	}
	return frames
}
