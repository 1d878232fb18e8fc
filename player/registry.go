package player

import "sync"

// Registry is the arena of live players, keyed by stable integer id. Ids
// are never reused within a process so a message referencing a departed
// player can only miss, not hit the wrong player.
type Registry struct {
	mu      sync.RWMutex
	players map[int]*Player
	nextID  int
}

// NewRegistry creates an empty player arena.
func NewRegistry() *Registry {
	return &Registry{players: make(map[int]*Player), nextID: 1}
}

// Create allocates a fresh id and registers a new player under it.
func (r *Registry) Create(name, connID string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	p := New(id, name, connID)
	r.players[id] = p
	return p
}

// Get looks up a live player, or nil.
func (r *Registry) Get(id int) *Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players[id]
}

// Remove expires and drops a player. No-op for unknown ids.
func (r *Registry) Remove(id int) {
	r.mu.Lock()
	p := r.players[id]
	delete(r.players, id)
	r.mu.Unlock()
	if p != nil {
		p.Expire()
	}
}

// Count returns the number of live players.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
