package room

import (
	"sync"
	"time"

	"holdemsrv/player"
	"holdemsrv/wire"
)

// Kind discriminates the closed set of room variants.
type Kind uint8

const (
	KindChat Kind = iota
	KindPoker
)

func (k Kind) String() string {
	switch k {
	case KindChat:
		return "chat"
	case KindPoker:
		return "poker"
	}
	return "unknown"
}

// Room is the contract every room variant implements. The registry routes a
// player's room-scoped messages to the one room they occupy and drives all
// rooms from a single tick loop.
type Room interface {
	ID() int
	Name() string
	Kind() Kind

	// AddPlayer admits a player. ErrNone on success.
	AddPlayer(p *player.Player) wire.ErrCode

	// RemovePlayer withdraws a player; any table position is wound down
	// without disturbing a hand in flight.
	RemovePlayer(p *player.Player)

	// HandleMessage processes one inbound packet from an occupant.
	HandleMessage(p *player.Player, pkt *wire.Packet)

	// Tick advances time-driven behavior. Called from the registry loop.
	Tick(now time.Time)

	PlayerCount() int

	// Empty reports whether the room has fully wound down and may be
	// removed from the registry.
	Empty() bool
}

// baseRoom carries the occupancy bookkeeping shared by all variants. The
// single RWMutex also guards each variant's own state: mutations take the
// write lock, snapshots the read lock, and no blocking I/O ever happens
// under either.
type baseRoom struct {
	id   int
	name string

	mu      sync.RWMutex
	players map[int]*player.Player
}

func newBaseRoom(id int, name string) baseRoom {
	return baseRoom{id: id, name: name, players: make(map[int]*player.Player)}
}

func (r *baseRoom) ID() int      { return r.id }
func (r *baseRoom) Name() string { return r.name }

func (r *baseRoom) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}

func (r *baseRoom) Empty() bool { return r.PlayerCount() == 0 }

// occupants snapshots the player list so sends happen outside the lock.
func (r *baseRoom) occupants() []*player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	return out
}

// broadcast queues a packet to every occupant.
func (r *baseRoom) broadcast(pkt *wire.Packet) {
	for _, p := range r.occupants() {
		p.Send(pkt)
	}
}

// sendError reports a discrete failure back to one player.
func sendError(p *player.Player, code wire.ErrCode) {
	pkt := wire.NewPacket(wire.MsgClientErrorRespond)
	pkt.WriteUint16(uint16(code))
	p.Send(pkt)
}
