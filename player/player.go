package player

import (
	"sync"

	"holdemsrv/wire"
)

// sendBuffer is the outbound queue depth per player. A client that cannot
// drain this many packets is considered gone.
const sendBuffer = 256

// Player is one connected client. The transport layer owns the socket; the
// rest of the engine talks to the player only through the outbound queue
// and the stable integer id.
type Player struct {
	ID     int
	Name   string
	ConnID string // websocket session id

	mu      sync.Mutex
	roomID  int
	out     chan []byte
	expired bool
}

// New creates a player with an open outbound queue and no room.
func New(id int, name, connID string) *Player {
	return &Player{
		ID:     id,
		Name:   name,
		ConnID: connID,
		roomID: -1,
		out:    make(chan []byte, sendBuffer),
	}
}

// Out is the outbound packet queue, drained by the connection's write pump.
func (p *Player) Out() <-chan []byte { return p.out }

// Send queues a packet for delivery. The send never blocks: a player whose
// queue is full is expired instead, so one stuck socket cannot stall a
// room broadcast.
func (p *Player) Send(pkt *wire.Packet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.expired {
		return
	}
	select {
	case p.out <- pkt.Bytes():
	default:
		p.expired = true
		close(p.out)
	}
}

// Expire marks the player disconnected and closes the outbound queue.
// Safe to call more than once.
func (p *Player) Expire() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.expired {
		p.expired = true
		close(p.out)
	}
}

// Expired reports whether the player has been disconnected.
func (p *Player) Expired() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.expired
}

// RoomID returns the room the player currently occupies, or -1.
func (p *Player) RoomID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.roomID
}

// SetRoomID records the player's current room; -1 clears it.
func (p *Player) SetRoomID(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.roomID = id
}
