package room

import (
	"context"
	"log"
	"sync"
	"time"

	"holdemsrv/account"
	"holdemsrv/player"
	"holdemsrv/wire"
)

// Registry owns every live room and routes each player's room-scoped
// traffic to the single room they occupy. Room-management messages are
// handled here; everything else is forwarded.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[int]Room
	standing map[int]bool
	nextID   int
	chips    account.ChipStore
}

// NewRegistry creates an empty registry. Poker rooms created through it
// share the given chip ledger.
func NewRegistry(chips account.ChipStore) *Registry {
	return &Registry{
		rooms:    make(map[int]Room),
		standing: make(map[int]bool),
		nextID:   1,
		chips:    chips,
	}
}

// CreateRoom builds and registers a room of the given kind. Unknown kinds
// are refused; the variant set is closed.
func (r *Registry) CreateRoom(kind Kind, name string) (Room, wire.ErrCode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	var rm Room
	switch kind {
	case KindChat:
		rm = NewChatRoom(id, name)
	case KindPoker:
		rm = NewPokerRoom(id, name, r.chips)
	default:
		return nil, wire.ErrRoomTypeUnknown
	}

	r.nextID++
	r.rooms[id] = rm
	log.Printf("room %d created (%s, %q)", id, kind, name)
	return rm, wire.ErrNone
}

// Get looks up a room by id, or nil.
func (r *Registry) Get(id int) Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[id]
}

// Rooms snapshots the current room list.
func (r *Registry) Rooms() []Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		out = append(out, rm)
	}
	return out
}

// RemoveRoom drops a room from the registry. Occupants are not evicted;
// callers remove players first.
func (r *Registry) RemoveRoom(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, id)
	delete(r.standing, id)
}

// MarkStanding exempts a room from empty-room removal.
func (r *Registry) MarkStanding(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[id]; ok {
		r.standing[id] = true
	}
}

// removeIfEmpty drops a deserted room so the registry does not accumulate
// abandoned tables. Standing rooms survive.
func (r *Registry) removeIfEmpty(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.standing[id] {
		return
	}
	if rm, ok := r.rooms[id]; ok && rm.Empty() {
		delete(r.rooms, id)
		log.Printf("room %d removed (empty)", id)
	}
}

// AddPlayerToRoom moves a player into a room. A player occupies at most one
// room; joining while in another is refused rather than silently moved.
func (r *Registry) AddPlayerToRoom(p *player.Player, roomID int) wire.ErrCode {
	if p.RoomID() >= 0 {
		return wire.ErrAlreadyInRoom
	}
	rm := r.Get(roomID)
	if rm == nil {
		return wire.ErrRoomNotFound
	}
	if code := rm.AddPlayer(p); code != wire.ErrNone {
		return code
	}
	p.SetRoomID(roomID)
	return wire.ErrNone
}

// RemovePlayerFromRoom withdraws a player from their current room.
func (r *Registry) RemovePlayerFromRoom(p *player.Player) wire.ErrCode {
	roomID := p.RoomID()
	if roomID < 0 {
		return wire.ErrNotInRoom
	}
	if rm := r.Get(roomID); rm != nil {
		rm.RemovePlayer(p)
		r.removeIfEmpty(roomID)
	}
	p.SetRoomID(-1)
	return wire.ErrNone
}

// HandleMessage is the inbound dispatch for one parsed packet: registry
// messages are served here, anything else goes to the player's room.
func (r *Registry) HandleMessage(p *player.Player, pkt *wire.Packet) {
	switch pkt.Type() {
	case wire.MsgServerTick:
		echo := pkt.ReadUint32()
		reply := wire.NewPacket(wire.MsgClientTick)
		reply.WriteUint32(echo)
		p.Send(reply)

	case wire.MsgServerCreateRoom:
		kind := Kind(pkt.ReadUint8())
		name := pkt.ReadString()
		rm, code := r.CreateRoom(kind, name)
		if code != wire.ErrNone {
			sendError(p, code)
			return
		}
		reply := wire.NewPacket(wire.MsgClientCreateRoom)
		reply.WriteInt32(int32(rm.ID()))
		p.Send(reply)

	case wire.MsgServerGotoRoom:
		roomID := int(pkt.ReadInt32())
		if code := r.AddPlayerToRoom(p, roomID); code != wire.ErrNone {
			sendError(p, code)
			return
		}
		rm := r.Get(roomID)
		reply := wire.NewPacket(wire.MsgClientGotoRoom)
		reply.WriteInt32(int32(roomID))
		reply.WriteUint8(uint8(rm.Kind()))
		reply.WriteString(rm.Name())
		p.Send(reply)

	case wire.MsgServerLeaveRoom:
		if code := r.RemovePlayerFromRoom(p); code != wire.ErrNone {
			sendError(p, code)
			return
		}
		p.Send(wire.NewPacket(wire.MsgClientLeaveRoom))

	case wire.MsgServerListRooms:
		rooms := r.Rooms()
		reply := wire.NewPacket(wire.MsgClientListRooms)
		reply.WriteUint16(uint16(len(rooms)))
		for _, rm := range rooms {
			reply.WriteInt32(int32(rm.ID()))
			reply.WriteUint8(uint8(rm.Kind()))
			reply.WriteString(rm.Name())
			reply.WriteUint16(uint16(rm.PlayerCount()))
		}
		p.Send(reply)

	default:
		roomID := p.RoomID()
		if roomID < 0 {
			sendError(p, wire.ErrNotInRoom)
			return
		}
		rm := r.Get(roomID)
		if rm == nil {
			p.SetRoomID(-1)
			sendError(p, wire.ErrRoomNotFound)
			return
		}
		rm.HandleMessage(p, pkt)
	}
}

// DropPlayer is the disconnect path: the player leaves their room (seat
// wind-down included) without any reply traffic.
func (r *Registry) DropPlayer(p *player.Player) {
	if roomID := p.RoomID(); roomID >= 0 {
		if rm := r.Get(roomID); rm != nil {
			rm.RemovePlayer(p)
			r.removeIfEmpty(roomID)
		}
		p.SetRoomID(-1)
	}
}

// TickAll advances every room once and sweeps out deserted rooms.
func (r *Registry) TickAll(now time.Time) {
	for _, rm := range r.Rooms() {
		rm.Tick(now)
		if rm.Empty() {
			r.removeIfEmpty(rm.ID())
		}
	}
}

// Run drives the tick loop at a fixed interval until the context ends.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.TickAll(now)
		}
	}
}
