package room

import (
	"time"

	"holdemsrv/player"
	"holdemsrv/wire"
)

// chatLine is one queued chat message. PlayerID is -1 for room notices.
type chatLine struct {
	playerID int
	name     string
	text     string
}

// ChatRoom is a plain text room. Inbound messages are queued and flushed as
// a batch on the next tick rather than relayed immediately, so every
// occupant sees the same ordering.
type ChatRoom struct {
	baseRoom
	pending []chatLine
}

// NewChatRoom creates an empty chat room.
func NewChatRoom(id int, name string) *ChatRoom {
	return &ChatRoom{baseRoom: newBaseRoom(id, name)}
}

func (r *ChatRoom) Kind() Kind { return KindChat }

func (r *ChatRoom) AddPlayer(p *player.Player) wire.ErrCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[p.ID]; ok {
		return wire.ErrAlreadyInRoom
	}
	r.players[p.ID] = p
	r.pending = append(r.pending, chatLine{playerID: -1, text: p.Name + " joined"})
	return wire.ErrNone
}

func (r *ChatRoom) RemovePlayer(p *player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[p.ID]; !ok {
		return
	}
	delete(r.players, p.ID)
	r.pending = append(r.pending, chatLine{playerID: -1, text: p.Name + " left"})
}

func (r *ChatRoom) HandleMessage(p *player.Player, pkt *wire.Packet) {
	switch pkt.Type() {
	case wire.MsgServerSendText:
		text := pkt.ReadString()
		if text == "" {
			return
		}
		r.mu.Lock()
		r.pending = append(r.pending, chatLine{playerID: p.ID, name: p.Name, text: text})
		r.mu.Unlock()
	default:
		sendError(p, wire.ErrUnknownMsg)
	}
}

// Tick flushes every queued line to all occupants.
func (r *ChatRoom) Tick(time.Time) {
	r.mu.Lock()
	lines := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, line := range lines {
		pkt := wire.NewPacket(wire.MsgClientSendText)
		pkt.WriteInt32(int32(line.playerID))
		pkt.WriteString(line.name)
		pkt.WriteString(line.text)
		r.broadcast(pkt)
	}
}
