package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdemsrv/player"
	"holdemsrv/wire"
)

func TestChatRoom_QueuesUntilTick(t *testing.T) {
	r := NewChatRoom(1, "lobby")
	p1 := player.New(1, "alice", "c1")
	p2 := player.New(2, "bob", "c2")
	require.Equal(t, wire.ErrNone, r.AddPlayer(p1))
	require.Equal(t, wire.ErrNone, r.AddPlayer(p2))

	msg := wire.NewPacket(wire.MsgServerSendText)
	msg.WriteString("hello")
	r.HandleMessage(p1, msg)

	assert.Empty(t, drainPackets(t, p2), "nothing is relayed before the tick")

	r.Tick(time.Now())

	got := drainPackets(t, p2)
	require.NotEmpty(t, got)

	last := got[len(got)-1]
	require.Equal(t, wire.MsgClientSendText, last.Type())
	assert.Equal(t, int32(p1.ID), last.ReadInt32())
	assert.Equal(t, "alice", last.ReadString())
	assert.Equal(t, "hello", last.ReadString())
}

func TestChatRoom_JoinAndLeaveNotices(t *testing.T) {
	r := NewChatRoom(1, "lobby")
	p1 := player.New(1, "alice", "c1")
	p2 := player.New(2, "bob", "c2")
	require.Equal(t, wire.ErrNone, r.AddPlayer(p1))
	require.Equal(t, wire.ErrNone, r.AddPlayer(p2))
	r.RemovePlayer(p2)

	r.Tick(time.Now())

	got := drainPackets(t, p1)
	require.Len(t, got, 3)

	texts := make([]string, 0, len(got))
	for _, pkt := range got {
		require.Equal(t, wire.MsgClientSendText, pkt.Type())
		assert.Equal(t, int32(-1), pkt.ReadInt32(), "notices carry no player id")
		pkt.ReadString() // empty notice name
		texts = append(texts, pkt.ReadString())
	}
	assert.Equal(t, []string{"alice joined", "bob joined", "bob left"}, texts)
}

func TestChatRoom_RejectsDoubleJoin(t *testing.T) {
	r := NewChatRoom(1, "lobby")
	p := player.New(1, "alice", "c1")
	require.Equal(t, wire.ErrNone, r.AddPlayer(p))
	assert.Equal(t, wire.ErrAlreadyInRoom, r.AddPlayer(p))
}

func TestChatRoom_EmptyTextDropped(t *testing.T) {
	r := NewChatRoom(1, "lobby")
	p := player.New(1, "alice", "c1")
	require.Equal(t, wire.ErrNone, r.AddPlayer(p))
	r.Tick(time.Now()) // flush the join notice
	drainPackets(t, p)

	msg := wire.NewPacket(wire.MsgServerSendText)
	msg.WriteString("")
	r.HandleMessage(p, msg)
	r.Tick(time.Now())

	assert.Empty(t, drainPackets(t, p))
}
