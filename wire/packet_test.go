package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacket_RoundTrip(t *testing.T) {
	p := NewPacket(MsgServerSendText)
	p.WriteUint8(7)
	p.WriteInt32(-1234567)
	p.WriteUint16(65000)
	p.WriteString("hello poker")

	parsed, err := Parse(p.Bytes())
	require.NoError(t, err)
	assert.Equal(t, MsgServerSendText, parsed.Type())
	assert.Equal(t, uint8(7), parsed.ReadUint8())
	assert.Equal(t, int32(-1234567), parsed.ReadInt32())
	assert.Equal(t, uint16(65000), parsed.ReadUint16())
	assert.Equal(t, "hello poker", parsed.ReadString())
}

func TestPacket_HeaderTracksSize(t *testing.T) {
	p := NewPacket(MsgServerTick)
	assert.Equal(t, 4, p.Len(), "empty packet is just the header")

	p.WriteUint32(99)
	assert.Equal(t, 8, p.Len())

	b := p.Bytes()
	// size field lives at bytes 2..3, little-endian
	assert.Equal(t, uint16(8), uint16(b[2])|uint16(b[3])<<8)
}

func TestParse_RejectsBadFrames(t *testing.T) {
	_, err := Parse([]byte{1, 0})
	assert.Error(t, err, "short frame")

	_, err = Parse([]byte{0xff, 0xff, 4, 0})
	assert.Error(t, err, "unknown message type")

	_, err = Parse([]byte{0, 0, 2, 0})
	assert.Error(t, err, "size smaller than header")

	_, err = Parse([]byte{0, 0, 200, 0})
	assert.Error(t, err, "size beyond frame")
}

func TestPacket_ReadPastEndYieldsZeroValues(t *testing.T) {
	p := NewPacket(MsgDebug)
	p.WriteUint8(42)

	assert.Equal(t, uint8(42), p.ReadUint8())
	assert.Equal(t, uint8(0), p.ReadUint8())
	assert.Equal(t, int32(0), p.ReadInt32())
	assert.Equal(t, "", p.ReadString())
}

func TestPacket_SelfReadableAfterWrite(t *testing.T) {
	p := NewPacket(MsgClientSitDown)
	p.WriteInt32(3)
	assert.Equal(t, int32(3), p.ReadInt32(), "a freshly built packet reads its own payload")
}

func TestPacket_WriteStopsAtMaxLen(t *testing.T) {
	p := NewPacket(MsgDebug)
	big := make([]byte, MaxPacketLen)
	for i := range big {
		big[i] = 'x'
	}
	p.WriteString(string(big)) // prefix + payload would overflow

	assert.LessOrEqual(t, p.Len(), MaxPacketLen)
}

func TestPacket_OversizedStringDroppedWhole(t *testing.T) {
	p := NewPacket(MsgDebug)
	big := make([]byte, MaxPacketLen)
	for i := range big {
		big[i] = 'x'
	}
	p.WriteString(string(big))

	// Neither the length prefix nor the payload lands: a frame must never
	// promise bytes it does not carry.
	assert.Equal(t, 4, p.Len(), "refused write leaves the packet untouched")
	assert.Equal(t, "", p.ReadString())

	p.WriteString("still usable")
	parsed, err := Parse(p.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "still usable", parsed.ReadString())
}

func TestMsgType_IsValid(t *testing.T) {
	assert.True(t, MsgConnect.IsValid())
	assert.True(t, MsgClientPokerSetBlinds.IsValid())
	assert.False(t, MsgType(9999).IsValid())
}
