package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxPacketLen caps a single packet, header included.
const MaxPacketLen = 4096

// headerLen is the fixed prefix: message type (2 bytes) + total size (2 bytes).
const headerLen = 4

// Packet is the typed message envelope: a message-type tag followed by a
// byte payload read and written through fixed-width little-endian accessors.
// Reads past the end of the payload return zero values instead of failing,
// mirroring the degrade-gracefully policy of the rest of the engine.
type Packet struct {
	buf     []byte
	readPos int
}

// NewPacket creates an empty outbound packet for the given message type.
func NewPacket(t MsgType) *Packet {
	p := &Packet{
		buf:     make([]byte, headerLen, 64),
		readPos: headerLen,
	}
	binary.LittleEndian.PutUint16(p.buf[0:2], uint16(t))
	binary.LittleEndian.PutUint16(p.buf[2:4], headerLen)
	return p
}

// Parse wraps a received frame. The frame must carry a full header, a known
// message type, and a size matching the frame length.
func Parse(frame []byte) (*Packet, error) {
	if len(frame) < headerLen {
		return nil, errors.New("wire: frame shorter than header")
	}
	t := MsgType(binary.LittleEndian.Uint16(frame[0:2]))
	if !t.IsValid() {
		return nil, fmt.Errorf("wire: unknown message type %d", uint16(t))
	}
	size := int(binary.LittleEndian.Uint16(frame[2:4]))
	if size < headerLen || size > len(frame) || size > MaxPacketLen {
		return nil, fmt.Errorf("wire: bad packet size %d", size)
	}
	buf := make([]byte, size)
	copy(buf, frame[:size])
	return &Packet{buf: buf, readPos: headerLen}, nil
}

// Type returns the message-type tag.
func (p *Packet) Type() MsgType {
	return MsgType(binary.LittleEndian.Uint16(p.buf[0:2]))
}

// Bytes returns the full encoded packet, header included.
func (p *Packet) Bytes() []byte { return p.buf }

// Len returns the encoded length, header included.
func (p *Packet) Len() int { return len(p.buf) }

func (p *Packet) grow(n int) []byte {
	if len(p.buf)+n > MaxPacketLen {
		// Oversized writes are a programming error upstream; drop the write
		// rather than aborting the room.
		return nil
	}
	start := len(p.buf)
	p.buf = append(p.buf, make([]byte, n)...)
	binary.LittleEndian.PutUint16(p.buf[2:4], uint16(len(p.buf)))
	return p.buf[start:]
}

func (p *Packet) take(n int) []byte {
	if p.readPos+n > len(p.buf) {
		return nil
	}
	b := p.buf[p.readPos : p.readPos+n]
	p.readPos += n
	return b
}

func (p *Packet) WriteUint8(v uint8) {
	if b := p.grow(1); b != nil {
		b[0] = v
	}
}

func (p *Packet) WriteInt8(v int8) { p.WriteUint8(uint8(v)) }

func (p *Packet) WriteUint16(v uint16) {
	if b := p.grow(2); b != nil {
		binary.LittleEndian.PutUint16(b, v)
	}
}

func (p *Packet) WriteInt16(v int16) { p.WriteUint16(uint16(v)) }

func (p *Packet) WriteUint32(v uint32) {
	if b := p.grow(4); b != nil {
		binary.LittleEndian.PutUint32(b, v)
	}
}

func (p *Packet) WriteInt32(v int32) { p.WriteUint32(uint32(v)) }

// WriteString appends a length-prefixed UTF-8 string (uint16 length). A
// string that would push the packet past MaxPacketLen is dropped whole,
// prefix included, so the frame never promises bytes it does not carry.
func (p *Packet) WriteString(s string) {
	if len(p.buf)+2+len(s) > MaxPacketLen {
		return
	}
	p.WriteUint16(uint16(len(s)))
	if b := p.grow(len(s)); b != nil {
		copy(b, s)
	}
}

func (p *Packet) ReadUint8() uint8 {
	if b := p.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (p *Packet) ReadInt8() int8 { return int8(p.ReadUint8()) }

func (p *Packet) ReadUint16() uint16 {
	if b := p.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (p *Packet) ReadInt16() int16 { return int16(p.ReadUint16()) }

func (p *Packet) ReadUint32() uint32 {
	if b := p.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (p *Packet) ReadInt32() int32 { return int32(p.ReadUint32()) }

// ReadString reads a length-prefixed string written by WriteString.
func (p *Packet) ReadString() string {
	n := int(p.ReadUint16())
	if b := p.take(n); b != nil {
		return string(b)
	}
	return ""
}
