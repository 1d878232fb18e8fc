package holdem

import (
	"holdemsrv/cards"
	"holdemsrv/wire"
)

// Seat is one occupied table position. A seat persists across hands; the
// in-hand fields are reset every time a hand finishes.
type Seat struct {
	Index            int // stable per-seat ordinal used for turn order
	PlayerID         int // -1 when vacant
	Chips            int
	CurrentBet       int // chips committed in the active betting round
	TotalBetThisHand int
	InHand           bool
	Folded           bool
	AllIn            bool
	PendingLeave     bool
	SittingOut       bool
	AutoMode         bool
	Hole             [2]cards.Card // valid only while InHand
}

// Occupied reports whether a live player holds the seat.
func (s *Seat) Occupied() bool { return s.PlayerID >= 0 && !s.PendingLeave }

// CanAct reports whether the seat may take a betting action.
func (s *Seat) CanAct() bool { return s.InHand && !s.Folded && !s.AllIn }

// Write serializes the seat. Hole cards are written only when includeHole is
// set (own seat, or showdown on an unfolded hand); a flag byte tells the
// reader whether they follow.
func (s *Seat) Write(p *wire.Packet, includeHole bool) {
	p.WriteInt32(int32(s.Index))
	p.WriteInt32(int32(s.PlayerID))
	p.WriteInt32(int32(s.Chips))
	p.WriteInt32(int32(s.CurrentBet))
	p.WriteInt32(int32(s.TotalBetThisHand))
	p.WriteUint8(boolByte(s.InHand))
	p.WriteUint8(boolByte(s.Folded))
	p.WriteUint8(boolByte(s.AllIn))
	p.WriteUint8(boolByte(s.PendingLeave))
	p.WriteUint8(boolByte(s.SittingOut))
	p.WriteUint8(boolByte(s.AutoMode))
	p.WriteUint8(boolByte(includeHole))
	if includeHole {
		writeCard(p, s.Hole[0])
		writeCard(p, s.Hole[1])
	}
}

// Read deserializes a seat written by Write, detecting from the stream
// whether hole cards are present.
func (s *Seat) Read(p *wire.Packet) {
	s.Index = int(p.ReadInt32())
	s.PlayerID = int(p.ReadInt32())
	s.Chips = int(p.ReadInt32())
	s.CurrentBet = int(p.ReadInt32())
	s.TotalBetThisHand = int(p.ReadInt32())
	s.InHand = p.ReadUint8() != 0
	s.Folded = p.ReadUint8() != 0
	s.AllIn = p.ReadUint8() != 0
	s.PendingLeave = p.ReadUint8() != 0
	s.SittingOut = p.ReadUint8() != 0
	s.AutoMode = p.ReadUint8() != 0
	if p.ReadUint8() != 0 {
		s.Hole[0] = readCard(p)
		s.Hole[1] = readCard(p)
	} else {
		s.Hole = [2]cards.Card{}
	}
}

func writeCard(p *wire.Packet, c cards.Card) {
	p.WriteUint8(c.Rank)
	p.WriteUint8(c.Suit)
}

func readCard(p *wire.Packet) cards.Card {
	rank := p.ReadUint8()
	suit := p.ReadUint8()
	return cards.Card{Rank: rank, Suit: suit}
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
