package holdem

import (
	"holdemsrv/cards"
	"holdemsrv/wire"
)

// SidePot is one pot and the players allowed to contest it. Pots are rebuilt
// from scratch every time bets are swept off the seats, never mutated in
// place across betting rounds.
type SidePot struct {
	Amount   int
	Eligible []int // player ids, folded contributors excluded
}

// PlayerHandResult is one player's line in a finished hand.
type PlayerHandResult struct {
	PlayerID int
	HandRank int // Evaluate score; 0 for folded players
	ChipsWon int
	Folded   bool
	Hole     [2]cards.Card
}

// HandResult is the settlement record for one finished hand. It is produced
// once under the room's write lock and consumed exactly once by the
// broadcast layer.
type HandResult struct {
	Players   []PlayerHandResult
	Community []cards.Card
	TotalPot  int
}

// Write serializes the result for the hand-result broadcast.
func (r *HandResult) Write(p *wire.Packet) {
	p.WriteInt32(int32(r.TotalPot))

	p.WriteUint8(uint8(len(r.Community)))
	for _, c := range r.Community {
		writeCard(p, c)
	}

	p.WriteUint8(uint8(len(r.Players)))
	for _, pr := range r.Players {
		p.WriteInt32(int32(pr.PlayerID))
		p.WriteInt32(int32(pr.HandRank))
		p.WriteInt32(int32(pr.ChipsWon))
		p.WriteUint8(boolByte(pr.Folded))
		writeCard(p, pr.Hole[0])
		writeCard(p, pr.Hole[1])
	}
}

// Read deserializes a result written by Write.
func (r *HandResult) Read(p *wire.Packet) {
	r.Clear()
	r.TotalPot = int(p.ReadInt32())

	communityCount := int(p.ReadUint8())
	for i := 0; i < communityCount; i++ {
		r.Community = append(r.Community, readCard(p))
	}

	playerCount := int(p.ReadUint8())
	for i := 0; i < playerCount; i++ {
		var pr PlayerHandResult
		pr.PlayerID = int(p.ReadInt32())
		pr.HandRank = int(p.ReadInt32())
		pr.ChipsWon = int(p.ReadInt32())
		pr.Folded = p.ReadUint8() != 0
		pr.Hole[0] = readCard(p)
		pr.Hole[1] = readCard(p)
		r.Players = append(r.Players, pr)
	}
}

// Clear empties the record for reuse.
func (r *HandResult) Clear() {
	r.Players = nil
	r.Community = nil
	r.TotalPot = 0
}
