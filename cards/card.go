package cards

import "fmt"

// Rank bounds for a standard deck. Aces rank high.
const (
	RankMin   = 2
	RankMax   = 14
	SuitCount = 4
)

// Suits, in deck-building order.
const (
	Spades uint8 = iota
	Hearts
	Diamonds
	Clubs
)

// Card is an immutable rank/suit pair. The zero value is the invalid
// sentinel: it is never dealt and signals a drained deck or an unset slot.
type Card struct {
	Rank uint8 // 2..14, 14 = Ace
	Suit uint8 // 0..3
}

// IsValid reports whether the card is one of the 52 real cards.
func (c Card) IsValid() bool {
	return c.Rank >= RankMin && c.Rank <= RankMax && c.Suit < SuitCount
}

// Less orders cards by rank, then suit.
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

var rankNames = [RankMax + 1]string{2: "2", 3: "3", 4: "4", 5: "5", 6: "6", 7: "7", 8: "8", 9: "9", 10: "T", 11: "J", 12: "Q", 13: "K", 14: "A"}
var suitNames = [SuitCount]string{"♠", "♥", "♦", "♣"}

// String returns the short form of the card, e.g. "A♠" or "T♦".
func (c Card) String() string {
	if !c.IsValid() {
		return "??"
	}
	return fmt.Sprintf("%s%s", rankNames[c.Rank], suitNames[c.Suit])
}
