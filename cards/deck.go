package cards

import "math/rand"

// Deck holds the undealt portion of a 52-card deck. Draws come off the top
// (the end of the slice); a drained deck deals the invalid sentinel card
// rather than panicking.
type Deck struct {
	cards []Card
}

// NewDeck creates a full, unshuffled 52-card deck.
func NewDeck() *Deck {
	d := &Deck{}
	d.Reset()
	return d
}

// Reset restores all 52 unique cards in deterministic order.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	if d.cards == nil {
		d.cards = make([]Card, 0, 52)
	}
	for suit := uint8(0); suit < SuitCount; suit++ {
		for rank := uint8(RankMin); rank <= RankMax; rank++ {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
}

// Shuffle permutes the remaining cards using the given source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. Drawing from an empty deck returns
// the invalid card.
func (d *Deck) Draw() Card {
	if len(d.cards) == 0 {
		return Card{}
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Size returns the number of undealt cards.
func (d *Deck) Size() int { return len(d.cards) }

// Empty reports whether all cards have been drawn.
func (d *Deck) Empty() bool { return len(d.cards) == 0 }
