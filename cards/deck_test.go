package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck_Has52UniqueCards(t *testing.T) {
	d := NewDeck()
	assert.Equal(t, 52, d.Size())

	seen := map[Card]bool{}
	for !d.Empty() {
		c := d.Draw()
		assert.True(t, c.IsValid(), "dealt card should be valid")
		assert.False(t, seen[c], "card %s dealt twice", c)
		seen[c] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_DrawFromEmptyReturnsInvalid(t *testing.T) {
	d := NewDeck()
	for i := 0; i < 52; i++ {
		d.Draw()
	}

	c := d.Draw()
	assert.False(t, c.IsValid())
	assert.True(t, d.Empty())
}

func TestDeck_ShuffleIsDeterministicPerSeed(t *testing.T) {
	d1 := NewDeck()
	d2 := NewDeck()
	d1.Shuffle(rand.New(rand.NewSource(42)))
	d2.Shuffle(rand.New(rand.NewSource(42)))

	for i := 0; i < 52; i++ {
		assert.Equal(t, d1.Draw(), d2.Draw(), "same seed must deal the same order")
	}
}

func TestDeck_ResetRestoresFullDeck(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(1)))
	for i := 0; i < 30; i++ {
		d.Draw()
	}

	d.Reset()
	assert.Equal(t, 52, d.Size())
}

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", Card{Rank: 14, Suit: Spades}.String())
	assert.Equal(t, "T♦", Card{Rank: 10, Suit: Diamonds}.String())
	assert.Equal(t, "??", Card{}.String())
}

func TestCard_Less(t *testing.T) {
	assert.True(t, Card{Rank: 2, Suit: Clubs}.Less(Card{Rank: 3, Suit: Spades}))
	assert.True(t, Card{Rank: 9, Suit: Spades}.Less(Card{Rank: 9, Suit: Hearts}))
	assert.False(t, Card{Rank: 14, Suit: Spades}.Less(Card{Rank: 2, Suit: Clubs}))
}
