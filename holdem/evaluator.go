package holdem

import "holdemsrv/cards"

// HandRank is the hand category, high card through royal flush.
type HandRank int

const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handRankNames = [...]string{
	"high card", "one pair", "two pair", "three of a kind", "straight",
	"flush", "full house", "four of a kind", "straight flush", "royal flush",
}

func (r HandRank) String() string {
	if r < HighCard || r > RoyalFlush {
		return "unknown"
	}
	return handRankNames[r]
}

// Evaluate scores a 7-card set (two hole cards plus up to five community
// cards; unset slots hold the invalid card and are ignored). Strictly
// greater means strictly stronger, across any two 7-card sets. Identical
// scores mean a split pot.
//
// Encoding: category*10_000_000 plus tiebreaker card ranks packed
// most-significant-first at decimal weights 100_000, 1_000 and 10.
func Evaluate(hand [7]cards.Card) int {
	var rankCount [15]int
	var suitCount [4]int
	for _, c := range hand {
		if !c.IsValid() {
			continue
		}
		rankCount[c.Rank]++
		suitCount[c.Suit]++
	}

	flushSuit := -1
	for s := 0; s < 4; s++ {
		if suitCount[s] >= 5 {
			flushSuit = s
		}
	}

	var flushRanks [15]int
	if flushSuit >= 0 {
		for _, c := range hand {
			if c.IsValid() && int(c.Suit) == flushSuit {
				flushRanks[c.Rank]++
			}
		}
	}

	straightHigh := findStraightHigh(rankCount)
	straightFlushHigh := 0
	if flushSuit >= 0 {
		straightFlushHigh = findStraightHigh(flushRanks)
	}

	if straightFlushHigh == 14 {
		return score(RoyalFlush, 14)
	}
	if straightFlushHigh > 0 {
		return score(StraightFlush, straightFlushHigh)
	}

	// Four of a kind
	for r := 14; r >= 2; r-- {
		if rankCount[r] == 4 {
			kicker := 0
			for k := 14; k >= 2; k-- {
				if k != r && rankCount[k] > 0 {
					kicker = k
					break
				}
			}
			return score(FourOfAKind, r, kicker)
		}
	}

	// Full house
	tripRank, pairRank := 0, 0
	for r := 14; r >= 2; r-- {
		if rankCount[r] >= 3 && tripRank == 0 {
			tripRank = r
		} else if rankCount[r] >= 2 && pairRank == 0 {
			pairRank = r
		}
	}
	if tripRank > 0 && pairRank > 0 {
		return score(FullHouse, tripRank, pairRank)
	}

	if flushSuit >= 0 {
		return score(Flush, topRanks(flushRanks, 5, 0)...)
	}

	if straightHigh > 0 {
		return score(Straight, straightHigh)
	}

	if tripRank > 0 {
		kickers := topRanks(rankCount, 2, tripRank)
		return score(ThreeOfAKind, append([]int{tripRank}, kickers...)...)
	}

	var pairs []int
	for r := 14; r >= 2; r-- {
		if rankCount[r] >= 2 {
			pairs = append(pairs, r)
		}
	}

	if len(pairs) >= 2 {
		kicker := 0
		for r := 14; r >= 2; r-- {
			if r != pairs[0] && r != pairs[1] && rankCount[r] > 0 {
				kicker = r
				break
			}
		}
		return score(TwoPair, pairs[0], pairs[1], kicker)
	}

	if len(pairs) == 1 {
		kickers := topRanks(rankCount, 3, pairs[0])
		return score(OnePair, append([]int{pairs[0]}, kickers...)...)
	}

	return score(HighCard, topRanks(rankCount, 5, 0)...)
}

// RankOf extracts the category back out of an Evaluate score.
func RankOf(handScore int) HandRank {
	return HandRank(handScore / 10_000_000)
}

// findStraightHigh returns the high card of the best straight in the rank
// histogram, or 0 if there is none. The wheel (A-2-3-4-5) counts as a
// 5-high straight.
func findStraightHigh(rc [15]int) int {
	for high := 14; high >= 6; high-- {
		found := true
		for i := 0; i < 5; i++ {
			if rc[high-i] == 0 {
				found = false
				break
			}
		}
		if found {
			return high
		}
	}
	if rc[14] > 0 && rc[2] > 0 && rc[3] > 0 && rc[4] > 0 && rc[5] > 0 {
		return 5
	}
	return 0
}

// topRanks returns up to n distinct ranks present in the histogram, highest
// first, skipping the excluded rank.
func topRanks(rc [15]int, n, exclude int) []int {
	out := make([]int, 0, n)
	for r := 14; r >= 2 && len(out) < n; r-- {
		if r != exclude && rc[r] > 0 {
			out = append(out, r)
		}
	}
	return out
}

func score(rank HandRank, kickers ...int) int {
	s := int(rank) * 10_000_000
	mult := 100_000
	for i := 0; i < len(kickers) && i < 5; i++ {
		s += kickers[i] * mult
		mult /= 100
	}
	return s
}
