package eqr

import (
	"math/bits"

	"github.com/lox/pokersolver/poker"
)

type wetness int

const (
	wetnessDry wetness = iota
	wetnessSemiWet
	wetnessWet
)

// classifyWetness scores board coordination from flush potential, straight
// potential, pairing, and high-card concentration, then buckets the score
// into three levels.
func classifyWetness(board poker.Hand) wetness {
	if board.CountCards() < 3 {
		return wetnessDry
	}

	score := 0

	maxSuit, monotone := flushPotential(board)
	switch {
	case monotone:
		score += 4
	case maxSuit >= 4:
		score += 4
	case maxSuit == 3:
		score += 3
	case maxSuit == 2:
		score += 1
	}

	connected := straightPotential(board)
	switch {
	case connected >= 4:
		score += 4
	case connected == 3:
		score += 3
	case connected == 2:
		score += 1
	}

	if countBoardPairs(board) >= 1 {
		score++
	}
	if countHighCards(board) >= 3 {
		score++
	}

	switch {
	case score <= 0:
		return wetnessDry
	case score <= 3:
		return wetnessSemiWet
	default:
		return wetnessWet
	}
}

func flushPotential(board poker.Hand) (maxSuitCount int, monotone bool) {
	nonZeroSuits := 0
	for suit := poker.Suit(0); suit < 4; suit++ {
		count := bits.OnesCount16(board.GetSuitMask(suit))
		if count == 0 {
			continue
		}
		nonZeroSuits++
		if count > maxSuitCount {
			maxSuitCount = count
		}
	}
	monotone = nonZeroSuits == 1 && board.CountCards() >= 3
	return maxSuitCount, monotone
}

func straightPotential(board poker.Hand) int {
	var rankMask uint16
	for suit := poker.Suit(0); suit < 4; suit++ {
		rankMask |= board.GetSuitMask(suit)
	}

	ranks := make([]int, 0, 7)
	for r := 0; r < 13; r++ {
		if rankMask&(1<<r) != 0 {
			ranks = append(ranks, r)
		}
	}
	if len(ranks) == 0 {
		return 0
	}

	maxConnected, current := 1, 1
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] == 1 {
			current++
			if current > maxConnected {
				maxConnected = current
			}
		} else {
			current = 1
		}
	}

	if rankMask&(1<<poker.Ace) != 0 {
		wheelConnected, prev := 1, -1
		for _, r := range ranks {
			if r > 3 {
				continue
			}
			if prev == -1 || r-prev == 1 {
				wheelConnected++
			} else {
				wheelConnected = 2
			}
			prev = r
		}
		if wheelConnected > maxConnected {
			maxConnected = wheelConnected
		}
	}

	return maxConnected
}

func countBoardPairs(board poker.Hand) int {
	var counts [13]int
	for suit := poker.Suit(0); suit < 4; suit++ {
		mask := board.GetSuitMask(suit)
		for r := uint8(0); r < 13; r++ {
			if mask&(1<<r) != 0 {
				counts[r]++
			}
		}
	}
	pairs := 0
	for _, c := range counts {
		if c >= 2 {
			pairs++
		}
	}
	return pairs
}

func countHighCards(board poker.Hand) int {
	count := 0
	for suit := poker.Suit(0); suit < 4; suit++ {
		count += bits.OnesCount16(board.GetSuitMask(suit) & 0x1F00)
	}
	return count
}
