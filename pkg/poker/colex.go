package poker

import "math/bits"

// binomial[n][k] = C(n,k), enough for any subset of the 52-card deck.
var binomial = func() [DeckSize + 1][DeckSize + 1]int {
	var b [DeckSize + 1][DeckSize + 1]int
	for n := 0; n <= DeckSize; n++ {
		b[n][0] = 1
		for k := 1; k <= n; k++ {
			b[n][k] = b[n-1][k-1] + b[n-1][k]
		}
	}
	return b
}()

// Colex returns the colexicographic index of the set among all subsets
// of its size: the sum over the set's bit positions b_1 < ... < b_k of
// C(b_j, j). For fixed k it is a bijection onto [0, C(52,k)).
func (cs CardSet) Colex() int {
	idx := 0
	j := 1
	for m := cs.m; m != 0; m &= m - 1 {
		idx += binomial[bits.TrailingZeros64(m)][j]
		j++
	}
	return idx
}

// RankColex returns the colexicographic index of the set's rank mask
// within the 13-rank universe, ignoring suits. For a fixed number of
// distinct ranks k it is a bijection onto [0, C(13,k)).
func (cs CardSet) RankColex() int {
	return colex13(cs.RankMask())
}

func colex13(rm uint16) int {
	idx := 0
	j := 1
	for m := rm; m != 0; m &= m - 1 {
		idx += binomial[bits.TrailingZeros16(m)][j]
		j++
	}
	return idx
}
