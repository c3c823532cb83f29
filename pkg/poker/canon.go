package poker

import (
	"math/bits"

	"golang.org/x/exp/slices"
)

// A SuitPermutation maps each source suit to a destination suit,
// indexed by the source.
type SuitPermutation [4]Suit

var identityPermutation = SuitPermutation{Clubs, Diamonds, Hearts, Spades}

// suitPermutations holds all 24 relabelings of the four suits.
var suitPermutations = allSuitPermutations()

func allSuitPermutations() []SuitPermutation {
	var perms []SuitPermutation
	for _, c := range Suits {
		for _, d := range Suits {
			if d == c {
				continue
			}
			for _, h := range Suits {
				if h == c || h == d {
					continue
				}
				s := Clubs + Diamonds + Hearts + Spades - c - d - h
				perms = append(perms, SuitPermutation{c, d, h, s})
			}
		}
	}
	return perms
}

// mapSuits moves each suit's 13-bit block to its destination under p.
func (cs CardSet) mapSuits(p SuitPermutation) CardSet {
	var m uint64
	for _, s := range Suits {
		m |= uint64(cs.SuitMask(s)) << (uint(p[s]) * 13)
	}
	return CardSet{m}
}

// RotateSuits relabels clubs, diamonds, hearts and spades to the four
// given suits. The arguments must form a permutation.
func (cs CardSet) RotateSuits(c, d, h, s Suit) CardSet {
	return cs.mapSuits(SuitPermutation{c, d, h, s})
}

// FlipSuits inverts the suit order, {cdhs} -> {shdc}.
func (cs CardSet) FlipSuits() CardSet {
	return cs.RotateSuits(Spades, Hearts, Diamonds, Clubs)
}

// Canonize relabels suits into canonical form: suits ordered by
// descending card count, ties broken by descending rank content, are
// assigned to clubs, diamonds, hearts, spades in turn. All
// suit-isomorphic sets collapse to the same result, and canonizing a
// canonical set is a no-op.
func (cs CardSet) Canonize() CardSet {
	masks := []uint16{
		cs.SuitMask(Clubs),
		cs.SuitMask(Diamonds),
		cs.SuitMask(Hearts),
		cs.SuitMask(Spades),
	}
	slices.SortFunc(masks, func(a, b uint16) bool {
		na, nb := bits.OnesCount16(a), bits.OnesCount16(b)
		if na != nb {
			return na > nb
		}
		return a > b
	})
	var m uint64
	for i, sm := range masks {
		m |= uint64(sm) << (uint(i) * 13)
	}
	return CardSet{m}
}

// CanonizeRelative relabels the set with the permutation that canonizes
// board, so that a hand and its board stay mutually consistent.
func (cs CardSet) CanonizeRelative(board CardSet) CardSet {
	p, ok := FindSuitPermutation(board, board.Canonize())
	if !ok {
		// A set is always suit-isomorphic to its canonical form.
		return cs.Canonize()
	}
	return cs.mapSuits(p)
}

// CanonizeToBoard canonizes a hand relative to a board.
func CanonizeToBoard(board, hand CardSet) CardSet {
	return hand.CanonizeRelative(board)
}

// FindSuitPermutation searches the 24 suit relabelings for one mapping
// source onto dest exactly. The second result is false when the two
// sets are not suit-isomorphic.
func FindSuitPermutation(source, dest CardSet) (SuitPermutation, bool) {
	for _, p := range suitPermutations {
		if source.mapSuits(p) == dest {
			return p, true
		}
	}
	return identityPermutation, false
}
