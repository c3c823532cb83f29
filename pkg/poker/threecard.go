package poker

import "math/bits"

// The conceptual three-card hand shapes. Each ladder maps a shape to
// its rung; the two house rules disagree on where trips sit.
const (
	threeHigh = iota
	threePair
	threeFlush
	threeStraight
	threeTrips
	threeStraightFlush
)

// Standard three-card poker: straight flush > trips > straight > flush
// > pair > high card.
var threeCardStdLadder = [6]int32{
	threeHigh:          1,
	threePair:          2,
	threeFlush:         3,
	threeStraight:      4,
	threeTrips:         5,
	threeStraightFlush: 6,
}

// Alternate house ladder where trips beat everything, even the straight
// flush.
var threeCardAltLadder = [6]int32{
	threeHigh:          1,
	threePair:          2,
	threeFlush:         3,
	threeStraight:      4,
	threeStraightFlush: 5,
	threeTrips:         6,
}

var threeCardNames = [...]string{
	threeHigh:          "high card",
	threePair:          "pair",
	threeFlush:         "flush",
	threeStraight:      "straight",
	threeTrips:         "three of a kind",
	threeStraightFlush: "straight flush",
}

// threeCardName names a shape carried in an eval's minor field; the
// rung alone is ambiguous because the two ladders disagree on it.
func threeCardName(shape int32) string {
	if int(shape) < len(threeCardNames) {
		return threeCardNames[shape]
	}
	return "no hand"
}

// straight3Top finds the highest rank topping a three-card run,
// counting A-2-3.
func straight3Top(rm uint16) (Rank, bool) {
	m := uint32(rm) << 1
	m |= uint32(rm >> 12 & 1)
	run := m & (m >> 1) & (m >> 2)
	if run == 0 {
		return Two, false
	}
	return Rank(bits.Len32(run)), true
}

// evaluateThreeCard ranks exactly three cards on the given ladder. The
// rung goes in the category field and decides the comparison; the shape
// rides in the minor field (constant per rung, so it never disturbs the
// order) so String can name the hand without knowing the ladder.
func (cs CardSet) evaluateThreeCard(scheme evalScheme, ladder [6]int32) Eval {
	rm := cs.RankMask()
	flush := cs.CountSuits() == 1
	top, straight := straight3Top(rm)
	shape := threeHigh
	var major Rank
	var kickers uint16
	switch {
	case straight && flush:
		shape = threeStraightFlush
		major = top
	case cs.CountMaxRank() == 3:
		shape = threeTrips
		major, _ = cs.TopRank()
	case straight:
		shape = threeStraight
		major = top
	case flush:
		shape = threeFlush
		kickers = rm
	case cs.CountRanks() == 2:
		shape = threePair
		major = cs.pairedRank()
		kickers = rm &^ rankBit(major)
	default:
		kickers = rm
	}
	return packEval(scheme, ladder[shape], int32(major), int32(shape), kickers)
}

// pairedRank returns the rank appearing more than once.
func (cs CardSet) pairedRank() Rank {
	for r := Ace; r >= Two; r-- {
		if cs.CountRank(r) >= 2 {
			return r
		}
	}
	return Two
}
