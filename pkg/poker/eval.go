package poker

import (
	"fmt"
	"math/bits"
)

// An Eval is the packed strength of one evaluated hand. Evals are
// totally ordered and larger always means stronger, lowball variants
// included, so `best > worst` holds uniformly. Evals from different
// variants are not comparable to each other.
//
// Layout, low to high: 13 kicker rank-mask bits, 4 minor-rank bits,
// 4 major-rank bits, 4 category bits, 3 scheme bits. Lowball schemes
// store every field complemented so that numeric order still ranks the
// better (lower) hand higher.
type Eval int32

// NoEval marks a hand that fails a variant's qualifier, e.g. an
// eight-or-better low that doesn't qualify. It orders below every real
// hand.
const NoEval Eval = 0

// Category is the rung of the standard five-card ladder. The zero value
// means the eval does not carry a five-card category (badugi and the
// three-card ladders).
type Category int32

const (
	NoPair Category = iota + 1
	OnePair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

const numCategories = int32(StraightFlush)

func (c Category) String() string {
	switch c {
	case NoPair:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case Trips:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case Quads:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	}
	return "no hand"
}

const (
	minorShift  = 13
	majorShift  = 17
	catShift    = 21
	schemeShift = 25
)

type evalScheme int32

const (
	schemeHigh evalScheme = iota
	schemeLowA5
	schemeLow27
	schemeBadugi
	schemeThreeCard
	schemeThreeCardAlt
	schemePairing
)

func packEval(scheme evalScheme, cat int32, major, minor int32, kickers uint16) Eval {
	return Eval(int32(scheme)<<schemeShift |
		cat<<catShift |
		major<<majorShift |
		minor<<minorShift |
		int32(kickers))
}

func packHigh(cat Category, major, minor Rank, kickers uint16) Eval {
	return packEval(schemeHigh, int32(cat), int32(major), int32(minor), kickers)
}

// invertLow re-packs a schemeHigh eval for a lowball scheme with every
// field complemented, which reverses the order while keeping all values
// above NoEval.
func invertLow(e Eval, scheme evalScheme) Eval {
	cat := numCategories + 1 - int32(e>>catShift&0xf)
	major := 12 - int32(e>>majorShift&0xf)
	minor := 12 - int32(e>>minorShift&0xf)
	kickers := ^uint16(e) & suitMask13
	return packEval(scheme, cat, major, minor, kickers)
}

func (e Eval) scheme() evalScheme {
	return evalScheme(e >> schemeShift & 0x7)
}

// kickerMask returns the 13 kicker bits, undoing lowball complementing.
func (e Eval) kickerMask() uint16 {
	k := uint16(e) & suitMask13
	switch e.scheme() {
	case schemeLowA5, schemeLow27, schemeBadugi:
		return ^k & suitMask13
	}
	return k
}

// Category returns the five-card ladder rung of the eval, or the zero
// Category for schemes that don't use that ladder.
func (e Eval) Category() Category {
	if e == NoEval {
		return 0
	}
	cat := int32(e >> catShift & 0xf)
	switch e.scheme() {
	case schemeHigh, schemePairing:
		return Category(cat)
	case schemeLowA5, schemeLow27:
		return Category(numCategories + 1 - cat)
	}
	return 0
}

func (e Eval) String() string {
	if e == NoEval {
		return "no qualifying hand"
	}
	switch e.scheme() {
	case schemeHigh, schemePairing:
		return e.Category().String()
	case schemeLowA5:
		return lowString(e, true)
	case schemeLow27:
		return lowString(e, false)
	case schemeBadugi:
		return fmt.Sprintf("%d-card badugi", e>>catShift&0xf)
	case schemeThreeCard, schemeThreeCardAlt:
		return threeCardName(int32(e >> minorShift & 0xf))
	}
	return "no hand"
}

func lowString(e Eval, aceLow bool) string {
	if cat := e.Category(); cat != NoPair {
		return cat.String() + " low"
	}
	km := e.kickerMask()
	if km == 0 {
		return "low"
	}
	top := Rank(bits.Len16(km) - 1)
	if aceLow {
		top = fromAceLow(top)
	}
	return top.String() + "-low"
}
