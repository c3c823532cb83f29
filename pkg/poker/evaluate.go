package poker

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Variant selects the ranking rule applied by Evaluate.
type Variant int8

const (
	High          Variant = iota // best five-card high hand
	HighRanks                    // high ladder ignoring suits
	HighFlush                    // suit length and rank only
	HighThreeCard                // three-card poker ladder
	LowA5                        // ace-to-five lowball
	Low8A5                       // ace-to-five low, eight-or-better qualifier
	Low2to7                      // deuce-to-seven lowball
	RanksLow2to7                 // rank component of deuce-to-seven
	SuitsLow2to7                 // suit component of deuce-to-seven
	ThreeCardPoker               // alternate three-card ladder
	Badugi                       // four-card badugi
	Pairing                      // rank-multiplicity pattern only
)

var variantNames = map[Variant]string{
	High:           "high",
	HighRanks:      "high ranks",
	HighFlush:      "high flush",
	HighThreeCard:  "three-card high",
	LowA5:          "A-5 low",
	Low8A5:         "A-5 low 8-or-better",
	Low2to7:        "2-7 low",
	RanksLow2to7:   "2-7 ranks low",
	SuitsLow2to7:   "2-7 suits low",
	ThreeCardPoker: "three-card poker",
	Badugi:         "badugi",
	Pairing:        "pairing",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Short game codes accepted by the eval tool and the evaluation service.
var variantCodes = map[string]Variant{
	"h":  High,
	"r":  HighRanks,
	"f":  HighFlush,
	"t":  HighThreeCard,
	"l":  LowA5,
	"8":  Low8A5,
	"k":  Low2to7,
	"kr": RanksLow2to7,
	"ks": SuitsLow2to7,
	"3":  ThreeCardPoker,
	"b":  Badugi,
	"p":  Pairing,
}

func ParseVariant(code string) (Variant, error) {
	if v, ok := variantCodes[code]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown game code '%s'", code)
}

// VariantCodes lists the codes accepted by ParseVariant.
func VariantCodes() []string {
	codes := maps.Keys(variantCodes)
	slices.Sort(codes)
	return codes
}

// Evaluate ranks the set under the given variant. The set size is a
// caller contract: five to seven cards for the five-card variants,
// exactly three for the three-card ladders, one to seven for badugi.
// Out-of-range sets yield unspecified results. The result is ordered so
// that comparing two Evals of the same variant picks the winner, with
// NoEval below every real hand.
func (cs CardSet) Evaluate(v Variant) Eval {
	switch v {
	case High:
		return cs.evaluateHigh()
	case HighRanks:
		return cs.evaluateHighRanks()
	case HighFlush:
		return cs.evaluateHighFlush()
	case HighThreeCard:
		return cs.evaluateThreeCard(schemeThreeCard, threeCardStdLadder)
	case LowA5:
		return cs.evaluateLowA5()
	case Low8A5:
		return cs.evaluate8LowA5()
	case Low2to7:
		return cs.evaluateLow2to7()
	case RanksLow2to7:
		return cs.evaluateRanksLow2to7()
	case SuitsLow2to7:
		return cs.evaluateSuitsLow2to7()
	case ThreeCardPoker:
		return cs.evaluateThreeCard(schemeThreeCardAlt, threeCardAltLadder)
	case Badugi:
		return cs.evaluateBadugi()
	case Pairing:
		return cs.evaluatePairing()
	}
	return NoEval
}

// topRanks keeps the n highest bits of a 13-bit rank mask.
func topRanks(rm uint16, n int) uint16 {
	for bits.OnesCount16(rm) > n {
		rm &= rm - 1
	}
	return rm
}

// flushMask returns the rank mask of a suit holding five or more cards,
// or zero. At most one suit of a seven-card set can qualify.
func (cs CardSet) flushMask() uint16 {
	for _, s := range Suits {
		if sm := cs.SuitMask(s); bits.OnesCount16(sm) >= 5 {
			return sm
		}
	}
	return 0
}

// rankGroups splits the set's ranks by multiplicity, each group ordered
// high to low. Fixed-size results keep the evaluators allocation-free;
// a seven-card set holds at most one quad, two trips and three pairs.
type rankGroups struct {
	quads, trips, pairs    [3]Rank
	nquads, ntrips, npairs int
}

func (cs CardSet) groupRanks() rankGroups {
	var g rankGroups
	for r := Ace; r >= Two; r-- {
		switch cs.CountRank(r) {
		case 4:
			g.quads[g.nquads] = r
			g.nquads++
		case 3:
			g.trips[g.ntrips] = r
			g.ntrips++
		case 2:
			g.pairs[g.npairs] = r
			g.npairs++
		}
	}
	return g
}

// evaluateHigh ranks the best five-card high hand: straight flush,
// quads, full house, flush, straight, trips, two pair, pair, high card.
func (cs CardSet) evaluateHigh() Eval {
	flush := cs.flushMask()
	if flush != 0 {
		if top, ok := straightTop(flush); ok {
			return packHigh(StraightFlush, top, 0, 0)
		}
	}
	e := cs.evaluateHighRanks()
	if flush != 0 && e.Category() < Flush {
		return packHigh(Flush, 0, 0, topRanks(flush, 5))
	}
	return e
}

// evaluateHighRanks ranks the same ladder as evaluateHigh but with
// suits ignored, so flushes and straight flushes never appear.
func (cs CardSet) evaluateHighRanks() Eval {
	rm := cs.RankMask()
	e := pairLadder(rm, cs.groupRanks())
	if top, ok := straightTop(rm); ok && e.Category() < Straight {
		return packHigh(Straight, top, 0, 0)
	}
	return e
}

// pairLadder packs the multiplicity rungs of the five-card ladder:
// quads, full house, trips, two pair, pair, high card. Straights and
// flushes are the caller's business. The rank domain of rm and g is
// whatever the caller chose, so the lowball evaluators reuse this with
// ace-low ranks.
func pairLadder(rm uint16, g rankGroups) Eval {
	switch {
	case g.nquads > 0:
		q := g.quads[0]
		return packHigh(Quads, q, 0, topRanks(rm&^rankBit(q), 1))
	case g.ntrips >= 2:
		return packHigh(FullHouse, g.trips[0], g.trips[1], 0)
	case g.ntrips == 1 && g.npairs > 0:
		return packHigh(FullHouse, g.trips[0], g.pairs[0], 0)
	case g.ntrips == 1:
		t := g.trips[0]
		return packHigh(Trips, t, 0, topRanks(rm&^rankBit(t), 2))
	case g.npairs >= 2:
		rest := rm &^ (rankBit(g.pairs[0]) | rankBit(g.pairs[1]))
		return packHigh(TwoPair, g.pairs[0], g.pairs[1], topRanks(rest, 1))
	case g.npairs == 1:
		p := g.pairs[0]
		return packHigh(OnePair, p, 0, topRanks(rm&^rankBit(p), 3))
	}
	return packHigh(NoPair, 0, 0, topRanks(rm, 5))
}

// evaluateHighFlush ranks strictly on suit length and rank: the longest
// suit wins, ties broken by its card ranks from the top down.
func (cs CardSet) evaluateHighFlush() Eval {
	best := uint16(0)
	bestLen := 0
	for _, s := range Suits {
		sm := cs.SuitMask(s)
		if n := bits.OnesCount16(sm); n > bestLen || (n == bestLen && sm > best) {
			best, bestLen = sm, n
		}
	}
	if bestLen == 0 {
		return NoEval
	}
	return packEval(schemeHigh, int32(Flush), int32(bestLen), 0, topRanks(best, 5))
}

// evaluatePairing classifies the set purely by its rank-multiplicity
// pattern, suits and straights ignored.
func (cs CardSet) evaluatePairing() Eval {
	g := cs.groupRanks()
	var cat Category
	switch {
	case g.nquads > 0:
		cat = Quads
	case g.ntrips >= 2 || (g.ntrips == 1 && g.npairs > 0):
		cat = FullHouse
	case g.ntrips == 1:
		cat = Trips
	case g.npairs >= 2:
		cat = TwoPair
	case g.npairs == 1:
		cat = OnePair
	default:
		cat = NoPair
	}
	return packEval(schemePairing, int32(cat), 0, 0, 0)
}
