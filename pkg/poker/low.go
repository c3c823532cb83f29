package poker

import "math/bits"

// The lowball evaluators work in an ace-low rank domain: index 0 is the
// Ace, 1..12 are Two..King.

func toAceLow(r Rank) Rank {
	if r == Ace {
		return 0
	}
	return r + 1
}

func fromAceLow(r Rank) Rank {
	if r == 0 {
		return Ace
	}
	return r - 1
}

func aceLowMask(rm uint16) uint16 {
	return (rm<<1 | rm>>12) & suitMask13
}

// aceLowTransform rebuilds the set with every rank moved to its ace-low
// position, so the rank-domain helpers can run unchanged.
func (cs CardSet) aceLowTransform() CardSet {
	var m uint64
	for _, s := range Suits {
		m |= uint64(aceLowMask(cs.SuitMask(s))) << (uint(s) * 13)
	}
	return CardSet{m}
}

// bestFive returns the best eval over all five-card subsets, or of the
// whole set when it holds five or fewer cards.
func (cs CardSet) bestFive(eval func(CardSet) Eval) Eval {
	if cs.Size() <= 5 {
		return eval(cs)
	}
	var buf [7]Card // sizes above seven are outside the caller contract
	n := cs.appendCards(buf[:])
	best := NoEval
	for m := 0; m < 1<<n; m++ {
		if bits.OnesCount(uint(m)) != 5 {
			continue
		}
		var sub CardSet
		for i := 0; i < n; i++ {
			if m>>i&1 == 1 {
				sub.Insert(buf[i])
			}
		}
		if e := eval(sub); e > best {
			best = e
		}
	}
	return best
}

// evaluateLowA5 ranks the lowest five cards with the Ace low; straights
// and flushes never count.
func (cs CardSet) evaluateLowA5() Eval {
	return cs.bestFive(CardSet.lowA5Five)
}

func (cs CardSet) lowA5Five() Eval {
	low := cs.aceLowTransform()
	rm := low.RankMask()
	if cs.Size() == 5 && bits.OnesCount16(rm) == 5 {
		return lowFiveTable()[colex13(rm)]
	}
	return invertLow(pairLadder(rm, low.groupRanks()), schemeLowA5)
}

// evaluate8LowA5 ranks as A-5 low but returns NoEval unless the best
// five cards are unpaired and all eight or below.
func (cs CardSet) evaluate8LowA5() Eval {
	e := cs.evaluateLowA5()
	if e.Category() != NoPair {
		return NoEval
	}
	// Ace through eight occupy the low eight bits of the ace-low mask.
	if e.kickerMask()&^0x00ff != 0 {
		return NoEval
	}
	return e
}

// straightTopAceHigh finds five-card runs with the Ace playing high
// only, so the wheel does not count. Deuce-to-seven rules.
func straightTopAceHigh(rm uint16) (Rank, bool) {
	run := rm & (rm >> 1) & (rm >> 2) & (rm >> 3) & (rm >> 4)
	if run == 0 {
		return Two, false
	}
	return Rank(bits.Len16(run) + 3), true
}

// evaluateLow2to7 ranks the lowest five cards with the Ace high only;
// straights and flushes count against the hand.
func (cs CardSet) evaluateLow2to7() Eval {
	return cs.bestFive(CardSet.low27Five)
}

func (cs CardSet) low27Five() Eval {
	rm := cs.RankMask()
	e := pairLadder(rm, cs.groupRanks())
	if top, ok := straightTopAceHigh(rm); ok && e.Category() < Straight {
		e = packHigh(Straight, top, 0, 0)
	}
	if flush := cs.flushMask(); flush != 0 {
		if top, ok := straightTopAceHigh(flush); ok {
			e = packHigh(StraightFlush, top, 0, 0)
		} else if e.Category() < Flush {
			e = packHigh(Flush, 0, 0, topRanks(flush, 5))
		}
	}
	return invertLow(e, schemeLow27)
}

// evaluateRanksLow2to7 isolates the rank component of deuce-to-seven:
// pairing and straights count against the hand, suits are ignored.
func (cs CardSet) evaluateRanksLow2to7() Eval {
	return cs.bestFive(CardSet.ranksLow27Five)
}

func (cs CardSet) ranksLow27Five() Eval {
	rm := cs.RankMask()
	e := pairLadder(rm, cs.groupRanks())
	if top, ok := straightTopAceHigh(rm); ok && e.Category() < Straight {
		e = packHigh(Straight, top, 0, 0)
	}
	return invertLow(e, schemeLow27)
}

// evaluateSuitsLow2to7 isolates the suit component of deuce-to-seven:
// the longer and higher the best suit, the worse the hand.
func (cs CardSet) evaluateSuitsLow2to7() Eval {
	return invertLow(cs.evaluateHighFlush(), schemeLow27)
}
