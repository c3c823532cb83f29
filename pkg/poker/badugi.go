package poker

import "math/bits"

// evaluateBadugi finds the strongest qualifying sub-hand: the largest
// subset of cards with all suits and all ranks distinct, ties broken by
// its ranks from the top down, Ace low. Fewer than four qualifying
// cards is a weaker hand, not an error.
func (cs CardSet) evaluateBadugi() Eval {
	var buf [7]Card
	n := cs.appendCards(buf[:])
	best := NoEval
	for m := 1; m < 1<<n; m++ {
		if bits.OnesCount(uint(m)) > 4 {
			continue
		}
		var suits, ranks uint16
		ok := true
		count := int32(0)
		for i := 0; i < n; i++ {
			if m>>i&1 == 0 {
				continue
			}
			sb := uint16(1) << uint(buf[i].Suit)
			rb := rankBit(toAceLow(buf[i].Rank))
			if suits&sb != 0 || ranks&rb != 0 {
				ok = false
				break
			}
			suits |= sb
			ranks |= rb
			count++
		}
		if !ok {
			continue
		}
		// More cards first; among equal sizes the complemented ace-low
		// mask ranks lower cards higher.
		e := packEval(schemeBadugi, count, 0, 0, ^ranks&suitMask13)
		if e > best {
			best = e
		}
	}
	return best
}
