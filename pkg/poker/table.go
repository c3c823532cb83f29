package poker

import (
	"math/bits"
	"sync"
)

var (
	lowTableOnce sync.Once
	lowTable     [1287]Eval // C(13,5) five-distinct-rank subsets
)

// lowFiveTable returns the A-5 strength of every five-distinct-rank
// subset, addressed by the colex index of the ace-low rank mask. The
// table is built at most once, behind the sync.Once barrier, and is
// read-only afterwards, so concurrent evaluators share it without
// locking.
func lowFiveTable() *[1287]Eval {
	lowTableOnce.Do(func() {
		for m := uint16(0); m < 1<<13; m++ {
			if bits.OnesCount16(m) != 5 {
				continue
			}
			lowTable[colex13(m)] = invertLow(packHigh(NoPair, 0, 0, m), schemeLowA5)
		}
	})
	return &lowTable
}
