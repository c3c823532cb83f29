package poker

import (
	"math/bits"
	"sort"
	"strings"
)

// DeckSize is the number of distinguishable cards.
const DeckSize = 52

const (
	deckMask   = uint64(1)<<DeckSize - 1
	suitMask13 = uint16(1)<<13 - 1
	// One bit per suit at a fixed rank, before shifting by the rank.
	rankSpread = uint64(1) | 1<<13 | 1<<26 | 1<<39
)

// A CardSet is an unordered set of cards packed into a 64-bit mask, one
// bit per card in the order [2c..Ac, 2d..Ad, 2h..Ah, 2s..As]. The zero
// value is the empty set. Query and set-algebra methods take the set by
// value; Insert, Remove, Clear and Fill update it in place.
//
// Only the low 52 bits are meaningful. NewCardSet does not validate its
// argument; a mask with stray high bits is a caller error and produces
// unspecified results.
type CardSet struct {
	m uint64
}

func NewCardSet(mask uint64) CardSet {
	return CardSet{mask}
}

func SingleCardSet(c Card) CardSet {
	return CardSet{cardBit(c)}
}

func cardBit(c Card) uint64 {
	return uint64(1) << (uint(c.Suit)*13 + uint(c.Rank))
}

// ParseCardSet reads concatenated two-character card tokens (rank then
// ASCII suit) greedily left to right and stops silently at the first
// token it cannot interpret. It never reports failure; callers needing
// strict validation should compare Size against the expected count.
func ParseCardSet(s string) CardSet {
	var cs CardSet
	for len(s) >= 2 {
		c, err := ParseCard(s[:2])
		if err != nil {
			break
		}
		cs.Insert(c)
		s = s[2:]
	}
	return cs
}

// Mask returns the raw 52-bit card mask.
func (cs CardSet) Mask() uint64 {
	return cs.m
}

// Size returns the number of cards in the set.
func (cs CardSet) Size() int {
	return bits.OnesCount64(cs.m)
}

func (cs CardSet) IsEmpty() bool {
	return cs.m == 0
}

// Clear empties the set.
func (cs *CardSet) Clear() {
	cs.m = 0
}

// Fill puts all 52 cards into the set.
func (cs *CardSet) Fill() {
	cs.m = deckMask
}

// Insert adds one card. Inserting a card already present is a no-op.
func (cs *CardSet) Insert(c Card) {
	cs.m |= cardBit(c)
}

// InsertSet adds every card of other.
func (cs *CardSet) InsertSet(other CardSet) {
	cs.m |= other.m
}

// Remove takes one card out. Removing an absent card is a no-op.
func (cs *CardSet) Remove(c Card) {
	cs.m &^= cardBit(c)
}

// RemoveSet takes every card of other out.
func (cs *CardSet) RemoveSet(other CardSet) {
	cs.m &^= other.m
}

func (cs CardSet) Contains(c Card) bool {
	return cs.m&cardBit(c) != 0
}

// ContainsSet reports whether every card of other is in the set.
func (cs CardSet) ContainsSet(other CardSet) bool {
	return cs.m&other.m == other.m
}

func (cs CardSet) Disjoint(other CardSet) bool {
	return cs.m&other.m == 0
}

func (cs CardSet) Intersects(other CardSet) bool {
	return !cs.Disjoint(other)
}

func (cs CardSet) Union(other CardSet) CardSet {
	return CardSet{cs.m | other.m}
}

func (cs CardSet) Intersect(other CardSet) CardSet {
	return CardSet{cs.m & other.m}
}

func (cs CardSet) Xor(other CardSet) CardSet {
	return CardSet{cs.m ^ other.m}
}

// Complement returns the 52-card deck minus the set.
func (cs CardSet) Complement() CardSet {
	return CardSet{^cs.m & deckMask}
}

// Cards breaks the set into cards, in ascending bit order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Size())
	for m := cs.m; m != 0; m &= m - 1 {
		pos := bits.TrailingZeros64(m)
		cards = append(cards, Card{Rank(pos % 13), Suit(pos / 13)})
	}
	return cards
}

// CardSets breaks the set into single-card sets, in ascending bit order.
func (cs CardSet) CardSets() []CardSet {
	sets := make([]CardSet, 0, cs.Size())
	for m := cs.m; m != 0; m &= m - 1 {
		sets = append(sets, CardSet{m & -m})
	}
	return sets
}

// appendCards fills buf with the set's cards in ascending bit order and
// returns the count. It exists so the evaluators can decompose a set
// without allocating.
func (cs CardSet) appendCards(buf []Card) int {
	n := 0
	for m := cs.m; m != 0 && n < len(buf); m &= m - 1 {
		pos := bits.TrailingZeros64(m)
		buf[n] = Card{Rank(pos % 13), Suit(pos / 13)}
		n++
	}
	return n
}

// String renders the set as concatenated ASCII card tokens, ascending
// bit order. This is the one rendering guaranteed to satisfy
// ParseCardSet(cs.String()) == cs; see Render for display alternatives.
func (cs CardSet) String() string {
	return cs.Render(AsciiSuits)
}

// Render formats the set using the given suit alphabet. Non-ASCII
// styles are for display only and are not reparseable.
func (cs CardSet) Render(style SuitStyle) string {
	var sb strings.Builder
	for m := cs.m; m != 0; m &= m - 1 {
		pos := bits.TrailingZeros64(m)
		sb.WriteString(Card{Rank(pos % 13), Suit(pos / 13)}.Render(style))
	}
	return sb.String()
}

// RankString renders the sorted ranks of the set, dupes included,
// highest first.
func (cs CardSet) RankString() string {
	var ranks []Rank
	for _, c := range cs.Cards() {
		ranks = append(ranks, c.Rank)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	var sb strings.Builder
	for _, r := range ranks {
		sb.WriteString(r.String())
	}
	return sb.String()
}

// RankBitString renders the 13-bit rank mask, ace first.
func (cs CardSet) RankBitString() string {
	var sb strings.Builder
	rm := cs.RankMask()
	for r := Ace; r >= Two; r-- {
		if rm&rankBit(r) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func rankBit(r Rank) uint16 {
	return uint16(1) << uint(r)
}

// SuitMask returns the 13-bit rank mask of one suit.
func (cs CardSet) SuitMask(s Suit) uint16 {
	return uint16(cs.m>>(uint(s)*13)) & suitMask13
}

// RankMask returns a 13-bit mask with one bit per rank present in any
// suit.
func (cs CardSet) RankMask() uint16 {
	return cs.SuitMask(Clubs) | cs.SuitMask(Diamonds) | cs.SuitMask(Hearts) | cs.SuitMask(Spades)
}

// CountRanks returns the number of distinct ranks in the set.
func (cs CardSet) CountRanks() int {
	return bits.OnesCount16(cs.RankMask())
}

// CountSuits returns the number of distinct suits in the set.
func (cs CardSet) CountSuits() int {
	n := 0
	for _, s := range Suits {
		if cs.SuitMask(s) != 0 {
			n++
		}
	}
	return n
}

// CountRank returns the number of cards sharing the given rank.
func (cs CardSet) CountRank(r Rank) int {
	return bits.OnesCount64(cs.m & (rankSpread << uint(r)))
}

// CountSuit returns the length of the given suit.
func (cs CardSet) CountSuit(s Suit) int {
	return bits.OnesCount16(cs.SuitMask(s))
}

// CountMaxRank returns the count of the most common rank.
func (cs CardSet) CountMaxRank() int {
	max := 0
	for _, r := range Ranks {
		if n := cs.CountRank(r); n > max {
			max = n
		}
	}
	return max
}

// CountMaxSuit returns the length of the longest suit.
func (cs CardSet) CountMaxSuit() int {
	max := 0
	for _, s := range Suits {
		if n := cs.CountSuit(s); n > max {
			max = n
		}
	}
	return max
}

func (cs CardSet) HasRank(r Rank) bool {
	return cs.m&(rankSpread<<uint(r)) != 0
}

func (cs CardSet) HasSuit(s Suit) bool {
	return cs.SuitMask(s) != 0
}

// FindRank returns a card from the set with the given rank, lowest suit
// first. The second result is false if no such card exists.
func (cs CardSet) FindRank(r Rank) (Card, bool) {
	m := cs.m & (rankSpread << uint(r))
	if m == 0 {
		return Card{}, false
	}
	pos := bits.TrailingZeros64(m)
	return Card{Rank(pos % 13), Suit(pos / 13)}, true
}

// TopRank returns the highest rank in the set, Ace playing high. The
// second result is false for the empty set.
func (cs CardSet) TopRank() (Rank, bool) {
	rm := cs.RankMask()
	if rm == 0 {
		return Two, false
	}
	return Rank(bits.Len16(rm) - 1), true
}

// BottomRank returns the lowest rank in the set, Ace playing high. The
// second result is false for the empty set.
func (cs CardSet) BottomRank() (Rank, bool) {
	rm := cs.RankMask()
	if rm == 0 {
		return Two, false
	}
	return Rank(bits.TrailingZeros16(rm)), true
}

// FlushRank returns the highest rank within the given suit. The second
// result is false when the suit is empty.
func (cs CardSet) FlushRank(s Suit) (Rank, bool) {
	sm := cs.SuitMask(s)
	if sm == 0 {
		return Two, false
	}
	return Rank(bits.Len16(sm) - 1), true
}

// straightTop finds the highest rank topping a five-card run in a rank
// mask, the wheel included.
func straightTop(rm uint16) (Rank, bool) {
	m := uint32(rm) << 1
	m |= uint32(rm >> 12 & 1) // ace plays low for the wheel
	run := m & (m >> 1) & (m >> 2) & (m >> 3) & (m >> 4)
	if run == 0 {
		return Two, false
	}
	return Rank(bits.Len32(run) + 2), true
}

// HasStraight reports whether the set holds five consecutive ranks,
// counting the wheel (A-2-3-4-5).
func (cs CardSet) HasStraight() bool {
	_, ok := straightTop(cs.RankMask())
	return ok
}

// InsertRanks adds one card per card of rset, keeping the rank but
// taking the first suit not already present at that rank. It reports
// whether every rank could be placed.
func (cs *CardSet) InsertRanks(rset CardSet) bool {
	for m := rset.m; m != 0; m &= m - 1 {
		r := Rank(bits.TrailingZeros64(m) % 13)
		placed := false
		for _, s := range Suits {
			c := Card{r, s}
			if !cs.Contains(c) {
				cs.Insert(c)
				placed = true
				break
			}
		}
		if !placed {
			return false
		}
	}
	return true
}

// EvaluateStraightOuts classifies the set's straight draw by the ranks
// that would complete a straight: 8 when two or more ranks complete one
// (open-ended or double gutshot), 4 when exactly one does (gutshot), 1
// when only some pair of ranks does (runner-runner), else 0.
func (cs CardSet) EvaluateStraightOuts() int {
	rm := cs.RankMask()
	completers := 0
	for _, r := range Ranks {
		if rm&rankBit(r) != 0 {
			continue
		}
		if _, ok := straightTop(rm | rankBit(r)); ok {
			completers++
		}
	}
	switch {
	case completers >= 2:
		return 8
	case completers == 1:
		return 4
	}
	for _, r1 := range Ranks {
		if rm&rankBit(r1) != 0 {
			continue
		}
		for r2 := r1 + 1; r2 <= Ace; r2++ {
			if rm&rankBit(r2) != 0 {
				continue
			}
			if _, ok := straightTop(rm | rankBit(r1) | rankBit(r2)); ok {
				return 1
			}
		}
	}
	return 0
}
