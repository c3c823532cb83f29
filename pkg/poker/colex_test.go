package poker

import "testing"

func TestColexPairsBijection(t *testing.T) {
	total := binomial[DeckSize][2]
	seen := make([]bool, total)
	deck := CardSet{}
	deck.Fill()
	cards := deck.Cards()
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			var cs CardSet
			cs.Insert(cards[i])
			cs.Insert(cards[j])
			idx := cs.Colex()
			if idx < 0 || idx >= total {
				t.Fatalf("Colex(%s)=%d out of [0,%d)", cs, idx, total)
			}
			if seen[idx] {
				t.Fatalf("Colex(%s)=%d already used", cs, idx)
			}
			seen[idx] = true
		}
	}
	for idx, ok := range seen {
		if !ok {
			t.Fatalf("colex index %d never produced", idx)
		}
	}
}

func TestColexSmall(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"2c", 0},  // lowest bit
		{"3c", 1},  // C(1,1)
		{"As", 51}, // highest bit
		{"2c3c", 0},
		{"2c4c", 1}, // C(2,2)
		{"3c4c", 2}, // C(1,1)+C(2,2)
	}
	for _, tc := range tests {
		if got := ParseCardSet(tc.s).Colex(); got != tc.want {
			t.Errorf("Colex(%q)=%d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestRankColexBijection(t *testing.T) {
	// All five-rank subsets, one suit, must map onto [0, C(13,5)).
	total := binomial[13][5]
	seen := make([]bool, total)
	var ranks [5]Rank
	var rec func(start Rank, n int)
	rec = func(start Rank, n int) {
		if n == 5 {
			var cs CardSet
			for _, r := range ranks {
				cs.Insert(Card{r, Spades})
			}
			idx := cs.RankColex()
			if idx < 0 || idx >= total {
				t.Fatalf("RankColex(%s)=%d out of [0,%d)", cs, idx, total)
			}
			if seen[idx] {
				t.Fatalf("RankColex(%s)=%d already used", cs, idx)
			}
			seen[idx] = true
			return
		}
		for r := start; r <= Ace; r++ {
			ranks[n] = r
			rec(r+1, n+1)
		}
	}
	rec(Two, 0)
	for idx, ok := range seen {
		if !ok {
			t.Fatalf("rank colex index %d never produced", idx)
		}
	}
}

func TestRankColexIgnoresSuits(t *testing.T) {
	a := ParseCardSet("2c7dKh")
	b := ParseCardSet("2s7sKs")
	if a.RankColex() != b.RankColex() {
		t.Errorf("RankColex(%s)=%d, RankColex(%s)=%d, want equal",
			a, a.RankColex(), b, b.RankColex())
	}
}
