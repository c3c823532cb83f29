package poker

import (
	"math/rand"
	"testing"
)

func evalString(t *testing.T, s string, v Variant) Eval {
	t.Helper()
	cs := ParseCardSet(s)
	if cs.Size() != len(s)/2 {
		t.Fatalf("bad hand %q", s)
	}
	return cs.Evaluate(v)
}

func TestEvaluateHighCategories(t *testing.T) {
	tests := []struct {
		hand string
		want Category
	}{
		{"AsKsQsJsTs", StraightFlush},
		{"2d3d4d5d6d", StraightFlush},
		{"As2s3s4s5s", StraightFlush}, // steel wheel
		{"2c2d2h2s3c", Quads},
		{"2c2d2h3s3c", FullHouse},
		{"AsKsQs9s7s", Flush},
		{"AsKdQhJcTs", Straight},
		{"As2c3d4h5s", Straight}, // wheel
		{"2c2d2h4s5c", Trips},
		{"2c2d3h3s5c", TwoPair},
		{"2c2d4h5s7c", OnePair},
		{"2c3d4h5s7c", NoPair},
		// Seven cards pick the best five.
		{"2c3c4c5c6c7d7h", StraightFlush},
		{"AsAdAhKsKdQc2c", FullHouse},
		{"AsKsQs9s7s2d3d", Flush},
		{"2c3d4h5s6c8d9h", Straight},
	}
	for _, tc := range tests {
		got := evalString(t, tc.hand, High)
		if got.Category() != tc.want {
			t.Errorf("Evaluate(%s, High)=%s, want %s", tc.hand, got.Category(), tc.want)
		}
	}
}

func TestEvaluateHighOrdering(t *testing.T) {
	// Strictly descending strength, per the standard ladder.
	hands := []string{
		"AsKsQsJsTs", // royal flush
		"KsQsJsTs9s", // king-high straight flush
		"2c2d2h2s3c", // four of a kind
		"AsAdAhKsKd", // full house
		"AsKsQs9s7s", // flush
		"AsKdQhJcTs", // broadway straight
		"As2c3d4h5s", // wheel straight
		"AsAdAhKsQd", // trips
		"AsAdKhKsQd", // two pair
		"AsAdKhQs9d", // one pair
		"AsKdQh9s7c", // high card
		"2c3d4h5s7c", // worst high card
	}
	var prev Eval
	for i, h := range hands {
		e := evalString(t, h, High)
		if e <= NoEval {
			t.Fatalf("Evaluate(%s, High)=%d, want > NoEval", h, e)
		}
		if i > 0 && e >= prev {
			t.Errorf("Evaluate(%s)=%d not below Evaluate(%s)=%d", h, e, hands[i-1], prev)
		}
		prev = e
	}
}

func TestEvaluateHighKickers(t *testing.T) {
	tests := []struct {
		better, worse string
	}{
		{"AsAdKhQs9d", "AsAdKhQs8d"}, // pair kicker
		{"AsAdKhQs2d", "KsKdAhQs9d"}, // pair rank before kickers
		{"AsAd2h2s3c", "KsKdQhQs9c"}, // top pair decides two pair
		{"AsKsQs9s7s", "AsKsQs9s6s"}, // flush fifth card
		{"AsKdQhJcTs", "KdQhJcTs9s"}, // straight top card
		{"AcAdAhKcQd", "AcAdAhKcJd"}, // trips kicker
	}
	for _, tc := range tests {
		b := evalString(t, tc.better, High)
		w := evalString(t, tc.worse, High)
		if b <= w {
			t.Errorf("Evaluate(%s)=%d should beat Evaluate(%s)=%d", tc.better, b, tc.worse, w)
		}
	}
}

func TestEvaluateHighRanksIgnoresSuits(t *testing.T) {
	flush := evalString(t, "AsKsQs9s7s", HighRanks)
	plain := evalString(t, "AcKdQh9s7c", HighRanks)
	if flush != plain {
		t.Errorf("HighRanks should not see suits: %d != %d", flush, plain)
	}
	if got := flush.Category(); got != NoPair {
		t.Errorf("HighRanks(AsKsQs9s7s)=%s, want %s", got, NoPair)
	}
	// Straights still count.
	if got := evalString(t, "AsKdQhJcTs", HighRanks).Category(); got != Straight {
		t.Errorf("HighRanks straight=%s, want %s", got, Straight)
	}
}

func TestEvaluateHighFlush(t *testing.T) {
	tests := []struct {
		better, worse string
	}{
		{"2s3s4sAdKd", "AsKsQdJd9c"}, // longer suit beats higher ranks
		{"AsKs2d3c4h", "KsQs2d3c4h"}, // equal length, higher ranks
	}
	for _, tc := range tests {
		b := evalString(t, tc.better, HighFlush)
		w := evalString(t, tc.worse, HighFlush)
		if b <= w {
			t.Errorf("HighFlush(%s)=%d should beat HighFlush(%s)=%d", tc.better, b, tc.worse, w)
		}
	}
}

func TestEvaluateThreeCardLadders(t *testing.T) {
	straightFlush := "QsKsAs"
	trips := "QsQdQh"
	straight := "4c5d6h"
	flush := "2s7s9s"
	pair := "2s2d9h"
	high := "2s7d9h"

	// Standard ladder: straight flush on top, then trips.
	std := []string{straightFlush, trips, straight, flush, pair, high}
	var prev Eval
	for i, h := range std {
		e := evalString(t, h, HighThreeCard)
		if e <= NoEval {
			t.Fatalf("HighThreeCard(%s)=%d, want > NoEval", h, e)
		}
		if i > 0 && e >= prev {
			t.Errorf("HighThreeCard(%s)=%d not below %s=%d", h, e, std[i-1], prev)
		}
		prev = e
	}

	// Alternate ladder: trips beat the straight flush.
	alt := []string{trips, straightFlush, straight, flush, pair, high}
	prev = 0
	for i, h := range alt {
		e := evalString(t, h, ThreeCardPoker)
		if i > 0 && e >= prev {
			t.Errorf("ThreeCardPoker(%s)=%d not below %s=%d", h, e, alt[i-1], prev)
		}
		prev = e
	}
}

func TestEvaluateThreeCardWheel(t *testing.T) {
	// A-2-3 plays as a straight in three-card poker.
	if got := evalString(t, "Ac2d3h", HighThreeCard); got.String() != "straight" {
		t.Errorf("HighThreeCard(Ac2d3h)=%s, want straight", got)
	}
	broadway := evalString(t, "QcKdAh", HighThreeCard)
	wheel := evalString(t, "Ac2d3h", HighThreeCard)
	if wheel >= broadway {
		t.Errorf("A-2-3 straight=%d should rank below Q-K-A=%d", wheel, broadway)
	}
}

func TestEvaluatePairing(t *testing.T) {
	tests := []struct {
		hand string
		want Category
	}{
		{"2c3d4h5s7c", NoPair},
		{"2c2d4h5s7c", OnePair},
		{"2c2d5h5s7c", TwoPair},
		{"2c2d2h5s7c", Trips},
		{"2c2d2h5s5c", FullHouse},
		{"2c2d2h2s7c", Quads},
	}
	for _, tc := range tests {
		got := evalString(t, tc.hand, Pairing)
		if got.Category() != tc.want {
			t.Errorf("Pairing(%s)=%s, want %s", tc.hand, got.Category(), tc.want)
		}
	}
	// Suits and straights are invisible.
	straight := evalString(t, "AsKsQsJsTs", Pairing)
	if got := straight.Category(); got != NoPair {
		t.Errorf("Pairing(AsKsQsJsTs)=%s, want %s", got, NoPair)
	}
}

func TestEvaluateNoHiddenState(t *testing.T) {
	// Evaluation must be a pure function of the set.
	rng := rand.New(rand.NewSource(20))
	for i := 0; i < 200; i++ {
		cs := randomCardSet(rng, 5+rng.Intn(3))
		for _, v := range []Variant{High, HighRanks, LowA5, Low2to7, Badugi, Pairing} {
			if a, b := cs.Evaluate(v), cs.Evaluate(v); a != b {
				t.Fatalf("Evaluate(%s, %s) unstable: %d then %d", cs, v, a, b)
			}
		}
	}
}

func TestEvalStrings(t *testing.T) {
	tests := []struct {
		hand string
		v    Variant
		want string
	}{
		{"AsKsQsJsTs", High, "straight flush"},
		{"2c2d2h2s3c", High, "four of a kind"},
		{"2c3d4h5s7c", High, "high card"},
		{"QsQdQh", HighThreeCard, "three of a kind"},
		{"QsQdQh", ThreeCardPoker, "three of a kind"},
		{"8c6d4h2sAc", LowA5, "8-low"},
		{"2c3d4h5s7c", Low2to7, "7-low"},
		{"As2d3h4c", Badugi, "4-card badugi"},
		{"2c2d4h5s7c", Pairing, "one pair"},
	}
	for _, tc := range tests {
		if got := evalString(t, tc.hand, tc.v).String(); got != tc.want {
			t.Errorf("Evaluate(%s, %s).String()=%q, want %q", tc.hand, tc.v, got, tc.want)
		}
	}
	if got := NoEval.String(); got != "no qualifying hand" {
		t.Errorf("NoEval.String()=%q", got)
	}
}
