package poker

import (
	"math/rand"
	"testing"
)

func TestCanonizeIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 1000; i++ {
		cs := randomCardSet(rng, rng.Intn(DeckSize+1))
		once := cs.Canonize()
		if twice := once.Canonize(); twice != once {
			t.Fatalf("Canonize(Canonize(%s))=%s, want %s", cs, twice, once)
		}
	}
}

func TestCanonizeSuitInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		cs := randomCardSet(rng, rng.Intn(DeckSize+1))
		want := cs.Canonize()
		for _, p := range suitPermutations {
			relabeled := cs.mapSuits(p)
			if got := relabeled.Canonize(); got != want {
				t.Fatalf("Canonize(%s)=%s, want %s (from %s under %v)",
					relabeled, got, want, cs, p)
			}
		}
	}
}

func TestCanonizePreservesSize(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 1000; i++ {
		cs := randomCardSet(rng, rng.Intn(DeckSize+1))
		if got := cs.Canonize(); got.Size() != cs.Size() {
			t.Fatalf("Canonize(%s)=%s changed size", cs, got)
		}
	}
}

func TestRotateSuits(t *testing.T) {
	cs := ParseCardSet("2c3d4h5s")
	// Send clubs to diamonds, diamonds to hearts, hearts to spades,
	// spades to clubs.
	got := cs.RotateSuits(Diamonds, Hearts, Spades, Clubs)
	if want := ParseCardSet("5c2d3h4s"); got != want {
		t.Errorf("RotateSuits=%s, want %s", got, want)
	}
}

func TestFlipSuits(t *testing.T) {
	cs := ParseCardSet("2cKs")
	if got, want := cs.FlipSuits(), ParseCardSet("Kc2s"); got != want {
		t.Errorf("FlipSuits(%s)=%s, want %s", cs, got, want)
	}
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 100; i++ {
		cs := randomCardSet(rng, rng.Intn(DeckSize+1))
		if got := cs.FlipSuits().FlipSuits(); got != cs {
			t.Fatalf("FlipSuits(FlipSuits(%s))=%s", cs, got)
		}
	}
}

func TestFindSuitPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for i := 0; i < 200; i++ {
		cs := randomCardSet(rng, rng.Intn(DeckSize+1))
		for _, p := range suitPermutations {
			dest := cs.mapSuits(p)
			got, ok := FindSuitPermutation(cs, dest)
			if !ok {
				t.Fatalf("FindSuitPermutation(%s, %s): not found", cs, dest)
			}
			// The recovered permutation need not equal p when suits are
			// interchangeable, but it must map source onto dest.
			if cs.mapSuits(got) != dest {
				t.Fatalf("FindSuitPermutation(%s, %s)=%v does not map source onto dest", cs, dest, got)
			}
		}
	}
}

func TestFindSuitPermutationNotFound(t *testing.T) {
	src := ParseCardSet("2c3c")
	dest := ParseCardSet("2c3d")
	if p, ok := FindSuitPermutation(src, dest); ok {
		t.Errorf("FindSuitPermutation(%s, %s)=%v, want not found", src, dest, p)
	}
}

func TestCanonizeRelative(t *testing.T) {
	board := ParseCardSet("2h7h9h")
	hand := ParseCardSet("AhKc")
	canonBoard := board.Canonize()
	canonHand := hand.CanonizeRelative(board)
	// The same permutation must have been applied to both sets.
	p, ok := FindSuitPermutation(board, canonBoard)
	if !ok {
		t.Fatalf("no permutation canonizing %s", board)
	}
	if want := hand.mapSuits(p); canonHand != want {
		t.Errorf("CanonizeRelative(%s, %s)=%s, want %s", hand, board, canonHand, want)
	}
	// The board's heart flush lands on clubs; the hand's ace follows it.
	if !canonHand.Contains(Cac) {
		t.Errorf("CanonizeRelative(%s, %s)=%s, want the ace on clubs", hand, board, canonHand)
	}
	if got := CanonizeToBoard(board, hand); got != canonHand {
		t.Errorf("CanonizeToBoard=%s, want %s", got, canonHand)
	}
}
