package poker

import "testing"

func TestParseValidCard(t *testing.T) {
	tests := []struct {
		c    string
		want Card
	}{
		{"2c", Card{Two, Clubs}},
		{"3c", Card{Three, Clubs}},
		{"4c", Card{Four, Clubs}},
		{"5c", Card{Five, Clubs}},
		{"6c", Card{Six, Clubs}},
		{"7c", Card{Seven, Clubs}},
		{"8c", Card{Eight, Clubs}},
		{"9c", Card{Nine, Clubs}},
		{"tc", Card{Ten, Clubs}},
		{"jc", Card{Jack, Clubs}},
		{"qc", Card{Queen, Clubs}},
		{"kc", Card{King, Clubs}},
		{"ac", Card{Ace, Clubs}},
		{"TS", Card{Ten, Spades}},
		{"jH", Card{Jack, Hearts}},
		{"ad", Card{Ace, Diamonds}},
	}
	for _, tc := range tests {
		got, err := ParseCard(tc.c)
		if err != nil {
			t.Errorf("ParseCard(%s)=error(%s), want %s", tc.c, err, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCard(%s)=%s, want %s", tc.c, got, tc.want)
		}
	}
}

func TestParseInvalidCard(t *testing.T) {
	tests := []string{"xc", "7x", "2cc", "22c", "", "5"}
	for _, tc := range tests {
		got, err := ParseCard(tc)
		if err == nil {
			t.Errorf("ParseCard(%s)=%s, want err", tc, got)
		}
	}
}

func TestCardRender(t *testing.T) {
	tests := []struct {
		c     Card
		style SuitStyle
		want  string
	}{
		{Cas, AsciiSuits, "As"},
		{C2c, AsciiSuits, "2c"},
		{Ctd, AsciiSuits, "Td"},
		{Cas, SymbolSuits, "A♠"},
		{C2c, SymbolSuits, "2♣"},
		{Ckh, SymbolSuits, "K♥"},
		{C7d, SymbolSuits, "7♦"},
	}
	for _, tc := range tests {
		if got := tc.c.Render(tc.style); got != tc.want {
			t.Errorf("Render(%v)=%s, want %s", tc.style, got, tc.want)
		}
	}
}

func TestCardLessThan(t *testing.T) {
	tests := []struct {
		c1, c2 Card
		want   bool
	}{
		{C2c, C3c, true},
		{C3c, C2c, false},
		{Cac, C2d, true},
		{Cas, Cas, false},
	}
	for _, tc := range tests {
		if got := tc.c1.LessThan(tc.c2); got != tc.want {
			t.Errorf("LessThan(%s,%s)=%t, want %t", tc.c1, tc.c2, got, tc.want)
		}
	}
}
