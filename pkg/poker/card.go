package poker

import (
	"fmt"
	"strings"
)

// A card's suit. The constant order is the canonical bit order used by
// CardSet: clubs, diamonds, hearts, spades.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{
	Clubs,
	Diamonds,
	Hearts,
	Spades,
}

// SuitStyle selects the alphabet used to render suits. Only AsciiSuits
// is guaranteed to reparse; see CardSet.String.
type SuitStyle int8

const (
	AsciiSuits SuitStyle = iota
	SymbolSuits
)

func (s Suit) String() string {
	return s.Render(AsciiSuits)
}

func (s Suit) Render(style SuitStyle) string {
	if style == SymbolSuits {
		switch s {
		case Clubs:
			return "♣"
		case Diamonds:
			return "♦"
		case Hearts:
			return "♥"
		case Spades:
			return "♠"
		}
		panic("Unknown Suit")
	}
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "c":
		return Clubs, nil
	case "d":
		return Diamonds, nil
	case "h":
		return Hearts, nil
	case "s":
		return Spades, nil
	}
	return Clubs, fmt.Errorf("no such suit '%s'", s)
}

// A card's rank: 2-9,T,J,Q,K,A. Ace is high except where a lowball
// evaluator says otherwise.
type Rank int8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
	Ace,
}

func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	panic("Unknown Rank")
}

func parseRank(r string) (Rank, error) {
	switch strings.ToLower(r) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "t":
		return Ten, nil
	case "j":
		return Jack, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	case "a":
		return Ace, nil
	}
	return Two, fmt.Errorf("no such rank '%s'", r)
}

type Card struct {
	Rank
	Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) Render(style SuitStyle) string {
	return c.Rank.String() + c.Suit.Render(style)
}

func ParseCard(c string) (Card, error) {
	if len(c) != 2 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	r, rerr := parseRank(c[0:1])
	s, serr := parseSuit(c[1:2])
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{r, s}, nil
}

func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank < c2.Rank
	}
	return c1.Suit < c2.Suit
}
