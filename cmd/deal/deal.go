// Deals random hands and shows how they rank.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/mpsalisbury/poker/pkg/poker"
)

var (
	numHands = flag.Int("hands", 4, "Number of hands to deal")
	handSize = flag.Int("size", 5, "Cards per hand")
)

func main() {
	flag.Parse()
	n, size := *numHands, *handSize
	if n*size > poker.DeckSize {
		log.Fatalf("can't deal %d hands of %d cards from one deck", n, size)
	}
	rand.Seed(time.Now().UnixNano())
	var deck poker.CardSet
	deck.Fill()
	cards := deck.Cards()
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	for i := 0; i < n; i++ {
		var hand poker.CardSet
		for _, c := range cards[i*size : (i+1)*size] {
			hand.Insert(c)
		}
		fmt.Printf("%12s: %s\n", hand, hand.Evaluate(poker.High))
	}
}
