// Evaluates poker hands from the command line.
//
//	eval -game h -board 5c8s9h AcAs KdKc
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mpsalisbury/poker/pkg/client"
	"github.com/mpsalisbury/poker/pkg/poker"
)

var (
	board = flag.String("board", "", "Community cards shared by every hand")
	game  = "h"
)

func init() {
	client.EnumFlag(&game, "game", poker.VariantCodes(), "Game to evaluate")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] hand...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	variant, err := poker.ParseVariant(game)
	if err != nil {
		log.Fatal(err)
	}
	b := poker.ParseCardSet(*board)
	if b.Size() != len(*board)/2 {
		log.Fatalf("can't parse board '%s'", *board)
	}
	for _, arg := range flag.Args() {
		hand := poker.ParseCardSet(arg)
		if hand.IsEmpty() || hand.Size() != len(arg)/2 {
			log.Fatalf("can't parse hand '%s'", arg)
		}
		if !hand.Disjoint(b) {
			log.Fatalf("hand %s shares cards with the board", hand)
		}
		e := hand.Union(b).Evaluate(variant)
		fmt.Printf("%10s: %s\n", hand, e)
	}
}
