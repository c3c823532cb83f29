package main

import (
	"fmt"
	"time"

	"github.com/mpsalisbury/poker/pkg/discovery"
)

func main() {
	locs, err := discovery.FindService(time.Second)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, loc := range locs {
		fmt.Printf("Found PokerEvalServer at %s\n", loc)
	}
}
