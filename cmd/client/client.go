// Evaluates poker hands against a remote evaluation server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mpsalisbury/poker/pkg/client"
	"github.com/mpsalisbury/poker/pkg/poker"
)

var (
	board      = flag.String("board", "", "Community cards shared by every hand")
	game       = "h"
	serverType = "local"
)

func init() {
	client.EnumFlag(&game, "game", poker.VariantCodes(), "Game to evaluate")
	client.AddServerFlag(&serverType, "server")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] hand...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	conn, err := client.ConnectByName(serverType)
	if err != nil {
		log.Fatalf("couldn't connect to server: %v", err)
	}
	defer conn.Close()
	values, err := conn.Evaluate(context.Background(), game, *board, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	for _, v := range values {
		fmt.Printf("%10s: %s\n", v.Hand, v.Description)
	}
}
