// chess-cli is an interactive terminal chess board backed by the rules engine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	startFEN  = flag.String("fen", "", "Starting position (default: the standard initial position)")
	asciiOnly = flag.Bool("ascii", false, "Draw pieces as letters instead of unicode glyphs")
)

func main() {
	flag.Parse()

	start := engine.StartingPosition()
	if *startFEN != "" {
		p, err := engine.ParseFEN(*startFEN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing FEN %q: %v\n", *startFEN, err)
			os.Exit(1)
		}
		start = p
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	u := &ui{
		screen: screen,
		start:  start,
		pos:    start.Copy(),
		ascii:  *asciiOnly,
	}
	u.run()
}
