package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON configuration file")
		boardName  = flag.String("board", "", "board file under the boards directory, or \"random\"")
		seed       = flag.Int64("seed", 0, "random seed for random boards (0 uses the current time)")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading config: %v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Handle Ctrl+C gracefully: stops an animation, or ends the session at a prompt
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	g := newGame(config, rand.New(rand.NewSource(*seed)), os.Stdin, os.Stdout, sigChan)

	if *boardName != "" {
		if g.board, err = g.loadBoard(*boardName); err != nil {
			log.Fatalf("loading board: %v", err)
		}
	} else if err = g.chooseBoard(); err != nil {
		exit(err)
	}

	exit(g.run())
}

// exit ends the session; running out of input or a signal at a prompt counts as quitting
func exit(err error) {
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, errInterrupted) {
		log.Fatalf("%+v", err)
	}
	fmt.Println("Have a nice Life!")
	os.Exit(0)
}
