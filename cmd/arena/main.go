// Command arena pits bots against each other over many matches and prints
// aggregate standings.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"citadels-core/internal/arena"
)

func main() {
	games := flag.Int("games", 100, "number of matches to play")
	workers := flag.Int("workers", 4, "matches run concurrently")
	bots := flag.String("bots", "naive,random,random,random", "comma-separated seat kinds (naive, random)")
	verbose := flag.Bool("v", false, "log every match")
	flag.Parse()

	kinds := strings.Split(*bots, ",")
	for i := range kinds {
		kinds[i] = strings.TrimSpace(kinds[i])
		if _, err := arena.NewBot(kinds[i]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if len(kinds) < 2 {
		fmt.Fprintln(os.Stderr, "need at least two seats")
		os.Exit(2)
	}

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer log.Sync()
	}

	stats := arena.New(kinds, *games, *workers, log).Run()
	fmt.Print(stats)
}
